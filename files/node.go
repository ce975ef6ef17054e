// Package files models a small filesystem tree whose nodes are addressed by
// hierarchical names. It uses moniker.Name only as an opaque value: full names
// are built by appending base names to the parent's full name.
package files

import (
	"context"

	"github.com/zoobzio/moniker"
)

// PathDelimiter separates base names in a node's full name.
const PathDelimiter = '/'

// Node is an element of the tree.
type Node interface {
	// BaseName returns the node's own name. It fails with
	// moniker.ErrInvalidState when a non-root node has lost its name.
	BaseName() (string, error)

	// Rename changes the base name. bn must not be empty.
	Rename(bn string) error

	// Parent returns the containing directory, or nil for the root.
	Parent() *Directory

	// FullName returns the base names from the root down to this node.
	FullName() (moniker.Name, error)

	// FindNodes returns every node in this subtree whose base name is bn.
	FindNodes(bn string) ([]Node, error)
}

// node holds the state shared by every Node implementation. self is the
// outer value so results can be reported as the concrete node.
type node struct {
	baseName string
	parent   *Directory
	self     Node
}

func newNode(op, bn string, parent *Directory) (node, error) {
	if bn == "" {
		return node{}, moniker.NewIllegalArgument(op, "base name must not be empty")
	}
	if parent == nil {
		return node{}, moniker.NewIllegalArgument(op, "parent directory must not be nil")
	}
	return node{baseName: bn, parent: parent}, nil
}

// attach records self and adds it to the parent.
func (n *node) attach(self Node) error {
	n.self = self
	if n.parent == nil {
		return nil
	}
	if err := n.parent.AddChildNode(self); err != nil {
		return err
	}
	emitNodeCreated(context.Background(), self)
	return nil
}

func (n *node) Parent() *Directory {
	return n.parent
}

func (n *node) BaseName() (string, error) {
	if err := n.checkInvariant(); err != nil {
		return "", err
	}
	return n.baseName, nil
}

func (n *node) Rename(bn string) error {
	if bn == "" {
		return moniker.NewIllegalArgument("rename", "base name must not be empty")
	}
	if n.parent == nil {
		return moniker.NewIllegalArgument("rename", "the root node cannot be renamed")
	}
	n.baseName = bn
	return n.checkInvariant()
}

func (n *node) FullName() (moniker.Name, error) {
	return fullName(n.self)
}

func (n *node) FindNodes(bn string) ([]Node, error) {
	return find(n.self, bn)
}

func (n *node) checkInvariant() error {
	if n.parent != nil && n.baseName == "" {
		return moniker.NewInvalidState("baseName", "a non-root node must have a non-empty base name")
	}
	return nil
}

// fullName appends nd's base name to its parent's full name. The root's full
// name is empty.
func fullName(nd Node) (moniker.Name, error) {
	parent := nd.Parent()
	if parent == nil {
		return moniker.NewArrayName(nil, moniker.WithDelimiter(PathDelimiter))
	}
	prefix, err := parent.FullName()
	if err != nil {
		return moniker.Name{}, err
	}
	bn, err := nd.BaseName()
	if err != nil {
		return moniker.Name{}, err
	}
	return prefix.Append(bn)
}

// find wraps any failure during the walk in a ServiceError carrying the
// triggering error.
func find(nd Node, bn string) ([]Node, error) {
	found, err := collect(nd, bn, nil)
	if err != nil {
		err = moniker.NewServiceError("findNodes", "cannot search subtree", err)
		moniker.EmitServiceFailed(context.Background(), "findNodes", err)
		return nil, err
	}
	return found, nil
}

func collect(nd Node, bn string, found []Node) ([]Node, error) {
	name, err := nd.BaseName()
	if err != nil {
		return nil, err
	}
	if name == bn {
		found = append(found, nd)
	}
	dir, ok := nd.(*Directory)
	if !ok {
		return found, nil
	}
	for _, child := range dir.children {
		found, err = collect(child, bn, found)
		if err != nil {
			return nil, err
		}
	}
	return found, nil
}
