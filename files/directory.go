package files

import (
	"slices"

	"github.com/zoobzio/moniker"
)

// Directory is a node that contains other nodes, kept in insertion order.
type Directory struct {
	node
	children []Node
}

// NewRootNode returns the root of a new tree. Its base name is empty and it
// has no parent.
func NewRootNode() *Directory {
	d := &Directory{}
	_ = d.attach(d)
	return d
}

// NewDirectory creates a directory named bn inside parent.
func NewDirectory(bn string, parent *Directory) (*Directory, error) {
	n, err := newNode("newDirectory", bn, parent)
	if err != nil {
		return nil, err
	}
	d := &Directory{node: n}
	if err := d.attach(d); err != nil {
		return nil, err
	}
	return d, nil
}

// IsRoot reports whether d is the root of its tree.
func (d *Directory) IsRoot() bool {
	return d.parent == nil
}

// Children returns a copy of the child nodes.
func (d *Directory) Children() []Node {
	return slices.Clone(d.children)
}

// HasChildNode reports whether cn is a direct child of d.
func (d *Directory) HasChildNode(cn Node) bool {
	return cn != nil && slices.Contains(d.children, cn)
}

// AddChildNode adds cn to d.
func (d *Directory) AddChildNode(cn Node) error {
	const op = "addChildNode"
	if cn == nil {
		return moniker.NewIllegalArgument(op, "child node must not be nil")
	}
	if cn == Node(d) {
		return moniker.NewIllegalArgument(op, "directory cannot contain itself")
	}
	if d.HasChildNode(cn) {
		return moniker.NewIllegalArgument(op, "child already exists")
	}
	d.children = append(d.children, cn)
	return nil
}

// RemoveChildNode removes cn from d.
func (d *Directory) RemoveChildNode(cn Node) error {
	const op = "removeChildNode"
	if cn == nil {
		return moniker.NewIllegalArgument(op, "child node must not be nil")
	}
	i := slices.Index(d.children, cn)
	if i < 0 {
		return moniker.NewIllegalArgument(op, "cannot remove non-existing child")
	}
	d.children = slices.Delete(d.children, i, i+1)
	return nil
}
