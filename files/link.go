package files

import "github.com/zoobzio/moniker"

// Link is a node that stands in for another node. Its base name is the
// target's base name, and renaming the link renames the target.
type Link struct {
	node
	target Node
}

// NewLink creates a link named bn inside parent. target may be nil and set
// later with SetTarget.
func NewLink(bn string, parent *Directory, target Node) (*Link, error) {
	n, err := newNode("newLink", bn, parent)
	if err != nil {
		return nil, err
	}
	l := &Link{node: n, target: target}
	if err := l.attach(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Target returns the linked node, or nil.
func (l *Link) Target() Node {
	return l.target
}

// SetTarget points the link at target.
func (l *Link) SetTarget(target Node) error {
	if target == nil {
		return moniker.NewIllegalArgument("setTarget", "target node must not be nil")
	}
	if target == Node(l) {
		return moniker.NewIllegalArgument("setTarget", "link cannot point to itself")
	}
	l.target = target
	return nil
}

func (l *Link) BaseName() (string, error) {
	if l.target == nil {
		return "", moniker.NewIllegalArgument("baseName", "link must point to a valid target")
	}
	return l.target.BaseName()
}

func (l *Link) Rename(bn string) error {
	if l.target == nil {
		return moniker.NewIllegalArgument("rename", "link must point to a valid target")
	}
	return l.target.Rename(bn)
}
