package files

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for tree events.
var (
	SignalNodeCreated = capitan.NewSignal("files.node.created", "Node attached to its parent")
	SignalNodeDeleted = capitan.NewSignal("files.node.deleted", "File deleted")
)

// Keys for typed event data.
var (
	KeyBaseName = capitan.NewStringKey("base_name")
	KeyNodeType = capitan.NewStringKey("node_type")
)

func emitNodeCreated(ctx context.Context, nd Node) {
	capitan.Emit(ctx, SignalNodeCreated,
		KeyBaseName.Field(rawBaseName(nd)),
		KeyNodeType.Field(nodeType(nd)),
	)
}

func emitNodeDeleted(ctx context.Context, nd Node) {
	capitan.Emit(ctx, SignalNodeDeleted,
		KeyBaseName.Field(rawBaseName(nd)),
		KeyNodeType.Field(nodeType(nd)),
	)
}

// rawBaseName reads the stored name without checks; links may not have a
// target yet when they are created.
func rawBaseName(nd Node) string {
	switch n := nd.(type) {
	case *Directory:
		return n.baseName
	case *File:
		return n.baseName
	case *Link:
		return n.baseName
	}
	return ""
}

func nodeType(nd Node) string {
	switch nd.(type) {
	case *Directory:
		return "directory"
	case *Link:
		return "link"
	case *File:
		return "file"
	}
	return "unknown"
}
