package files

import (
	"context"
	"fmt"
	"io"

	"github.com/zoobzio/moniker"
)

// FileState is the lifecycle state of a File.
type FileState int

const (
	Closed FileState = iota
	Open
	Deleted
)

func (s FileState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Deleted:
		return "deleted"
	}
	return fmt.Sprintf("FileState(%d)", int(s))
}

// File is a leaf node with byte content. Content can only be read or written
// while the file is open.
type File struct {
	node
	state   FileState
	content []byte
	offset  int
}

// NewFile creates a closed, empty file named bn inside parent.
func NewFile(bn string, parent *Directory) (*File, error) {
	n, err := newNode("newFile", bn, parent)
	if err != nil {
		return nil, err
	}
	f := &File{node: n}
	if err := f.attach(f); err != nil {
		return nil, err
	}
	return f, nil
}

// State returns the current lifecycle state.
func (f *File) State() FileState {
	return f.state
}

// Open opens a closed file and rewinds it.
func (f *File) Open() error {
	if err := f.requireState("open", Closed); err != nil {
		return err
	}
	f.state = Open
	f.offset = 0
	return nil
}

// Read returns up to n bytes from the current offset, or io.EOF once the
// content is exhausted.
func (f *File) Read(n int) ([]byte, error) {
	if err := f.requireState("read", Open); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, moniker.NewIllegalArgument("read", fmt.Sprintf("read size %d must be > 0", n))
	}
	if f.offset >= len(f.content) {
		return nil, io.EOF
	}
	end := min(f.offset+n, len(f.content))
	out := make([]byte, end-f.offset)
	copy(out, f.content[f.offset:end])
	f.offset = end
	return out, nil
}

// Write appends p to the content.
func (f *File) Write(p []byte) (int, error) {
	if err := f.requireState("write", Open); err != nil {
		return 0, err
	}
	f.content = append(f.content, p...)
	return len(p), nil
}

// Close closes an open file.
func (f *File) Close() error {
	if err := f.requireState("close", Open); err != nil {
		return err
	}
	f.state = Closed
	return nil
}

// Delete closes the file if needed and detaches it from its parent. A deleted
// file accepts no further operations.
func (f *File) Delete() error {
	if f.state == Deleted {
		return moniker.NewIllegalArgument("delete", "file is already deleted")
	}
	if err := f.parent.RemoveChildNode(f); err != nil {
		return err
	}
	f.state = Deleted
	f.content = nil
	emitNodeDeleted(context.Background(), f)
	return nil
}

func (f *File) requireState(op string, want FileState) error {
	if f.state != want {
		return moniker.NewIllegalArgument(op, fmt.Sprintf("file must be %s, is %s", want, f.state))
	}
	return nil
}
