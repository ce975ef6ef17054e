package moniker

// Cloner allows types to provide deep copy logic.
//
// The Clone method must return a copy where modifications to the clone do not
// affect the original value. Name is immutable, so its Clone returns the
// receiver; MutableName copies its current value into a new owner:
//
//	m := moniker.NewMutableName(n)
//	c := m.Clone()
//	_ = c.Append("x") // m is unchanged
type Cloner[T any] interface {
	Clone() T
}

var (
	_ Cloner[Name]         = Name{}
	_ Cloner[*MutableName] = (*MutableName)(nil)
)

// Clone returns n. Names never change after construction.
func (n Name) Clone() Name {
	return n
}

// Clone returns a MutableName with the same current value and its own
// mutation history.
func (m *MutableName) Clone() *MutableName {
	return &MutableName{current: m.current}
}
