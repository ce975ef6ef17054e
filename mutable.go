package moniker

// MutableName is the in-place counterpart of Name. Each mutator computes a
// fully checked successor on a scratch copy and swaps it in only after every
// precondition, postcondition and invariant check has passed; on failure the
// previous name stays in place.
//
// A MutableName has a single owner and is not safe for concurrent mutation.
// Hand out Name() snapshots to share its value.
type MutableName struct {
	current Name
}

// NewMutableName returns a MutableName starting from n.
func NewMutableName(n Name) *MutableName {
	return &MutableName{current: n}
}

// Name returns the current value. Later mutations do not affect it.
func (m *MutableName) Name() Name {
	return m.current
}

// Delimiter returns the delimiter character.
func (m *MutableName) Delimiter() rune {
	return m.current.Delimiter()
}

// NoComponents returns the number of components.
func (m *MutableName) NoComponents() int {
	return m.current.NoComponents()
}

// Component returns the unmasked component at index i.
func (m *MutableName) Component(i int) (string, error) {
	return m.current.Component(i)
}

// IsEmpty reports whether the name has no components.
func (m *MutableName) IsEmpty() bool {
	return m.current.IsEmpty()
}

// AsString joins the unmasked components with the delimiter.
func (m *MutableName) AsString() string {
	return m.current.AsString()
}

// AsDataString joins the masked components with the delimiter.
func (m *MutableName) AsDataString() string {
	return m.current.AsDataString()
}

// String implements fmt.Stringer using the data string.
func (m *MutableName) String() string {
	return m.current.String()
}

// IsEqual reports whether other holds the same components and delimiter.
func (m *MutableName) IsEqual(other Sequence) bool {
	return Equal(m, other)
}

// HashCode returns a hash that agrees with IsEqual.
func (m *MutableName) HashCode() uint64 {
	return HashCode(m)
}

// SetComponent replaces component i with c.
func (m *MutableName) SetComponent(i int, c string) error {
	return m.apply("setComponent", func(n Name) (Name, error) {
		return n.SetComponent(i, c)
	})
}

// Insert inserts c before index i.
func (m *MutableName) Insert(i int, c string) error {
	return m.apply("insert", func(n Name) (Name, error) {
		return n.Insert(i, c)
	})
}

// Append adds c after the last component.
func (m *MutableName) Append(c string) error {
	return m.apply("append", func(n Name) (Name, error) {
		return n.Append(c)
	})
}

// Remove deletes component i.
func (m *MutableName) Remove(i int) error {
	return m.apply("remove", func(n Name) (Name, error) {
		return n.Remove(i)
	})
}

// Concat appends every component of other.
func (m *MutableName) Concat(other Sequence) error {
	return m.apply("concat", func(n Name) (Name, error) {
		return n.Concat(other)
	})
}

// apply swaps in the successor produced by f once it passes the invariant
// check.
func (m *MutableName) apply(op string, f func(Name) (Name, error)) error {
	next, err := f(m.current)
	if err != nil {
		return err
	}
	if err := checkInvariant(op, next.r()); err != nil {
		return err
	}
	m.current = next
	return nil
}
