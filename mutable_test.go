package moniker

import (
	"errors"
	"slices"
	"testing"
)

func TestMutableName_Mutators(t *testing.T) {
	m := NewMutableName(MustStringName("a.c"))

	if err := m.Insert(1, "b"); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	if err := m.Append("d.e"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if err := m.SetComponent(0, "z"); err != nil {
		t.Fatalf("SetComponent() error: %v", err)
	}
	if err := m.Remove(2); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if err := m.Concat(MustArrayName([]string{"f"}, WithDelimiter('/'))); err != nil {
		t.Fatalf("Concat() error: %v", err)
	}

	want := []string{"z", "b", "d.e", "f"}
	if got := m.Name().Components(); !slices.Equal(got, want) {
		t.Errorf("Components() = %q, want %q", got, want)
	}
	if m.AsDataString() != `z.b.d\.e.f` {
		t.Errorf("AsDataString() = %q, want %q", m.AsDataString(), `z.b.d\.e.f`)
	}
	if m.NoComponents() != 4 || m.IsEmpty() {
		t.Errorf("NoComponents() = %d, IsEmpty() = %v", m.NoComponents(), m.IsEmpty())
	}
	if m.Name().Kind() != KindString {
		t.Errorf("Kind() = %q, want representation preserved", m.Name().Kind())
	}
}

func TestMutableName_SnapshotIsolation(t *testing.T) {
	m := NewMutableName(MustArrayName([]string{"a"}))
	before := m.Name()

	if err := m.Append("b"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if before.AsString() != "a" {
		t.Errorf("earlier snapshot changed to %q", before.AsString())
	}
	if m.AsString() != "a.b" {
		t.Errorf("AsString() = %q, want %q", m.AsString(), "a.b")
	}
}

func TestMutableName_PreconditionLeavesState(t *testing.T) {
	m := NewMutableName(MustArrayName([]string{"a", "b"}))

	errs := []error{
		m.SetComponent(2, "x"),
		m.Insert(-1, "x"),
		m.Remove(5),
		m.Concat(nil),
	}
	for i, err := range errs {
		if !errors.Is(err, ErrIllegalArgument) {
			t.Errorf("call %d error = %v, want ErrIllegalArgument", i, err)
		}
	}
	if m.AsString() != "a.b" {
		t.Errorf("state changed to %q", m.AsString())
	}
}

func TestMutableName_RollbackOnPostcondition(t *testing.T) {
	m := NewMutableName(faulty(t, func(a *arrayName) representation { return droppingRep{a} }, "a", "b"))

	err := m.Append("c")
	if !errors.Is(err, ErrMethodFailed) {
		t.Fatalf("Append() error = %v, want ErrMethodFailed", err)
	}
	if got := m.Name().Components(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("state after failed Append = %q, want rollback", got)
	}
}

func TestMutableName_InvariantFailureKeepsState(t *testing.T) {
	m := NewMutableName(faulty(t, func(a *arrayName) representation { return miscountingRep{a} }, "a"))

	if err := m.Remove(0); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Remove() error = %v, want ErrInvalidState", err)
	}
	if m.NoComponents() != 1 {
		t.Errorf("NoComponents() = %d, want 1", m.NoComponents())
	}
}

func TestMutableName_Equality(t *testing.T) {
	m := NewMutableName(MustArrayName([]string{"a", "b"}))
	n := MustStringName("a.b")

	if !m.IsEqual(n) || !n.IsEqual(m) {
		t.Error("MutableName and Name with same content should be equal")
	}
	if m.HashCode() != n.HashCode() {
		t.Error("equal names should share hash codes")
	}
	if m.String() != n.String() {
		t.Errorf("String() = %q, want %q", m.String(), n.String())
	}
}

func TestMutableName_Clone(t *testing.T) {
	m := NewMutableName(MustArrayName([]string{"a"}))
	c := m.Clone()

	if err := c.Append("b"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if m.AsString() != "a" {
		t.Errorf("original changed to %q", m.AsString())
	}
	if c.AsString() != "a.b" {
		t.Errorf("clone = %q, want %q", c.AsString(), "a.b")
	}

	n := MustArrayName([]string{"x"})
	if !n.Clone().IsEqual(n) {
		t.Error("Name.Clone() should equal the original")
	}
}

func TestMutableName_Component(t *testing.T) {
	m := NewMutableName(MustStringName(`a\.b.c`))

	c, err := m.Component(0)
	if err != nil || c != "a.b" {
		t.Errorf("Component(0) = %q, %v", c, err)
	}
	if _, err := m.Component(2); !errors.Is(err, ErrIllegalArgument) {
		t.Errorf("Component(2) error = %v, want ErrIllegalArgument", err)
	}
	if m.Delimiter() != '.' {
		t.Errorf("Delimiter() = %q", m.Delimiter())
	}
}
