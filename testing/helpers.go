// Package testing provides test utilities for moniker.
package testing

import (
	"slices"
	"testing"

	"github.com/zoobzio/moniker"
)

// Fixture is a named component sequence.
type Fixture struct {
	Name       string
	Components []string
}

// Fixtures returns component sequences covering delimiter and escape edge
// cases. A single empty component is left out because its data string is
// indistinguishable from the empty name.
func Fixtures() []Fixture {
	return []Fixture{
		{"empty", []string{}},
		{"single", []string{"oss"}},
		{"host", []string{"oss", "cs", "fau", "de"}},
		{"delimiter inside", []string{"a.b", "c"}},
		{"escape inside", []string{`c\d`}},
		{"trailing dots", []string{"Oh..."}},
		{"escaped pair", []string{`\.`, `.\`}},
		{"empty components", []string{"", "x", ""}},
		{"slashes", []string{"usr/local", "bin"}},
		{"unicode", []string{"größe", "→", "名前"}},
		{"control characters", []string{"a\x01b", "  pad  "}},
	}
}

// BinaryFixtures returns component sequences that are not valid UTF-8. Names
// carry them byte for byte; codecs built on JSON strings reject them.
func BinaryFixtures() []Fixture {
	return []Fixture{
		{"invalid byte", []string{"a\xff", "b"}},
		{"invalid byte after delimiter", []string{"q.\xff"}},
		{"truncated rune", []string{"\xe2\x86", "\\\xfe."}},
	}
}

// Both builds the same logical name in the array and string representations.
func Both(t testing.TB, components []string, opts ...moniker.Option) (moniker.Name, moniker.Name) {
	t.Helper()
	arr, err := moniker.NewArrayName(components, opts...)
	if err != nil {
		t.Fatalf("NewArrayName(%q) error: %v", components, err)
	}
	str, err := moniker.FromComponents(moniker.KindString, components, opts...)
	if err != nil {
		t.Fatalf("FromComponents(string, %q) error: %v", components, err)
	}
	return arr, str
}

// AssertSameName fails t unless a and b are equal, share a hash code and
// expose the same components.
func AssertSameName(t testing.TB, a, b moniker.Name) {
	t.Helper()
	if !a.IsEqual(b) || !b.IsEqual(a) {
		t.Errorf("names differ: %q (%s) vs %q (%s)", a, a.Kind(), b, b.Kind())
		return
	}
	if a.HashCode() != b.HashCode() {
		t.Errorf("equal names %q and %q have different hash codes", a, b)
	}
	if !slices.Equal(a.Components(), b.Components()) {
		t.Errorf("components differ: %q vs %q", a.Components(), b.Components())
	}
}
