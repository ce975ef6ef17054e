package moniker

import (
	"fmt"
	"slices"
	"strings"
)

// Sequence is the accessor contract every name exposes. Equality, hashing and
// concatenation read names only through it, so the representation behind a
// name is never observable.
type Sequence interface {
	// Delimiter returns the delimiter character.
	Delimiter() rune

	// NoComponents returns the number of components.
	NoComponents() int

	// Component returns the unmasked component at index i.
	Component(i int) (string, error)
}

// representation is the minimal capability a storage strategy supplies.
// Indices passed to component are already validated.
type representation interface {
	kind() Kind
	delimiter() rune
	count() int
	component(i int) string
	snapshot() []string

	// build creates a new instance of the same representation holding
	// components. It never aliases the argument.
	build(components []string) (representation, error)
}

// verifier is implemented by representations with invariants of their own.
// verify returns "" when the representation is consistent.
type verifier interface {
	verify() string
}

// factories maps each Kind to the constructor of its representation.
var factories = map[Kind]func(components []string, d rune) representation{
	KindArray:  newArrayRep,
	KindString: newStringRep,
}

// emptyName backs the zero Name.
var emptyName = newArrayRep(nil, DefaultDelimiter)

// Name is an immutable hierarchical name: an ordered sequence of components
// joined by a delimiter character. Components are stored unmasked; masking is
// applied only when producing the data string.
//
// Every mutator returns a new Name and leaves the receiver untouched, so Names
// are safe to share between goroutines. The zero Name is empty and uses
// DefaultDelimiter.
//
//	n := moniker.MustArrayName([]string{"oss", "cs", "fau", "de"})
//	n.AsString()     // "oss.cs.fau.de"
//
//	m, _ := n.Insert(1, "a.b")
//	m.AsDataString() // `oss.a\.b.cs.fau.de`
type Name struct {
	rep representation
}

// Option configures Name construction.
type Option func(*options)

type options struct {
	delimiter rune
}

// WithDelimiter sets the delimiter character. It must satisfy IsValidDelimiter.
func WithDelimiter(d rune) Option {
	return func(o *options) {
		o.delimiter = d
	}
}

func resolve(opts []Option) (rune, error) {
	o := options{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}
	if !IsValidDelimiter(o.delimiter) {
		return 0, violate(ErrIllegalArgument, "new",
			fmt.Sprintf("delimiter %q must be a single character other than %q", o.delimiter, EscapeCharacter))
	}
	return o.delimiter, nil
}

// NewArrayName creates an array-backed Name from unmasked components.
func NewArrayName(components []string, opts ...Option) (Name, error) {
	return FromComponents(KindArray, components, opts...)
}

// NewStringName creates a string-backed Name from a masked data string, as
// produced by AsDataString.
func NewStringName(data string, opts ...Option) (Name, error) {
	d, err := resolve(opts)
	if err != nil {
		return Name{}, err
	}
	rep, err := parseStringRep(data, d)
	if err != nil {
		return Name{}, err
	}
	if err := checkInvariant("new", rep); err != nil {
		return Name{}, err
	}
	return Name{rep: rep}, nil
}

// Parse is NewStringName.
func Parse(data string, opts ...Option) (Name, error) {
	return NewStringName(data, opts...)
}

// FromComponents creates a Name of the given kind from unmasked components.
func FromComponents(kind Kind, components []string, opts ...Option) (Name, error) {
	factory, ok := factories[kind]
	if !ok {
		return Name{}, violate(ErrIllegalArgument, "new", fmt.Sprintf("unknown kind %q", kind))
	}
	d, err := resolve(opts)
	if err != nil {
		return Name{}, err
	}
	rep := factory(components, d)
	if err := checkInvariant("new", rep); err != nil {
		return Name{}, err
	}
	return Name{rep: rep}, nil
}

// MustArrayName is like NewArrayName but panics on error.
func MustArrayName(components []string, opts ...Option) Name {
	n, err := NewArrayName(components, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// MustStringName is like NewStringName but panics on error.
func MustStringName(data string, opts ...Option) Name {
	n, err := NewStringName(data, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Name) r() representation {
	if n.rep == nil {
		return emptyName
	}
	return n.rep
}

// Kind returns the representation backing n.
func (n Name) Kind() Kind {
	return n.r().kind()
}

// Delimiter returns the delimiter character.
func (n Name) Delimiter() rune {
	return n.r().delimiter()
}

// NoComponents returns the number of components.
func (n Name) NoComponents() int {
	return n.r().count()
}

// IsEmpty reports whether n has no components.
func (n Name) IsEmpty() bool {
	return n.NoComponents() == 0
}

// Component returns the unmasked component at index i.
func (n Name) Component(i int) (string, error) {
	rep := n.r()
	if err := requireIndex("component", i, rep.count()); err != nil {
		return "", err
	}
	return rep.component(i), nil
}

// Components returns a copy of all unmasked components.
func (n Name) Components() []string {
	return n.r().snapshot()
}

// AsString joins the unmasked components with the name's own delimiter.
// The result is for display and does not round-trip when a component
// contains the delimiter.
func (n Name) AsString() string {
	return n.AsStringWith(n.Delimiter())
}

// AsStringWith joins the unmasked components with d.
func (n Name) AsStringWith(d rune) string {
	return strings.Join(n.r().snapshot(), string(d))
}

// AsDataString joins the masked components with the name's delimiter. Parse
// with the same delimiter restores the components.
func (n Name) AsDataString() string {
	rep := n.r()
	if s, ok := rep.(*stringName); ok {
		return s.data
	}
	return Join(rep.snapshot(), rep.delimiter())
}

// String implements fmt.Stringer using the data string.
func (n Name) String() string {
	return n.AsDataString()
}

// IsEqual reports whether other holds the same components and delimiter.
func (n Name) IsEqual(other Sequence) bool {
	return Equal(n, other)
}

// HashCode returns a hash that agrees with IsEqual.
func (n Name) HashCode() uint64 {
	return HashCode(n)
}

// Convert returns the same logical name backed by the given representation.
func (n Name) Convert(kind Kind) (Name, error) {
	if kind == n.Kind() {
		return n, nil
	}
	return FromComponents(kind, n.Components(), WithDelimiter(n.Delimiter()))
}

// SetComponent returns a Name with component i replaced by c.
func (n Name) SetComponent(i int, c string) (Name, error) {
	const op = "setComponent"
	if err := requireIndex(op, i, n.NoComponents()); err != nil {
		return Name{}, err
	}
	return n.derive(op, func(components []string) []string {
		components[i] = c
		return components
	}, func(before []string, next representation) error {
		return ensureSet(op, before, next, i, c)
	})
}

// Insert returns a Name with c inserted before index i. Inserting at
// NoComponents() appends.
func (n Name) Insert(i int, c string) (Name, error) {
	const op = "insert"
	if err := requireInsertIndex(op, i, n.NoComponents()); err != nil {
		return Name{}, err
	}
	return n.derive(op, func(components []string) []string {
		return slices.Insert(components, i, c)
	}, func(before []string, next representation) error {
		return ensureInsert(op, before, next, i, c)
	})
}

// Append returns a Name with c added after the last component.
func (n Name) Append(c string) (Name, error) {
	const op = "append"
	return n.derive(op, func(components []string) []string {
		return append(components, c)
	}, func(before []string, next representation) error {
		return ensureAppend(op, before, next, c)
	})
}

// Remove returns a Name without component i.
func (n Name) Remove(i int) (Name, error) {
	const op = "remove"
	if err := requireIndex(op, i, n.NoComponents()); err != nil {
		return Name{}, err
	}
	return n.derive(op, func(components []string) []string {
		return slices.Delete(components, i, i+1)
	}, func(before []string, next representation) error {
		return ensureRemove(op, before, next, i)
	})
}

// Concat returns a Name holding n's components followed by other's, with n's
// delimiter. other is read only through Sequence.
func (n Name) Concat(other Sequence) (Name, error) {
	const op = "concat"
	if other == nil {
		return Name{}, violate(ErrIllegalArgument, op, "other name must not be nil")
	}
	suffix, err := readAll(other)
	if err != nil {
		return Name{}, err
	}
	return n.derive(op, func(components []string) []string {
		return append(components, suffix...)
	}, func(before []string, next representation) error {
		return ensureConcat(op, before, suffix, next)
	})
}

// derive runs the effect and postcondition phases on a snapshot of n and
// returns the checked successor. n itself is never modified.
func (n Name) derive(op string, effect func(before []string) []string, post func(before []string, next representation) error) (Name, error) {
	rep := n.r()
	before := rep.snapshot()
	next, err := rep.build(effect(slices.Clone(before)))
	if err != nil {
		return Name{}, err
	}
	if err := post(before, next); err != nil {
		return Name{}, err
	}
	if err := checkInvariant(op, next); err != nil {
		return Name{}, err
	}
	return Name{rep: next}, nil
}

// readAll copies every component of s through its accessor contract.
func readAll(s Sequence) ([]string, error) {
	out := make([]string, s.NoComponents())
	for i := range out {
		c, err := s.Component(i)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
