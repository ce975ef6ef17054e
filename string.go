package moniker

import (
	"fmt"
	"sync"
)

// stringName keeps one masked data string and a cached component count.
// Components are split out lazily on first access.
type stringName struct {
	delim rune
	data  string
	n     int

	once  sync.Once
	parts []string
}

// parseStringRep validates data and counts its components.
func parseStringRep(data string, d rune) (representation, error) {
	parts, err := Split(data, d)
	if err != nil {
		return nil, err
	}
	return &stringName{delim: d, data: data, n: len(parts)}, nil
}

// newStringRep serializes components. The count is kept explicitly so a
// single empty component survives even though it serializes to "".
func newStringRep(components []string, d rune) representation {
	return &stringName{delim: d, data: Join(components, d), n: len(components)}
}

func (s *stringName) kind() Kind      { return KindString }
func (s *stringName) delimiter() rune { return s.delim }
func (s *stringName) count() int      { return s.n }

func (s *stringName) component(i int) string {
	return s.split()[i]
}

func (s *stringName) snapshot() []string {
	parts := s.split()
	out := make([]string, len(parts))
	copy(out, parts)
	return out
}

func (s *stringName) build(components []string) (representation, error) {
	return newStringRep(components, s.delim), nil
}

// verify checks the data string itself, beyond what the shared invariant
// check derives from the components.
func (s *stringName) verify() string {
	if !IsProperlyMaskedData(s.data, s.delim) {
		return fmt.Sprintf("data string %q is not properly masked", s.data)
	}
	if s.data == "" && s.n > 1 {
		return fmt.Sprintf("empty data string cannot hold %d components", s.n)
	}
	return ""
}

func (s *stringName) split() []string {
	s.once.Do(func() {
		if s.data == "" {
			s.parts = make([]string, s.n)
			return
		}
		s.parts = splitMasked(s.data, s.delim)
	})
	return s.parts
}
