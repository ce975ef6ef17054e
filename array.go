package moniker

import "slices"

// arrayName keeps components directly as a slice. The slice is owned by the
// representation and never handed out.
type arrayName struct {
	delim      rune
	components []string
}

func newArrayRep(components []string, d rune) representation {
	return &arrayName{delim: d, components: slices.Clone(components)}
}

func (a *arrayName) kind() Kind      { return KindArray }
func (a *arrayName) delimiter() rune { return a.delim }
func (a *arrayName) count() int      { return len(a.components) }

func (a *arrayName) component(i int) string {
	return a.components[i]
}

func (a *arrayName) snapshot() []string {
	return slices.Clone(a.components)
}

func (a *arrayName) build(components []string) (representation, error) {
	return newArrayRep(components, a.delim), nil
}
