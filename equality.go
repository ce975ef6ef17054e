package moniker

// hashMultiplier is the polynomial base used by HashCode.
const hashMultiplier = 31

// unreadableMarker is folded in for a component a Sequence fails to return.
const unreadableMarker = 0x9e3779b97f4a7c15

// Equal reports whether a and b have the same delimiter and the same
// components in the same order. Both are read only through Sequence, so names
// backed by different representations compare equal when their content does.
// Two nil sequences are equal.
func Equal(a, b Sequence) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.NoComponents() != b.NoComponents() {
		return false
	}
	if a.Delimiter() != b.Delimiter() {
		return false
	}
	for i := 0; i < a.NoComponents(); i++ {
		ca, err := a.Component(i)
		if err != nil {
			return false
		}
		cb, err := b.Component(i)
		if err != nil {
			return false
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// HashCode folds every component's bytes, each component boundary, and the
// delimiter into an order-sensitive polynomial hash. Sequences that Equal
// reports equal share a hash code. An unreadable component ends the fold with
// unreadableMarker.
func HashCode(s Sequence) uint64 {
	if s == nil {
		return 0
	}
	var h uint64
	for i := 0; i < s.NoComponents(); i++ {
		c, err := s.Component(i)
		if err != nil {
			h = h*hashMultiplier + unreadableMarker
			break
		}
		for j := 0; j < len(c); j++ {
			h = h*hashMultiplier + uint64(c[j])
		}
		// boundary marker, so ["ab"] and ["a", "b"] differ
		h = h*hashMultiplier + uint64(len(c)) + 1
	}
	return h*hashMultiplier + uint64(s.Delimiter())
}
