// Package moniker provides hierarchical names: ordered sequences of textual
// components joined by a single delimiter character.
//
// Components may contain any text, including the delimiter and the escape
// character '\'. They are stored unmasked and masked only when a name is
// serialized, so the data string always parses back to the same components.
//
// # Masking
//
// The escape character precedes every delimiter and every escape character
// inside a component:
//
//	Escape(`a.b`, '.')   // `a\.b`
//	Escape(`c\d`, '.')   // `c\\d`
//
// A masked component contains no bare delimiter, and every escape character is
// followed by the delimiter or another escape character. IsProperlyMasked and
// IsProperlyMaskedData check this grammar; Split and UnmaskComponent reject
// input that violates it.
//
// # Names
//
// A Name is immutable. Mutators return a new Name and leave the receiver as it
// was:
//
//	n := moniker.MustArrayName([]string{"a", "c"})
//	m, _ := n.Insert(1, "b")
//	n.AsString() // "a.c"
//	m.AsString() // "a.b.c"
//
// MutableName wraps a Name for callers that need in-place updates. A failed
// update leaves the previous value in place.
//
// # Representations
//
// Names are backed by one of two representations, selected by Kind:
//
//   - KindArray stores the components as a slice
//   - KindString stores the masked data string and splits it on demand
//
// Both behave identically. Equality and hashing read names only through the
// Sequence accessors, so an array-backed and a string-backed name with the same
// content are equal and share a hash code. Convert switches representations.
//
// # Contracts
//
// Every mutator checks its preconditions, a postcondition on the result, and
// the class invariants. Violations are reported as ContractError values
// wrapping one of:
//
//   - ErrIllegalArgument: invalid index, delimiter or masked input
//   - ErrMethodFailed: a postcondition did not hold
//   - ErrInvalidState: an invariant did not hold
//
// Each violation also emits SignalContractViolated through capitan.
//
// # Records and Codecs
//
// Record is the persisted form of a Name. Encode and Decode move records
// through any Codec; the following implementations are available as
// subpackages:
//
//   - json - JSON encoding (application/json)
//   - jx - reflection-free JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Binding
//
// Binder reads names out of tagged struct fields:
//
//	type Route struct {
//	    Path  string   `json:"path" name:"/" name.hash:"sha256"`
//	    Scope []string `json:"scope" name:""`
//	}
//
//	b, _ := moniker.Use[Route]()
//	names, _ := b.Names(&route)
//	sums, _ := b.Fingerprints(&route)
//
// Types can skip reflection by implementing Nameable.
//
// # Fingerprints
//
// Built-in hashers:
//
//   - SHA256Hasher() - SHA-256
//   - SHA512Hasher() - SHA-512
//   - Blake2bHasher() - BLAKE2b-256
package moniker
