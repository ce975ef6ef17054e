package moniker

// Nameable bypasses reflection in Binder. When a bound type implements it,
// Names, Validate and Fingerprints use the returned names instead of scanning
// tagged fields.
//
// Keys must match the dotted field paths the binder reports from Fields, so
// that name.hash tags still select the fields to fingerprint. This makes the
// interface suitable for generated code.
type Nameable interface {
	// Names returns the hierarchical names held by the receiver.
	Names() (map[string]Name, error)
}
