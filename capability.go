package moniker

// Kind identifies the representation backing a Name.
// Use these constants in records: `kind: "array"`.
type Kind string

const (
	// KindArray stores components directly as a slice.
	KindArray Kind = "array"

	// KindString stores one masked data string and splits it on demand.
	KindString Kind = "string"
)

// HashAlgo represents a supported fingerprint algorithm.
// Use these constants in struct tags: `name.hash:"sha256"`
type HashAlgo string

const (
	// HashSHA256 uses SHA-256 for deterministic fingerprints.
	HashSHA256 HashAlgo = "sha256"

	// HashSHA512 uses SHA-512 for deterministic fingerprints.
	HashSHA512 HashAlgo = "sha512"

	// HashBlake2b uses BLAKE2b-256 for deterministic fingerprints.
	HashBlake2b HashAlgo = "blake2b"
)

// validKinds contains all valid representation kinds.
var validKinds = map[Kind]bool{
	KindArray:  true,
	KindString: true,
}

// validHashAlgos contains all valid hash algorithms for tag validation.
var validHashAlgos = map[HashAlgo]bool{
	HashSHA256:  true,
	HashSHA512:  true,
	HashBlake2b: true,
}

// IsValidKind returns true if the kind is a known representation.
func IsValidKind(k Kind) bool {
	return validKinds[k]
}

// IsValidHashAlgo returns true if the algorithm is a known hash algorithm.
func IsValidHashAlgo(algo HashAlgo) bool {
	return validHashAlgos[algo]
}
