package moniker

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Hasher performs one-way hashing of a name's canonical bytes.
type Hasher interface {
	// Hash returns the hex-encoded digest of data.
	Hash(data []byte) (string, error)
}

// sha256Hasher implements SHA-256 hashing.
type sha256Hasher struct{}

// SHA256Hasher returns a SHA-256 hasher.
// The result is a hex-encoded 64-character string.
func SHA256Hasher() Hasher {
	return &sha256Hasher{}
}

func (h *sha256Hasher) Hash(data []byte) (string, error) {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// sha512Hasher implements SHA-512 hashing.
type sha512Hasher struct{}

// SHA512Hasher returns a SHA-512 hasher.
// The result is a hex-encoded 128-character string.
func SHA512Hasher() Hasher {
	return &sha512Hasher{}
}

func (h *sha512Hasher) Hash(data []byte) (string, error) {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:]), nil
}

// blake2bHasher implements BLAKE2b-256 hashing.
type blake2bHasher struct{}

// Blake2bHasher returns a BLAKE2b-256 hasher.
// The result is a hex-encoded 64-character string.
func Blake2bHasher() Hasher {
	return &blake2bHasher{}
}

func (h *blake2bHasher) Hash(data []byte) (string, error) {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// builtinHashers returns the default hasher registry.
func builtinHashers() map[HashAlgo]Hasher {
	return map[HashAlgo]Hasher{
		HashSHA256:  SHA256Hasher(),
		HashSHA512:  SHA512Hasher(),
		HashBlake2b: Blake2bHasher(),
	}
}

// canonicalBytes is the input to fingerprints: component count, delimiter and
// data string. The count separates the empty name from a single empty
// component.
func canonicalBytes(n Name) []byte {
	return []byte(fmt.Sprintf("%d%c%s", n.NoComponents(), n.Delimiter(), n.AsDataString()))
}

// Fingerprint returns a stable digest of n using a builtin hasher. Equal names
// share fingerprints regardless of representation.
func (n Name) Fingerprint(algo HashAlgo) (string, error) {
	h, ok := builtinHashers()[algo]
	if !ok {
		return "", newConfigError(ErrMissingHasher, string(algo), "")
	}
	return fingerprint(h, n)
}

func fingerprint(h Hasher, n Name) (string, error) {
	sum, err := h.Hash(canonicalBytes(n))
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return sum, nil
}
