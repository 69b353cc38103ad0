package multihash

import (
	"crypto/md5"  //nolint:gosec // MD5 is a supported checksum, not a signature
	"crypto/sha1" //nolint:gosec // SHA1 is a supported checksum, not a signature
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"
)

// Algorithm identifies a digest algorithm.
type Algorithm string

// Supported algorithm identifiers.
const (
	MD5    Algorithm = "MD5"
	SHA1   Algorithm = "SHA1"
	SHA256 Algorithm = "SHA256"
)

type algorithmEntry struct {
	id  Algorithm
	new func() hash.Hash
}

// algorithms is the single source of the supported set. The
// registry and the Accumulator constructor both range over it.
var algorithms = []algorithmEntry{
	{id: MD5, new: md5.New},
	{id: SHA1, new: sha1.New},
	{id: SHA256, new: sha256.New},
}

// SupportedAlgorithms returns the identifiers every
// Accumulator computes, in a stable order.
func SupportedAlgorithms() []Algorithm {
	ids := make([]Algorithm, 0, len(algorithms))

	for _, en := range algorithms {
		ids = append(ids, en.id)
	}

	return ids
}

// IsSupported reports whether alg is in the supported set.
func IsSupported(alg Algorithm) bool {
	_, ok := lookup(alg)

	return ok
}

// ParseAlgorithm resolves a user supplied name such as
// "sha256", "SHA-256" or "md5" to its identifier.
func ParseAlgorithm(name string) (Algorithm, error) {
	const errCtx = "parsing algorithm"

	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", ""))

	if en, ok := lookup(Algorithm(norm)); ok {
		return en.id, nil
	}

	return "", fmt.Errorf("%s: %w: %q", errCtx, ErrUnsupportedAlgorithm, name)
}

// DigestLen returns the length of the hex digest produced by
// alg, or 0 if alg is not supported.
func (alg Algorithm) DigestLen() int {
	en, ok := lookup(alg)
	if !ok {
		return 0
	}

	return en.new().Size() * 2
}

// String implements fmt.Stringer.
func (alg Algorithm) String() string {
	return string(alg)
}

func lookup(alg Algorithm) (algorithmEntry, bool) {
	for _, en := range algorithms {
		if en.id == alg {
			return en, true
		}
	}

	return algorithmEntry{}, false
}
