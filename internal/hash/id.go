// Package hash wraps xxHash64 for name lookups and document fingerprints.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Digest accumulates an xxHash64 over a sequence of fields.
//
// Each field is followed by a 0x00 separator so that ("ab", "c") and
// ("a", "bc") produce different sums.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest creates an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

var separator = []byte{0}

// WriteField adds one field to the digest.
func (d *Digest) WriteField(s string) {
	_, _ = d.d.WriteString(s)
	_, _ = d.d.Write(separator)
}

// Sum64 returns the current hash.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
