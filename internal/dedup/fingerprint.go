package dedup

import (
	"fmt"
	"image"

	"github.com/corona10/goimagehash"
)

// DefaultHashSize is the grid edge of the average hash, giving 64 bits.
const DefaultHashSize = 8

// Fingerprint is a fixed-length perceptual signature of an image. Two
// fingerprints are comparable only if they carry the same number of bits.
type Fingerprint struct {
	hash *goimagehash.ExtImageHash
}

// NewFingerprintFromWords builds a fingerprint from raw 64-bit words.
// Intended for tests that need exact bit patterns.
func NewFingerprintFromWords(words []uint64, bits int) *Fingerprint {
	return &Fingerprint{hash: goimagehash.NewExtImageHash(words, goimagehash.AHash, bits)}
}

// Bits returns the fingerprint length in bits.
func (f *Fingerprint) Bits() int {
	return f.hash.Bits()
}

// String returns a stable textual form, usable as an exact-identity key.
func (f *Fingerprint) String() string {
	return f.hash.ToString()
}

// Hasher computes average-hash fingerprints over a Size x Size reduced
// grayscale grid. The zero value is not usable; use NewHasher.
type Hasher struct {
	size int
}

func NewHasher(size int) Hasher {
	if size <= 0 {
		size = DefaultHashSize
	}
	return Hasher{size: size}
}

// Hash fingerprints an image. The same image always yields the same
// fingerprint; the resampling filter is fixed by the hashing library.
func (h Hasher) Hash(img image.Image) (*Fingerprint, error) {
	ext, err := goimagehash.ExtAverageHash(img, h.size, h.size)
	if err != nil {
		return nil, fmt.Errorf("failed to compute average hash: %w", err)
	}
	return &Fingerprint{hash: ext}, nil
}

// Similarity returns the normalized similarity of two fingerprints in
// [0,1]: 1.0 for identical bits, 0.0 for maximally different. Fingerprints
// of differing lengths are treated as not similar rather than an error.
func Similarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil {
		return 0.0
	}
	if a.Bits() != b.Bits() {
		return 0.0
	}
	dist, err := a.hash.Distance(b.hash)
	if err != nil {
		return 0.0
	}
	return 1.0 - float64(dist)/float64(a.Bits())
}
