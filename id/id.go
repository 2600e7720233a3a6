// Package id derives the stable identifiers that correlate a logical widget
// across frames. An ID is a fixed-width hash of an explicit, typed source: a
// label string, an integer, or a parent ID combined with a child source.
// Collisions are possible and are detected (not prevented) by the frame
// context, which reports them as on-screen diagnostics.
package id

type ID uint64

// FNV-1a, 64 bit.
const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

func hashString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

func hashUint(h, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h ^= v & 0xff
		h *= prime64
		v >>= 8
	}
	return h
}

// New derives an ID from a stable string key, typically a label.
func New(source string) ID {
	return ID(hashString(offset64, source))
}

// FromInt derives an ID from an integer source, e.g. a loop index that is
// stable across frames, or a positional counter within a layout pass.
func FromInt(v int64) ID {
	return ID(hashUint(offset64, uint64(v)))
}

// WithString combines the parent ID with a child string source.
func (p ID) WithString(s string) ID {
	return ID(hashString(hashUint(offset64, uint64(p)), s))
}

// WithInt combines the parent ID with a child integer source.
func (p ID) WithInt(v int64) ID {
	return ID(hashUint(hashUint(offset64, uint64(p)), uint64(v)))
}
