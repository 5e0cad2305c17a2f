// Package guard allocates haystack regions that sit directly in front of an
// inaccessible page, so a scanner reading past the end of its input faults
// instead of silently reading neighbouring memory.
package guard

import "errors"

var ErrSize = errors.New("guard: size must be positive")

// Region is a byte buffer that may be followed by a guard page.
type Region struct {
	buf     []byte
	mapping []byte
}

// Bytes returns the usable buffer. Its capacity equals its length.
func (r *Region) Bytes() []byte { return r.buf }

// Guarded reports whether the buffer is followed by a guard page.
func (r *Region) Guarded() bool { return r.mapping != nil }
