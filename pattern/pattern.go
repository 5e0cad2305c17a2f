// Package pattern models byte signatures with per-position wildcards.
//
// A Pattern pairs N bytes with a mask of the same length. Each mask position is
// either Exact (the haystack byte must equal the pattern byte) or Wild (any byte
// is accepted). The byte stored at a Wild position carries no meaning.
package pattern

import (
	"errors"
	"fmt"
)

// Mask symbols.
const (
	Exact byte = 'x'
	Wild  byte = '?'
)

var (
	ErrEmpty          = errors.New("pattern: empty pattern")
	ErrMaskLength     = errors.New("pattern: mask length differs from pattern length")
	ErrMaskSymbol     = errors.New("pattern: invalid mask symbol")
	ErrSignatureToken = errors.New("pattern: invalid signature token")
)

// Pattern is an immutable byte sequence with a wildcard mask.
// The zero value is an empty pattern that matches nothing.
type Pattern struct {
	bytes []byte
	mask  []byte // Exact or Wild per position
}

// Run is a contiguous span of Exact positions.
type Run struct {
	Offset int
	Length int
}

// New copies bytes and mask into a Pattern. Mask symbols are 'x' or 'X' for
// exact positions and '?' for wildcards.
func New(bytes []byte, mask string) (Pattern, error) {
	if len(bytes) == 0 {
		return Pattern{}, ErrEmpty
	}
	if len(mask) != len(bytes) {
		return Pattern{}, fmt.Errorf("%w: %d bytes, %d mask symbols", ErrMaskLength, len(bytes), len(mask))
	}

	p := Pattern{
		bytes: make([]byte, len(bytes)),
		mask:  make([]byte, len(mask)),
	}
	copy(p.bytes, bytes)
	for i := 0; i < len(mask); i++ {
		switch mask[i] {
		case 'x', 'X':
			p.mask[i] = Exact
		case '?':
			p.mask[i] = Wild
		default:
			return Pattern{}, fmt.Errorf("%w %q at %d", ErrMaskSymbol, mask[i], i)
		}
	}
	return p, nil
}

// MustNew is like New but panics on error.
func MustNew(bytes []byte, mask string) Pattern {
	p, err := New(bytes, mask)
	if err != nil {
		panic(err)
	}
	return p
}

// FromBytes returns a pattern in which every position is exact.
func FromBytes(bytes []byte) (Pattern, error) {
	mask := make([]byte, len(bytes))
	for i := range mask {
		mask[i] = Exact
	}
	return New(bytes, string(mask))
}

func (p Pattern) Len() int { return len(p.bytes) }

// Byte returns the pattern byte at i. The value is meaningless at wildcards.
func (p Pattern) Byte(i int) byte { return p.bytes[i] }

func (p Pattern) IsExact(i int) bool { return p.mask[i] == Exact }

func (p Pattern) IsWild(i int) bool { return p.mask[i] == Wild }

// Bytes returns a copy of the pattern bytes.
func (p Pattern) Bytes() []byte {
	return append([]byte(nil), p.bytes...)
}

// Mask returns the mask in 'x'/'?' notation.
func (p Pattern) Mask() string { return string(p.mask) }

// LastWild returns the index of the rightmost wildcard, or -1 if there is none.
func (p Pattern) LastWild() int {
	for i := len(p.mask) - 1; i >= 0; i-- {
		if p.mask[i] == Wild {
			return i
		}
	}
	return -1
}

// ExactCount returns the number of exact positions.
func (p Pattern) ExactCount() int {
	n := 0
	for _, m := range p.mask {
		if m == Exact {
			n++
		}
	}
	return n
}

// IsDegenerate reports whether the pattern has no exact position and so
// matches at every offset.
func (p Pattern) IsDegenerate() bool {
	return p.ExactCount() == 0
}

// Matches reports whether the pattern matches b at offset off.
func (p Pattern) Matches(b []byte, off int) bool {
	if len(p.bytes) == 0 || off < 0 || off > len(b)-len(p.bytes) {
		return false
	}
	window := b[off : off+len(p.bytes)]
	for i, m := range p.mask {
		if m == Exact && window[i] != p.bytes[i] {
			return false
		}
	}
	return true
}

// ExactRuns returns the maximal runs of exact positions in order. Runs longer
// than max are split into consecutive pieces of at most max bytes; max <= 0
// disables splitting.
func (p Pattern) ExactRuns(max int) []Run {
	var runs []Run
	n := len(p.mask)
	for i := 0; i < n; {
		if p.mask[i] == Wild {
			i++
			continue
		}
		j := i
		for j < n && p.mask[j] == Exact && (max <= 0 || j-i < max) {
			j++
		}
		runs = append(runs, Run{Offset: i, Length: j - i})
		i = j
	}
	return runs
}

// LongestRun returns the longest exact run, preferring the leftmost on ties.
// ok is false for a degenerate pattern.
func (p Pattern) LongestRun() (r Run, ok bool) {
	for _, run := range p.ExactRuns(0) {
		if run.Length > r.Length {
			r, ok = run, true
		}
	}
	return r, ok
}
