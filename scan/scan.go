// Package scan finds every offset at which a wildcard pattern occurs in a
// byte buffer.
//
// Each algorithm is a Scanner. Prepare derives the tables an algorithm needs
// from a pattern and returns a Matcher that can be reused on any number of
// haystacks. Matchers never modify the pattern or the haystack and hold no
// per-call state, so one Matcher may be shared between goroutines.
//
// Every scanner reports the same offsets as the Reference scanner, in
// ascending order, including overlapping occurrences.
package scan

import (
	"github.com/mhr3/sigscan/internal/bytealg"
	"github.com/mhr3/sigscan/pattern"
)

// Scanner is a pattern matching strategy.
type Scanner interface {
	// Name is a stable label used in reports and filters.
	Name() string
	// Prepare builds the per-pattern state used by the returned Matcher.
	Prepare(p pattern.Pattern) Matcher
}

// Matcher scans haystacks for one prepared pattern.
type Matcher interface {
	// Scan returns the start offsets of all matches in haystack.
	Scan(haystack []byte) []int
}

// Find prepares p with s and scans haystack once.
func Find(s Scanner, p pattern.Pattern, haystack []byte) []int {
	return s.Prepare(p).Scan(haystack)
}

// Kernel names the lane implementation used by the SIMD scanners.
func Kernel() string {
	return bytealg.Kernel()
}

// needle is a pattern flattened for fast indexing.
type needle struct {
	bytes []byte
	wild  []bool
}

func newNeedle(p pattern.Pattern) needle {
	nd := needle{
		bytes: p.Bytes(),
		wild:  make([]bool, p.Len()),
	}
	for i := range nd.wild {
		nd.wild[i] = p.IsWild(i)
	}
	return nd
}

// lastWild returns the index of the rightmost wildcard or -1.
func (nd needle) lastWild() int {
	for i := len(nd.wild) - 1; i >= 0; i-- {
		if nd.wild[i] {
			return i
		}
	}
	return -1
}

// equal reports whether window, which is at least as long as the needle,
// starts with a match. Comparison runs right to left.
func (nd needle) equal(window []byte) bool {
	window = window[:len(nd.bytes)]
	for j := len(nd.bytes) - 1; j >= 0; j-- {
		if !nd.wild[j] && window[j] != nd.bytes[j] {
			return false
		}
	}
	return true
}

// scanEach checks every offset. It backs the reference scanner and is the
// fallback for patterns without exact bytes.
func (nd needle) scanEach(haystack []byte) []int {
	n := len(nd.bytes)
	if n == 0 || n > len(haystack) {
		return nil
	}

	var res []int
	for i := 0; i <= len(haystack)-n; i++ {
		if nd.equal(haystack[i:]) {
			res = append(res, i)
		}
	}
	return res
}
