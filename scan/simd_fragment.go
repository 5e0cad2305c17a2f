package scan

import (
	"math/bits"

	"github.com/mhr3/sigscan/internal/bytealg"
	"github.com/mhr3/sigscan/pattern"
)

// FragmentSIMD probes the haystack for the first exact fragment of the
// pattern, 32 anchor positions at a time, and confirms each candidate with
// the remaining fragments.
type FragmentSIMD struct{}

func NewFragmentSIMD() FragmentSIMD { return FragmentSIMD{} }

func (FragmentSIMD) Name() string { return "Forza (SIMD)" }

func (FragmentSIMD) Prepare(p pattern.Pattern) Matcher {
	m := &fragmentMatcher{
		nd:    newNeedle(p),
		frags: fragments(p),
	}
	if len(m.frags) > 0 {
		m.skipZero = m.frags[0].value[0] != 0
	}
	return m
}

type fragmentMatcher struct {
	nd       needle
	frags    []chunk
	skipZero bool // zero blocks cannot hold the anchor
}

func (m *fragmentMatcher) Scan(haystack []byte) []int {
	n := len(m.nd.bytes)
	if n == 0 || n > len(haystack) {
		return nil
	}
	if len(m.frags) == 0 {
		return m.nd.scanEach(haystack)
	}

	anchor := &m.frags[0]
	o0 := anchor.off
	end := len(haystack) - n + o0 // last anchor position

	var res []int
	a := o0
	for ; a <= end && a+32 <= len(haystack); a += 32 {
		block := haystack[a : a+32]
		if m.skipZero && bytealg.AllZero32(block) {
			continue
		}

		cand := uint32(anchor.probe(block[:16])) | uint32(anchor.probe(block[16:]))<<16
		if rem := end - a; rem < 31 {
			cand &= 1<<(rem+1) - 1
		}
		for cand != 0 {
			s := a + bits.TrailingZeros32(cand) - o0
			cand &= cand - 1
			if m.confirm(haystack, s) {
				res = append(res, s)
			}
		}
	}
	bytealg.Release()

	for ; a <= end; a++ {
		if s := a - o0; m.confirm(haystack, s) {
			res = append(res, s)
		}
	}
	return res
}

func (m *fragmentMatcher) confirm(haystack []byte, s int) bool {
	for i := range m.frags {
		if !m.frags[i].matchAt(haystack, s+m.frags[i].off) {
			return false
		}
	}
	return true
}
