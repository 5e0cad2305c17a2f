package scan

import (
	"math/bits"

	"github.com/mhr3/sigscan/internal/bytealg"
	"github.com/mhr3/sigscan/pattern"
)

// PartsSIMD keeps the pattern as consecutive 16-byte parts. Candidates for
// 32 start positions at a time come from comparing the two rarest exact bytes
// of the first part that has any; every part then confirms with one masked
// lane compare.
type PartsSIMD struct {
	name  string
	ranks *[256]byte
}

// NewPartsSIMD returns a PartsSIMD that ranks bytes with the default table
// for machine code.
func NewPartsSIMD() PartsSIMD {
	return PartsSIMD{name: "Parts (SIMD)", ranks: &byteRank}
}

// NewRankedPartsSIMD returns a PartsSIMD that picks probe bytes with a custom
// frequency table, for example one built by BuildRankTable.
func NewRankedPartsSIMD(name string, ranks []byte) PartsSIMD {
	if len(ranks) != 256 {
		panic("ranks must have exactly 256 entries")
	}
	var t [256]byte
	copy(t[:], ranks)
	return PartsSIMD{name: name, ranks: &t}
}

func (s PartsSIMD) Name() string { return s.name }

func (s PartsSIMD) Prepare(p pattern.Pattern) Matcher {
	m := &partsMatcher{nd: newNeedle(p)}
	for _, c := range parts(p) {
		if c.mask == 0 {
			continue
		}
		if len(m.parts) == 0 {
			m.off1, m.off2 = selectRarePair(m.nd, c.off, c.off+c.n, s.ranks)
			m.b1, m.b2 = m.nd.bytes[m.off1], m.nd.bytes[m.off2]
		}
		m.parts = append(m.parts, c)
	}
	return m
}

type partsMatcher struct {
	nd    needle
	parts []chunk // parts with at least one exact byte

	off1, off2 int // probe offsets, off1 <= off2
	b1, b2     byte
}

func (m *partsMatcher) Scan(haystack []byte) []int {
	n := len(m.nd.bytes)
	if n == 0 || n > len(haystack) {
		return nil
	}
	if len(m.parts) == 0 {
		return m.nd.scanEach(haystack)
	}

	last := len(haystack) - n

	var res []int
	s := 0
	for ; s <= last && s+m.off2+32 <= len(haystack); s += 32 {
		cand := bytealg.EqualMask32(haystack[s+m.off1:], m.b1)
		if cand == 0 {
			continue
		}
		if m.off2 != m.off1 {
			cand &= bytealg.EqualMask32(haystack[s+m.off2:], m.b2)
		}
		if rem := last - s; rem < 31 {
			cand &= 1<<(rem+1) - 1
		}
		for cand != 0 {
			i := s + bits.TrailingZeros32(cand)
			cand &= cand - 1
			if m.confirm(haystack, i) {
				res = append(res, i)
			}
		}
	}
	bytealg.Release()

	for ; s <= last; s++ {
		if m.confirm(haystack, s) {
			res = append(res, s)
		}
	}
	return res
}

func (m *partsMatcher) confirm(haystack []byte, s int) bool {
	for i := range m.parts {
		if !m.parts[i].matchAt(haystack, s+m.parts[i].off) {
			return false
		}
	}
	return true
}
