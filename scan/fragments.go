package scan

import (
	"github.com/mhr3/sigscan/internal/bytealg"
	"github.com/mhr3/sigscan/pattern"
)

// chunk is up to 16 consecutive pattern bytes compared as one lane.
type chunk struct {
	off   int      // offset within the pattern
	n     int      // number of pattern bytes covered, 1..16
	value [16]byte // pattern bytes, zero at wildcards and past n
	mask  uint16   // bit i set when value[i] is exact
}

// fragments splits the exact bytes of p into runs of at most 16 bytes.
func fragments(p pattern.Pattern) []chunk {
	runs := p.ExactRuns(16)
	frags := make([]chunk, len(runs))
	for i, r := range runs {
		f := &frags[i]
		f.off, f.n = r.Offset, r.Length
		for k := 0; k < r.Length; k++ {
			f.value[k] = p.Byte(r.Offset + k)
		}
		f.mask = uint16(1<<r.Length - 1)
	}
	return frags
}

// parts cuts the whole pattern into consecutive 16-byte chunks, wildcards
// included.
func parts(p pattern.Pattern) []chunk {
	n := p.Len()
	ps := make([]chunk, 0, (n+15)/16)
	for off := 0; off < n; off += 16 {
		c := chunk{off: off, n: min(16, n-off)}
		for k := 0; k < c.n; k++ {
			if p.IsExact(off + k) {
				c.value[k] = p.Byte(off + k)
				c.mask |= 1 << k
			}
		}
		ps = append(ps, c)
	}
	return ps
}

// matchAt reports whether the chunk matches haystack at pos. The caller
// guarantees pos+c.n <= len(haystack).
func (c *chunk) matchAt(haystack []byte, pos int) bool {
	if pos+16 <= len(haystack) {
		return bytealg.MatchMask16(haystack[pos:], &c.value)&c.mask == c.mask
	}
	for k := 0; k < c.n; k++ {
		if c.mask&(1<<k) != 0 && haystack[pos+k] != c.value[k] {
			return false
		}
	}
	return true
}

// probe returns the lane positions at which the chunk may start. A position
// is kept when every chunk byte that still falls inside the lane agrees, so
// occurrences crossing the lane end are candidates too.
func (c *chunk) probe(lane []byte) uint16 {
	cand := uint16(0xFFFF)
	for k := 0; k < c.n && cand != 0; k++ {
		if c.mask&(1<<k) == 0 {
			continue
		}
		eq := bytealg.EqualMask16(lane, c.value[k])
		cand &= eq>>k | ^(uint16(0xFFFF) >> k)
	}
	return cand
}
