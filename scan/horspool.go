package scan

import "github.com/mhr3/sigscan/pattern"

// shiftTable holds the bad character shift for every byte value.
type shiftTable [256]int

// fillShiftTable builds the table from the run of exact bytes that ends the
// pattern. Shifting further than the distance to the rightmost wildcard could
// jump over an alignment in which that wildcard covers the inspected byte.
func fillShiftTable(t *shiftTable, nd needle) {
	n := len(nd.bytes)
	last := n - 1

	def, from := n, 0
	if w := nd.lastWild(); w >= 0 {
		def, from = last-w, w+1
		if def == 0 {
			def = 1
		}
	}

	for i := range t {
		t[i] = def
	}
	for i := from; i < last; i++ {
		t[nd.bytes[i]] = last - i
	}
}

func horspoolScan(nd needle, t *shiftTable, haystack []byte) []int {
	n := len(nd.bytes)
	if n == 0 || n > len(haystack) {
		return nil
	}
	last := n - 1

	var res []int
	for s := 0; s <= len(haystack)-n; {
		window := haystack[s : s+n]
		j := last
		for j >= 0 && (nd.wild[j] || window[j] == nd.bytes[j]) {
			j--
		}
		if j < 0 {
			res = append(res, s)
			s++
			continue
		}
		s += t[window[last]]
	}
	return res
}

// Horspool is a Boyer-Moore-Horspool scanner that rebuilds its shift table on
// every Scan call.
type Horspool struct{}

func NewHorspool() Horspool { return Horspool{} }

func (Horspool) Name() string { return "Horspool" }

func (Horspool) Prepare(p pattern.Pattern) Matcher {
	return horspoolMatcher{nd: newNeedle(p)}
}

type horspoolMatcher struct {
	nd needle
}

func (m horspoolMatcher) Scan(haystack []byte) []int {
	if len(m.nd.bytes) == 0 || len(m.nd.bytes) > len(haystack) {
		return nil
	}
	var t shiftTable
	fillShiftTable(&t, m.nd)
	return horspoolScan(m.nd, &t, haystack)
}

// PreparedHorspool is the Horspool scanner with its shift table built once
// per pattern in Prepare.
type PreparedHorspool struct{}

func NewPreparedHorspool() PreparedHorspool { return PreparedHorspool{} }

func (PreparedHorspool) Name() string { return "Horspool (prepared)" }

func (PreparedHorspool) Prepare(p pattern.Pattern) Matcher {
	m := &preparedHorspoolMatcher{nd: newNeedle(p)}
	if p.Len() > 0 {
		fillShiftTable(&m.shift, m.nd)
	}
	return m
}

type preparedHorspoolMatcher struct {
	nd    needle
	shift shiftTable
}

func (m *preparedHorspoolMatcher) Scan(haystack []byte) []int {
	return horspoolScan(m.nd, &m.shift, haystack)
}
