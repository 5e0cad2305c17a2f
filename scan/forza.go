package scan

import "github.com/mhr3/sigscan/pattern"

// Forza anchors on the longest run of exact bytes. The haystack byte under
// the end of the run is looked up in a membership table; a byte that does not
// occur in the run rules out every alignment that would place the run over it.
type Forza struct{}

func NewForza() Forza { return Forza{} }

func (Forza) Name() string { return "Forza (Boyer-Moore variant)" }

func (Forza) Prepare(p pattern.Pattern) Matcher {
	m := &forzaMatcher{nd: newNeedle(p)}

	run, ok := p.LongestRun()
	if !ok {
		return m
	}
	m.probe = run.Offset + run.Length - 1
	m.skip = run.Length
	for i := run.Offset; i < run.Offset+run.Length; i++ {
		m.member[m.nd.bytes[i]] = true
	}
	return m
}

type forzaMatcher struct {
	nd     needle
	probe  int // pattern offset of the last byte of the run
	skip   int // run length, zero for patterns without exact bytes
	member [256]bool
}

func (m *forzaMatcher) Scan(haystack []byte) []int {
	n := len(m.nd.bytes)
	if n == 0 || n > len(haystack) {
		return nil
	}
	if m.skip == 0 {
		return m.nd.scanEach(haystack)
	}

	var res []int
	for s := 0; s <= len(haystack)-n; {
		if !m.member[haystack[s+m.probe]] {
			s += m.skip
			continue
		}
		if m.nd.equal(haystack[s:]) {
			res = append(res, s)
		}
		s++
	}
	return res
}
