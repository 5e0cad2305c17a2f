package scan

import "github.com/mhr3/sigscan/pattern"

// CFX compares right to left and, on a mismatch, skips using the last
// position at which the mismatching byte value occurs in the pattern. Bytes
// that never occur after the rightmost wildcard allow a skip past it.
type CFX struct{}

func NewCFX() CFX { return CFX{} }

func (CFX) Name() string { return "CFX" }

func (CFX) Prepare(p pattern.Pattern) Matcher {
	m := &cfxMatcher{nd: newNeedle(p)}

	w := m.nd.lastWild()
	for v := range m.last {
		m.last[v] = w
	}
	for i, b := range m.nd.bytes {
		if m.last[b] < i {
			m.last[b] = i
		}
	}
	return m
}

type cfxMatcher struct {
	nd   needle
	last [256]int
}

func (m *cfxMatcher) Scan(haystack []byte) []int {
	n := len(m.nd.bytes)
	if n == 0 || n > len(haystack) {
		return nil
	}

	var res []int
	for i := 0; i <= len(haystack)-n; {
		window := haystack[i : i+n]
		j := n - 1
		for j >= 0 && (m.nd.wild[j] || window[j] == m.nd.bytes[j]) {
			j--
		}
		if j < 0 {
			res = append(res, i)
			i++
			continue
		}
		i += max(1, j-m.last[window[j]])
	}
	return res
}
