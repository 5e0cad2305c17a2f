package scan

import "github.com/mhr3/sigscan/pattern"

// Reference is the brute force scanner that defines correct results for
// every other scanner.
type Reference struct{}

func NewReference() Reference { return Reference{} }

func (Reference) Name() string { return "Reference" }

func (Reference) Prepare(p pattern.Pattern) Matcher {
	return referenceMatcher{nd: newNeedle(p)}
}

type referenceMatcher struct {
	nd needle
}

func (m referenceMatcher) Scan(haystack []byte) []int {
	n := len(m.nd.bytes)
	if n == 0 || n > len(haystack) {
		return nil
	}

	var res []int
	for i := 0; i <= len(haystack)-n; i++ {
		found := true
		for j := 0; j < n; j++ {
			if !m.nd.wild[j] && haystack[i+j] != m.nd.bytes[j] {
				found = false
				break
			}
		}
		if found {
			res = append(res, i)
		}
	}
	return res
}
