package bench

import "slices"

// Diff compares two match sets. Order and duplicates are ignored.
func Diff(got, want []int) (missing, unexpected []int) {
	have := make(map[int]struct{}, len(got))
	for _, v := range got {
		have[v] = struct{}{}
	}
	exp := make(map[int]struct{}, len(want))
	for _, v := range want {
		exp[v] = struct{}{}
		if _, ok := have[v]; !ok {
			missing = append(missing, v)
		}
	}
	for v := range have {
		if _, ok := exp[v]; !ok {
			unexpected = append(unexpected, v)
		}
	}
	slices.Sort(missing)
	missing = slices.Compact(missing)
	slices.Sort(unexpected)
	return missing, unexpected
}
