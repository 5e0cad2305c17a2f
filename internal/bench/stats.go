package bench

import (
	"cmp"
	"slices"
	"time"
)

// Stats is the measurement state of one scanner over a run.
type Stats struct {
	Name     string
	Elapsed  time.Duration
	Runs     int
	Failures int // wrong results and panics
	Panics   int
}

func (s Stats) Failed() bool { return s.Failures > 0 }

// Rank orders stats by failure count, then by elapsed time. The input is
// left untouched.
func Rank(stats []Stats) []Stats {
	ranked := slices.Clone(stats)
	slices.SortStableFunc(ranked, func(a, b Stats) int {
		if c := cmp.Compare(a.Failures, b.Failures); c != 0 {
			return c
		}
		return cmp.Compare(a.Elapsed, b.Elapsed)
	})
	return ranked
}
