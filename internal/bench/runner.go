package bench

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mhr3/sigscan/pattern"
	"github.com/mhr3/sigscan/scan"
)

// ErrPanic marks a scan that panicked or faulted.
var ErrPanic = errors.New("scanner panicked")

// Runner runs every scanner on each test case and records the outcome.
type Runner struct {
	scanners []scan.Scanner
	stats    []Stats

	// SkipFailed stops running a scanner after its first failure.
	SkipFailed bool
	// Parallel runs the scanners of one case concurrently.
	Parallel bool
	// ListOffsets logs missing and unexpected offsets of failed cases.
	ListOffsets bool
}

func NewRunner(scanners []scan.Scanner) *Runner {
	r := &Runner{
		scanners:   scanners,
		stats:      make([]Stats, len(scanners)),
		SkipFailed: true,
	}
	for i, s := range scanners {
		r.stats[i].Name = s.Name()
	}
	return r
}

// Stats returns a copy of the per scanner results in registration order.
func (r *Runner) Stats() []Stats {
	return append([]Stats(nil), r.stats...)
}

// RunAll generates tests cases and runs them. With only >= 0 every case is
// still generated, so the region evolves the same way, but only case only is
// scanned.
func (r *Runner) RunAll(g *Generator, tests, only int) {
	for i := 0; i < tests; i++ {
		c := g.Next()
		if only >= 0 && i != only {
			continue
		}
		if i%25 == 0 {
			log.Info().Msgf("%d/%d...", i, tests)
		}
		r.Run(c)
	}
}

// Run scans one case with every scanner.
func (r *Runner) Run(c Case) {
	if e := log.Debug(); e.Enabled() {
		e.Int("test", c.Index).
			Str("pattern", c.Pattern.String()).
			Str("mask", c.Pattern.Mask()).
			Int("size", len(c.Data)).
			Str("haystack", fmt.Sprintf("%016x", xxhash.Sum64(c.Data))).
			Int("expected", len(c.Expected)).
			Msg("test case")
	}

	if !r.Parallel {
		for i := range r.scanners {
			r.runOne(i, c)
		}
		return
	}

	var g errgroup.Group
	for i := range r.scanners {
		g.Go(func() error {
			r.runOne(i, c)
			return nil
		})
	}
	_ = g.Wait()
}

func (r *Runner) runOne(i int, c Case) {
	st := &r.stats[i]
	if r.SkipFailed && st.Failed() {
		return
	}

	start := time.Now()
	got, err := safeScan(r.scanners[i], c.Pattern, c.Data)
	st.Elapsed += time.Since(start)
	st.Runs++

	if err != nil {
		st.Failures++
		st.Panics++
		log.Info().Err(err).Str("scanner", st.Name).Int("test", c.Index).Msg("failed test")
		return
	}

	missing, unexpected := Diff(got, c.Expected)
	if len(missing) == 0 && len(unexpected) == 0 {
		return
	}
	st.Failures++

	log.Debug().
		Str("scanner", st.Name).
		Int("test", c.Index).
		Str("pattern", c.Pattern.String()).
		Str("mask", c.Pattern.Mask()).
		Msg("failed test")
	log.Trace().
		Str("scanner", st.Name).
		Int("got", len(got)).
		Int("expected", len(c.Expected)).
		Msg("result mismatch")
	if r.ListOffsets {
		log.Trace().
			Str("scanner", st.Name).
			Str("missing", hexOffsets(missing)).
			Str("unexpected", hexOffsets(unexpected)).
			Msg("offsets")
	}
}

// safeScan prepares and runs s, turning panics and memory faults into an
// error.
func safeScan(s scan.Scanner, p pattern.Pattern, data []byte) (res []int, err error) {
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		if v := recover(); v != nil {
			res, err = nil, fmt.Errorf("%w: %v", ErrPanic, v)
		}
	}()
	return s.Prepare(p).Scan(data), nil
}

func hexOffsets(offs []int) string {
	b := make([]byte, 0, len(offs)*8)
	for i, v := range offs {
		if i > 0 {
			b = append(b, ' ')
		}
		b = fmt.Appendf(b, "0x%X", v)
	}
	return string(b)
}
