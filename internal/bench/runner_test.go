package bench

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/sigscan/pattern"
	"github.com/mhr3/sigscan/registry"
	"github.com/mhr3/sigscan/scan"
)

type matcherFunc func([]byte) []int

func (f matcherFunc) Scan(h []byte) []int { return f(h) }

// fakeScanner wraps a scan function that ignores the pattern.
type fakeScanner struct {
	name string
	fn   func(p pattern.Pattern, h []byte) []int
}

func (f fakeScanner) Name() string { return f.name }

func (f fakeScanner) Prepare(p pattern.Pattern) scan.Matcher {
	return matcherFunc(func(h []byte) []int { return f.fn(p, h) })
}

var (
	blind = fakeScanner{"blind", func(pattern.Pattern, []byte) []int { return nil }}
	crash = fakeScanner{"crash", func(pattern.Pattern, []byte) []int {
		var m map[string]int
		m["boom"]++
		return nil
	}}
	outOfRange = fakeScanner{"out of range", func(_ pattern.Pattern, h []byte) []int {
		return []int{int(h[len(h)])}
	}}
	correct = fakeScanner{"correct", func(p pattern.Pattern, h []byte) []int {
		return scan.Find(scan.NewReference(), p, h)
	}}
)

func runCases(r *Runner, tests int) {
	g := newTestGenerator(1<<14, 42)
	r.RunAll(g, tests, -1)
}

func statsByName(r *Runner) map[string]Stats {
	m := map[string]Stats{}
	for _, s := range r.Stats() {
		m[s.Name] = s
	}
	return m
}

func TestRunnerSkipFailed(t *testing.T) {
	r := NewRunner([]scan.Scanner{blind, crash, outOfRange, correct})
	runCases(r, 10)

	st := statsByName(r)
	assert.Equal(t, 1, st["blind"].Failures)
	assert.Equal(t, 0, st["blind"].Panics)
	assert.Equal(t, 1, st["blind"].Runs)

	assert.Equal(t, 1, st["crash"].Failures)
	assert.Equal(t, 1, st["crash"].Panics)

	assert.Equal(t, 1, st["out of range"].Panics)

	assert.Equal(t, 0, st["correct"].Failures)
	assert.Equal(t, 10, st["correct"].Runs)
}

func TestRunnerFull(t *testing.T) {
	r := NewRunner([]scan.Scanner{blind, crash, correct})
	r.SkipFailed = false
	runCases(r, 10)

	st := statsByName(r)
	// Every generated case has at least one match, so blind fails them all.
	assert.Equal(t, 10, st["blind"].Failures)
	assert.Equal(t, 10, st["crash"].Panics)
	assert.Equal(t, 0, st["correct"].Failures)
}

func TestRunnerOnlyOneCase(t *testing.T) {
	r := NewRunner([]scan.Scanner{correct})
	g := newTestGenerator(1<<12, 7)
	r.RunAll(g, 20, 13)

	assert.Equal(t, 1, r.Stats()[0].Runs)
	assert.Equal(t, 20, g.next, "all cases are still generated")
}

func TestRunnerParallelMatchesSequential(t *testing.T) {
	seq := NewRunner(registry.Default().All())
	seq.SkipFailed = false
	runCases(seq, 30)

	par := NewRunner(registry.Default().All())
	par.SkipFailed = false
	par.Parallel = true
	runCases(par, 30)

	for i, s := range seq.Stats() {
		p := par.Stats()[i]
		assert.Equal(t, s.Name, p.Name)
		assert.Zero(t, s.Failures, s.Name)
		assert.Zero(t, p.Failures, p.Name)
		assert.Equal(t, 30, p.Runs)
	}
}

func TestSafeScan(t *testing.T) {
	p := pattern.MustParse("AA")
	_, err := safeScan(crash, p, []byte{1, 2})
	require.ErrorIs(t, err, ErrPanic)

	res, err := safeScan(correct, p, []byte{0xAA, 0xAA})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res)
}

func TestRank(t *testing.T) {
	stats := []Stats{
		{Name: "slow", Elapsed: 3 * time.Second},
		{Name: "broken", Elapsed: time.Millisecond, Failures: 2},
		{Name: "fast", Elapsed: time.Second},
		{Name: "flaky", Elapsed: 2 * time.Second, Failures: 1},
	}
	var names []string
	for _, s := range Rank(stats) {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"fast", "slow", "flaky", "broken"}, names)
	assert.Equal(t, "slow", stats[0].Name, "input is not reordered")
}

func TestWriteReport(t *testing.T) {
	stats := []Stats{
		{Name: "CFX", Elapsed: 2 * time.Millisecond},
		{Name: "Broken", Elapsed: time.Millisecond, Failures: 3},
		{Name: "Horspool", Elapsed: time.Millisecond},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, stats, 1_000_000, false))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "End Scan", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "Horspool"+strings.Repeat(" ", 24)+" | "))
	assert.Contains(t, lines[2], "1.000 ns/byte")
	assert.Contains(t, lines[3], "2.000 ns/byte")
	assert.Equal(t, "Broken"+strings.Repeat(" ", 26)+" | failed", lines[4])

	buf.Reset()
	require.NoError(t, WriteReport(&buf, stats, 1_000_000, true))
	assert.Contains(t, buf.String(), "| 3 failed")
	assert.Contains(t, buf.String(), "| 0 failed")
}
