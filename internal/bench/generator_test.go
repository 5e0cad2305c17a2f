package bench

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/sigscan/scan"
)

func newTestGenerator(size int, seed uint64) *Generator {
	g := NewGenerator(make([]byte, size), seed)
	g.Fill()
	return g
}

func TestGeneratorDeterministic(t *testing.T) {
	a := newTestGenerator(1<<16, 1234)
	b := newTestGenerator(1<<16, 1234)
	require.Equal(t, a.region, b.region)

	for i := 0; i < 50; i++ {
		ca, cb := a.Next(), b.Next()
		assert.Equal(t, ca.Pattern.String(), cb.Pattern.String())
		assert.Equal(t, ca.Expected, cb.Expected)
		assert.Equal(t, len(ca.Data), len(cb.Data))
	}
	assert.Equal(t, a.region, b.region)
}

func TestGeneratorSeedsDiffer(t *testing.T) {
	a := newTestGenerator(4096, 1)
	b := newTestGenerator(4096, 2)
	assert.NotEqual(t, a.region, b.region)
}

func TestGeneratorCases(t *testing.T) {
	g := newTestGenerator(1<<16, 99)
	for i := 0; i < 200; i++ {
		c := g.Next()
		assert.Equal(t, i, c.Index)

		n := c.Pattern.Len()
		assert.GreaterOrEqual(t, n, minPatternLen)
		assert.LessOrEqual(t, n, maxPatternLen)
		assert.False(t, c.Pattern.IsDegenerate())
		for j := 0; j < n; j++ {
			if c.Pattern.IsWild(j) {
				assert.Zero(t, c.Pattern.Byte(j))
			}
		}

		variation := len(g.region) - len(c.Data)
		assert.GreaterOrEqual(t, variation, 0)
		assert.LessOrEqual(t, variation, maxVariation)

		// The last plant is never overwritten.
		assert.NotEmpty(t, c.Expected)
		assert.True(t, slices.IsSorted(c.Expected))
		assert.Equal(t, scan.Find(scan.NewReference(), c.Pattern, c.Data), c.Expected)
	}
}

func TestGeneratorTinyRegion(t *testing.T) {
	for _, size := range []int{1, 2, 5, 33} {
		g := newTestGenerator(size, 5)
		for i := 0; i < 20; i++ {
			c := g.Next()
			require.LessOrEqual(t, c.Pattern.Len(), len(c.Data))
			require.NotEmpty(t, c.Expected)
		}
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name           string
		got, want      []int
		missing, extra []int
	}{
		{"equal", []int{1, 2, 3}, []int{3, 2, 1}, nil, nil},
		{"both empty", nil, nil, nil, nil},
		{"missing", []int{1}, []int{1, 5, 2}, []int{2, 5}, nil},
		{"unexpected", []int{9, 1, 7}, []int{1}, nil, []int{7, 9}},
		{"duplicates ignored", []int{4, 4}, []int{4}, nil, nil},
		{"mixed", []int{1, 3}, []int{2, 3}, []int{2}, []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing, extra := Diff(tt.got, tt.want)
			assert.Equal(t, tt.missing, missing)
			assert.Equal(t, tt.extra, extra)
		})
	}
}
