// Package bench checks scanners against the reference scanner on generated
// test cases and measures how long each one takes.
package bench

import (
	"math/rand/v2"

	"github.com/mhr3/sigscan/pattern"
	"github.com/mhr3/sigscan/scan"
)

const (
	maxVariation  = 100
	minPatternLen = 5
	maxPatternLen = 32
	exactChance   = 0.9
	minPlanted    = 2
	maxPlanted    = 10
)

// Case is one generated test: a pattern, the part of the region it is
// searched in, and the offsets the reference scanner reports.
type Case struct {
	Index    int
	Pattern  pattern.Pattern
	Data     []byte // aliases the generator region
	Expected []int
}

// Generator derives test cases from a region and a seed. Each case plants
// occurrences into the region, so later cases see the earlier plants.
type Generator struct {
	region []byte
	rng    *rand.Rand
	seed   uint64
	next   int
}

func NewGenerator(region []byte, seed uint64) *Generator {
	return &Generator{
		region: region,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		seed:   seed,
	}
}

func (g *Generator) Seed() uint64 { return g.seed }

// Fill overwrites the region with random bytes.
func (g *Generator) Fill() {
	b := g.region
	for len(b) >= 8 {
		v := g.rng.Uint64()
		for i := 0; i < 8; i++ {
			b[i] = byte(v >> (8 * i))
		}
		b = b[8:]
	}
	for i := range b {
		b[i] = byte(g.rng.Uint32())
	}
}

// Next generates the next test case. The region must not be empty.
func (g *Generator) Next() Case {
	variation := g.rng.IntN(min(maxVariation, len(g.region)-1) + 1)
	data := g.region[variation:]

	n := minPatternLen + g.rng.IntN(maxPatternLen-minPatternLen+1)
	n = min(n, len(data))

	b := make([]byte, n)
	mask := make([]byte, n)
	for {
		exact := 0
		for i := range b {
			if g.rng.Float64() < exactChance {
				b[i] = byte(g.rng.Uint32())
				mask[i] = pattern.Exact
				exact++
			} else {
				b[i] = 0
				mask[i] = pattern.Wild
			}
		}
		if exact > 0 {
			break
		}
	}
	p := pattern.MustNew(b, string(mask))

	count := minPlanted + g.rng.IntN(maxPlanted-minPlanted+1)
	for i := 0; i < count; i++ {
		off := g.rng.IntN(len(data) - n + 1)
		for j := 0; j < n; j++ {
			if mask[j] == pattern.Exact {
				data[off+j] = b[j]
			}
		}
	}

	c := Case{
		Index:    g.next,
		Pattern:  p,
		Data:     data,
		Expected: scan.Find(scan.NewReference(), p, data),
	}
	g.next++
	return c
}
