// Package registry holds the set of scanners a benchmark run compares.
//
// A Registry is built explicitly at startup, either from Default or from the
// scanners a caller passes to New. Scanners can be added and filtered out,
// but never replaced, so names stay unique for the lifetime of a run.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mhr3/sigscan/scan"
)

// ErrDuplicateName is returned when a scanner name is already registered.
var ErrDuplicateName = errors.New("registry: duplicate scanner name")

// Registry is an ordered list of uniquely named scanners.
type Registry struct {
	scanners []scan.Scanner
	index    map[string]int
}

// New returns a registry holding scanners in the given order.
func New(scanners ...scan.Scanner) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(scanners))}
	for _, s := range scanners {
		if err := r.Add(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Default returns a registry with every scanner in package scan except the
// reference, which serves as the oracle rather than a contestant.
func Default() *Registry {
	r, err := New(
		scan.NewHorspool(),
		scan.NewPreparedHorspool(),
		scan.NewCFX(),
		scan.NewForza(),
		scan.NewFragmentSIMD(),
		scan.NewPartsSIMD(),
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Add appends s.
func (r *Registry) Add(s scan.Scanner) error {
	name := s.Name()
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.index[name] = len(r.scanners)
	r.scanners = append(r.scanners, s)
	return nil
}

// Filter keeps only the scanners whose name contains substr and returns how
// many remain. An empty substr keeps everything.
func (r *Registry) Filter(substr string) int {
	kept := r.scanners[:0]
	for _, s := range r.scanners {
		if strings.Contains(s.Name(), substr) {
			kept = append(kept, s)
		}
	}
	clear(r.scanners[len(kept):])
	r.scanners = kept

	r.index = make(map[string]int, len(kept))
	for i, s := range kept {
		r.index[s.Name()] = i
	}
	return len(kept)
}

// Get looks a scanner up by its exact name.
func (r *Registry) Get(name string) (scan.Scanner, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.scanners[i], true
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.scanners))
	for i, s := range r.scanners {
		names[i] = s.Name()
	}
	return names
}

// All returns the scanners in registration order. The slice is a copy.
func (r *Registry) All() []scan.Scanner {
	return append([]scan.Scanner(nil), r.scanners...)
}

func (r *Registry) Len() int { return len(r.scanners) }
