// Package config reads the sigbench settings from command line flags, with
// SIGBENCH_* environment variables as a fallback for any flag not given.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "SIGBENCH"

var (
	ErrRegionSize = errors.New("config: region size must be positive")
	ErrLogLevel   = errors.New("config: loglevel must be in 0..4")
	ErrTestCount  = errors.New("config: test count must not be negative")
)

type Config struct {
	Size     int    // random region size in bytes
	File     string // scan this file instead of random data
	Tests    int
	Seed     uint64
	LogLevel int
	Full     bool // keep running scanners after their first failure
	Filter   string
	Test     int // only run this test index, -1 for all
	Parallel bool
	Guard    bool
}

// Load parses args (without the program name). Flags win over the
// environment, which wins over defaults. A missing seed is drawn at random.
func Load(name string, args []string) (Config, error) {
	var c Config
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&c.Size, "size", 32<<20, "random region size in bytes")
	fs.StringVar(&c.File, "file", "", "scan a file instead of random data (.lz4 and .zst are decompressed)")
	fs.IntVar(&c.Tests, "tests", 256, "number of generated test cases")
	fs.Uint64Var(&c.Seed, "seed", 0, "random seed (default random)")
	fs.IntVar(&c.LogLevel, "loglevel", 0, "verbosity 0..4")
	fs.BoolVar(&c.Full, "full", false, "keep running scanners after their first failure")
	fs.StringVar(&c.Filter, "filter", "", "only run scanners whose name contains this")
	fs.IntVar(&c.Test, "test", -1, "only run this test index")
	fs.BoolVar(&c.Parallel, "parallel", false, "run the scanners of a test case concurrently")
	fs.BoolVar(&c.Guard, "guard", true, "place the region between inaccessible guard pages")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	given := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	var envErr error
	fs.VisitAll(func(f *flag.Flag) {
		if given[f.Name] || envErr != nil {
			return
		}
		if err := v.BindEnv(f.Name); err != nil {
			envErr = err
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		if err := fs.Set(f.Name, v.GetString(f.Name)); err != nil {
			envErr = fmt.Errorf("%s_%s: %w", EnvPrefix, strings.ToUpper(f.Name), err)
			return
		}
		given[f.Name] = true
	})
	if envErr != nil {
		return Config{}, envErr
	}

	if !given["seed"] {
		c.Seed = rand.Uint64()
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.File == "" && c.Size <= 0 {
		return ErrRegionSize
	}
	if c.LogLevel < 0 || c.LogLevel > 4 {
		return ErrLogLevel
	}
	if c.Tests < 0 {
		return ErrTestCount
	}
	return nil
}
