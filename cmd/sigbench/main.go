// Command sigbench checks every registered scanner against the reference
// scanner on generated test cases and ranks them by speed.
//
// Usage:
//
//	sigbench [-size n] [-file path] [-tests n] [-seed n] [-loglevel 0..4]
//	         [-full] [-filter substr] [-test i] [-parallel] [-guard=false]
//
// Every flag can also be given as a SIGBENCH_<FLAG> environment variable.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/asm/cpu"
	"github.com/segmentio/asm/cpu/arm64"
	"github.com/segmentio/asm/cpu/x86"

	"github.com/mhr3/sigscan/internal/bench"
	"github.com/mhr3/sigscan/internal/bytealg"
	"github.com/mhr3/sigscan/internal/config"
	"github.com/mhr3/sigscan/internal/guard"
	"github.com/mhr3/sigscan/internal/logger"
	"github.com/mhr3/sigscan/internal/regionfile"
	"github.com/mhr3/sigscan/registry"
	"github.com/mhr3/sigscan/scan"
)

// rankSample bounds how much of a file feeds the corpus rank table.
const rankSample = 1 << 20

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	cfg, err := config.Load("sigbench", args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.Init(0)
		log.Error().Err(err).Msg("invalid configuration")
		return 1
	}
	logger.Init(cfg.LogLevel)

	var file []byte
	if cfg.File != "" {
		fmt.Fprintf(out, "Scanning file: %s\n", cfg.File)
		if file, err = regionfile.Load(cfg.File); err != nil {
			log.Error().Err(err).Msg("loading region")
			return 1
		}
		if len(file) == 0 {
			fmt.Fprintln(out, "Invalid region size")
			return 1
		}
	}

	reg := registry.Default()
	if file != nil {
		ranks := scan.BuildRankTable(file[:min(len(file), rankSample)])
		if err := reg.Add(scan.NewRankedPartsSIMD("Parts (SIMD, file ranks)", ranks[:])); err != nil {
			log.Error().Err(err).Msg("registering scanner")
			return 1
		}
	}
	if cfg.Filter != "" {
		fmt.Fprintf(out, "Filter: %s\n", cfg.Filter)
		reg.Filter(cfg.Filter)
	}
	if reg.Len() == 0 {
		fmt.Fprintln(out, "No Scanners")
		return 1
	}

	size := cfg.Size
	if file != nil {
		size = len(file)
	}
	buf, release, err := allocRegion(size, cfg.Guard)
	if err != nil {
		log.Error().Err(err).Msg("allocating region")
		return 1
	}
	defer func() {
		if err := release(); err != nil {
			log.Warn().Err(err).Msg("releasing region")
		}
	}()

	gen := bench.NewGenerator(buf, cfg.Seed)
	if file != nil {
		copy(buf, file)
	} else {
		fmt.Fprintln(out, "Scanning random data")
		gen.Fill()
	}

	fmt.Fprintf(out, "Host: %s/%s [%s], kernel: %s\n", runtime.GOOS, runtime.GOARCH, hostFeatures(), scan.Kernel())
	log.Debug().Strs("features", bytealg.Features()).Msg("lane dispatch")

	runner := bench.NewRunner(reg.All())
	runner.SkipFailed = !cfg.Full
	runner.Parallel = cfg.Parallel
	runner.ListOffsets = cfg.LogLevel >= 4

	fmt.Fprintf(out, "Begin Scan: Seed: 0x%016X, Size: 0x%X, Tests: %d, Skip Fails: %t, Scanners: %d\n",
		gen.Seed(), size, cfg.Tests, runner.SkipFailed, reg.Len())

	runner.RunAll(gen, cfg.Tests, cfg.Test)

	total := int64(size) * int64(cfg.Tests)
	if err := bench.WriteReport(out, runner.Stats(), total, cfg.Full); err != nil {
		log.Error().Err(err).Msg("writing report")
		return 1
	}
	return 0
}

// allocRegion returns a buffer of size bytes, behind a guard page when
// guarded is set and the platform supports it.
func allocRegion(size int, guarded bool) ([]byte, func() error, error) {
	if !guarded {
		return make([]byte, size), func() error { return nil }, nil
	}
	r, err := guard.Alloc(size)
	if err != nil {
		return nil, nil, err
	}
	if !r.Guarded() {
		log.Warn().Msg("guard pages are not supported on this platform")
	}
	return r.Bytes(), r.Close, nil
}

func hostFeatures() string {
	var fs []string
	switch runtime.GOARCH {
	case "amd64":
		for _, f := range []struct {
			name string
			feat x86.Feature
		}{
			{"sse4.2", x86.SSE42},
			{"avx2", x86.AVX2},
			{"avx512bw", x86.AVX512BW},
		} {
			if cpu.X86.Has(f.feat) {
				fs = append(fs, f.name)
			}
		}
	case "arm64":
		if cpu.ARM64.Has(arm64.ASIMD) {
			fs = append(fs, "asimd")
		}
	}
	if len(fs) == 0 {
		return "generic"
	}
	return strings.Join(fs, " ")
}
