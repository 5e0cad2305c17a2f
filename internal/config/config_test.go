package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("sigbench", nil)
	require.NoError(t, err)

	assert.Equal(t, 32<<20, c.Size)
	assert.Equal(t, 256, c.Tests)
	assert.Equal(t, -1, c.Test)
	assert.Equal(t, 0, c.LogLevel)
	assert.True(t, c.Guard)
	assert.False(t, c.Full)
	assert.False(t, c.Parallel)
	assert.Empty(t, c.File)
	assert.Empty(t, c.Filter)
}

func TestLoadFlags(t *testing.T) {
	c, err := Load("sigbench", []string{
		"-size", "4096", "-tests", "3", "-seed", "77", "-loglevel", "2",
		"-full", "-filter", "SIMD", "-test", "1", "-parallel", "-guard=false",
	})
	require.NoError(t, err)

	assert.Equal(t, Config{
		Size:     4096,
		Tests:    3,
		Seed:     77,
		LogLevel: 2,
		Full:     true,
		Filter:   "SIMD",
		Test:     1,
		Parallel: true,
		Guard:    false,
	}, c)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SIGBENCH_SIZE", "1024")
	t.Setenv("SIGBENCH_FILTER", "Forza")
	t.Setenv("SIGBENCH_SEED", "5")
	t.Setenv("SIGBENCH_TESTS", "9")

	c, err := Load("sigbench", []string{"-tests", "2"})
	require.NoError(t, err)

	assert.Equal(t, 1024, c.Size)
	assert.Equal(t, "Forza", c.Filter)
	assert.Equal(t, uint64(5), c.Seed)
	assert.Equal(t, 2, c.Tests, "flags take precedence")
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("SIGBENCH_SIZE", "lots")

	_, err := Load("sigbench", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SIGBENCH_SIZE")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"zero size", []string{"-size", "0"}, ErrRegionSize},
		{"zero size with file", []string{"-size", "0", "-file", "dump.bin"}, nil},
		{"loglevel too high", []string{"-loglevel", "5"}, ErrLogLevel},
		{"negative tests", []string{"-tests", "-1"}, ErrTestCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("sigbench", tt.args)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
