package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level maps the harness verbosity (0..4) to a zerolog level.
//
//	0 warnings and errors only
//	1 progress and scanner panics
//	2 failed test cases
//	3 result count mismatches
//	4 offset listings
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Init points the global logger at stdout.
func Init(verbosity int) {
	InitWriter(os.Stdout, verbosity)
}

// InitWriter points the global logger at w with a console format.
func InitWriter(w io.Writer, verbosity int) {
	zerolog.SetGlobalLevel(Level(verbosity))

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		if i := strings.LastIndexByte(file, '/'); i >= 0 {
			file = file[i+1:]
		}
		return file + ":" + strconv.Itoa(line)
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    w != os.Stdout,
		TimeFormat: "15:04:05.000",
		FormatLevel: func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("%-6s", i))
		},
	}

	l := zerolog.New(out).With().Timestamp()
	if verbosity >= 4 {
		l = l.Caller()
	}
	log.Logger = l.Logger()
}
