// Package ftlog configures the process-wide zerolog logger.
//
// The terminal is owned by the UI, so log records never go to stdout or
// stderr: they are written to a file or discarded.
package ftlog

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger = zerolog.Logger

// Options selects where records go and how verbose they are.
type Options struct {
	Level string // trace, debug, info, warn or error
	File  string // empty means discard
}

var openFile = func(name string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// ParseLevel maps a level name onto a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init sets up the global logger. The returned func closes the log file
// and must be called on exit.
func Init(o Options) (closeLog func(), err error) {
	zerolog.TimeFieldFormat = time.RFC3339
	level := ParseLevel(o.Level)
	zerolog.SetGlobalLevel(level)

	var out io.Writer = io.Discard
	closeLog = func() {}
	if o.File != "" {
		f, err := openFile(o.File)
		if err != nil {
			log.Logger = zerolog.New(io.Discard)
			return closeLog, err
		}
		out = zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339, NoColor: true}
		closeLog = func() { _ = f.Close() }
	}

	ctx := zerolog.New(out).With().Timestamp()
	if level == zerolog.TraceLevel {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()
	log.Info().Str("level", level.String()).Msg("logger initialized")
	return closeLog, nil
}

// Get returns a logger for a specific component.
func Get(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
