// Package logging builds the zerolog logger shared by the walker, the
// link placer and the command.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Environment variables read by New. They win over Config.
const (
	// EnvLogLevel sets the level: trace, debug, info, warn, error or off.
	EnvLogLevel = "MUSICFARM_LOG_LEVEL"
	// EnvLogNoColor disables (true) or forces (false) colour output.
	EnvLogNoColor = "MUSICFARM_LOG_NOCOLOR"
)

// Config controls logger construction.
type Config struct {
	// Verbose lowers the level to debug so per-file diagnostics
	// ("no tags for ...", "no album link for ...") are printed.
	Verbose bool

	// Out defaults to os.Stderr.
	Out io.Writer

	// NoColor disables ANSI colours. Colours are also off when Out is not
	// a terminal.
	NoColor bool
}

// New builds a console logger from cfg, applying environment overrides.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	noColor := cfg.NoColor || !isTerminal(out)
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		noColor = v
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		level = lvl
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "musicfarm").Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
