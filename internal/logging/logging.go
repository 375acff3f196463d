// Package logging provides the shared zerolog setup for glint.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	root = zerolog.New(io.Discard).With().Timestamp().Logger()
)

// Setup configures the root logger. level is a zerolog level name
// ("debug", "info", ...); unknown names fall back to info. When pretty
// is set, output uses the human-readable console writer.
func Setup(level string, pretty bool) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	mu.Lock()
	root = zerolog.New(out).Level(parsed).With().Timestamp().Logger()
	mu.Unlock()
}

// Component returns a logger tagged with a component name. Before Setup
// is called, component loggers discard everything; a library should not
// write to a host application's stderr uninvited.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With().Str("component", name).Logger()
}
