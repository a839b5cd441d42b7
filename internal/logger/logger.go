package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

type Config struct {
	// Output receives log records. Defaults to os.Stderr.
	Output io.Writer
	Debug  bool
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs a text logger writing to cfg.Output and returns a function
// that restores the silent default.
func Setup(cfg Config) func() {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	l := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
	}))

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = discard()
	}
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
