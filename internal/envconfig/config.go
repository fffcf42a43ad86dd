// Package envconfig reads runtime configuration from environment variables.
package envconfig

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// LogLevel returns the log level configured via NDARRAY_DEBUG.
// A boolean true selects Debug; an integer n selects slog.Level(-4n).
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("NDARRAY_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

var (
	// NumWorkers is the worker-count hint for parallel elementwise operations.
	NumWorkers = Uint("NDARRAY_NUM_WORKERS", uint(runtime.NumCPU()))
	// MinChunk is the minimum number of elements per worker.
	MinChunk = Uint("NDARRAY_MIN_CHUNK", 64)
)

// Var returns an environment variable with surrounding whitespace and quotes removed.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// Uint returns a getter for an unsigned integer variable. Unparsable values
// are logged and replaced by defaultValue.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// EnvVar describes one recognized variable and its current value.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every recognized variable keyed by name.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"NDARRAY_DEBUG":       {"NDARRAY_DEBUG", LogLevel(), "Log level (true for debug, or an integer verbosity)"},
		"NDARRAY_NUM_WORKERS": {"NDARRAY_NUM_WORKERS", NumWorkers(), "Worker goroutines for parallel elementwise operations"},
		"NDARRAY_MIN_CHUNK":   {"NDARRAY_MIN_CHUNK", MinChunk(), "Minimum elements per worker before falling back to serial"},
	}
}
