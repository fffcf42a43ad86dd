package envconfig

import (
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVar(t *testing.T) {
	t.Setenv("NDARRAY_TEST_VAR", `  "quoted"  `)
	assert.Equal(t, "quoted", Var("NDARRAY_TEST_VAR"))
}

func TestNumWorkers(t *testing.T) {
	cases := map[string]uint{
		"":     uint(runtime.NumCPU()),
		"4":    4,
		"'12'": 12,
		"-1":   uint(runtime.NumCPU()),
		"many": uint(runtime.NumCPU()),
	}

	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("NDARRAY_NUM_WORKERS", k)
			assert.Equal(t, v, NumWorkers())
		})
	}
}

func TestMinChunk(t *testing.T) {
	t.Setenv("NDARRAY_MIN_CHUNK", "")
	assert.Equal(t, uint(64), MinChunk())

	t.Setenv("NDARRAY_MIN_CHUNK", "1")
	assert.Equal(t, uint(1), MinChunk())
}

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"t":     slog.LevelDebug,
		"1":     slog.LevelDebug,
		"2":     slog.Level(-8),
	}

	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("NDARRAY_DEBUG", k)
			assert.Equal(t, v, LogLevel())
		})
	}
}

func TestAsMap(t *testing.T) {
	t.Setenv("NDARRAY_NUM_WORKERS", "3")
	m := AsMap()
	assert.Len(t, m, 3)
	assert.Equal(t, uint(3), m["NDARRAY_NUM_WORKERS"].Value)
}
