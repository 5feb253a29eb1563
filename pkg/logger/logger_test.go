package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	Init("production", "debug")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Init("production", "warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Init("production", "nonsense")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Init("production", "")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name  string
		write func()
		want  map[string]interface{}
	}{
		{
			name:  "info with fields",
			write: func() { Info("server starting", map[string]interface{}{"addr": ":5000"}) },
			want:  map[string]interface{}{"level": "info", "message": "server starting", "addr": ":5000"},
		},
		{
			name:  "info without fields",
			write: func() { Info("done", nil) },
			want:  map[string]interface{}{"level": "info", "message": "done"},
		},
		{
			name:  "warn with error",
			write: func() { Warn("cache get failed", errors.New("conn refused")) },
			want:  map[string]interface{}{"level": "warn", "message": "cache get failed", "error": "conn refused"},
		},
		{
			name:  "warn without error",
			write: func() { Warn("in-memory storage", nil) },
			want:  map[string]interface{}{"level": "warn", "message": "in-memory storage"},
		},
		{
			name:  "error",
			write: func() { Error("request failed", errors.New("boom")) },
			want:  map[string]interface{}{"level": "error", "message": "request failed", "error": "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			tt.write()

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got), "log: %s", buf.String())
			assert.Equal(t, tt.want, got)
		})
	}
}
