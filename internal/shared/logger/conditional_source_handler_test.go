package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTextLogger(buf *bytes.Buffer, levels ...slog.Level) *slog.Logger {
	base := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewConditionalSourceHandler(base, levels...))
}

func TestConditionalSourceHandler(t *testing.T) {
	prod := []slog.Level{slog.LevelWarn, slog.LevelError}
	all := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

	tests := []struct {
		name       string
		level      slog.Level
		levels     []slog.Level
		wantSource bool
	}{
		{"info in production", slog.LevelInfo, prod, false},
		{"debug in production", slog.LevelDebug, prod, false},
		{"warn in production", slog.LevelWarn, prod, true},
		{"error in production", slog.LevelError, prod, true},
		{"info in debug mode", slog.LevelInfo, all, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTextLogger(&buf, tt.levels...).Log(context.Background(), tt.level, "card scanned")

			out := buf.String()
			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), out)
			if tt.wantSource {
				assert.Contains(t, out, "conditional_source_handler_test.go")
			}
		})
	}
}

func TestConditionalSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := newTextLogger(&buf, slog.LevelError).With("card_id", "ABC123").WithGroup("request")
	log.Info("assigned", "path", "/badge/ABC123/assign")

	out := buf.String()
	assert.NotContains(t, out, "source=")
	assert.Contains(t, out, "card_id=ABC123")
	assert.Contains(t, out, "request.path=/badge/ABC123/assign")
}

func TestConditionalSourceHandler_Enabled(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewConditionalSourceHandler(base, slog.LevelError)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}
