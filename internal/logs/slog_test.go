package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		verbose    bool
		want       slog.Level
	}{
		{name: "verbose wins", configured: "error", verbose: true, want: slog.LevelDebug},
		{name: "debug", configured: "DEBUG", want: slog.LevelDebug},
		{name: "info lower case", configured: " info ", want: slog.LevelInfo},
		{name: "error", configured: "error", want: slog.LevelError},
		{name: "empty defaults to warn", configured: "", want: slog.LevelWarn},
		{name: "unknown defaults to warn", configured: "chatty", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.configured, tt.verbose))
		})
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var out bytes.Buffer
	logger := New(&out, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
	assert.Contains(t, out.String(), "key=value")
}
