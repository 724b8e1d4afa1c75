// Package logging_test tests level parsing and logger plumbing.
// Related: internal/logging/logging.go
// Tags: logging, zap, levels, context
package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw     string
		want    zapcore.Level
		wantErr bool
	}{
		"empty uses default": {raw: "", want: zapcore.ErrorLevel},
		"debug":              {raw: "debug", want: zapcore.DebugLevel},
		"upper case":         {raw: "INFO", want: zapcore.InfoLevel},
		"padded":             {raw: " warn ", want: zapcore.WarnLevel},
		"invalid":            {raw: "chatty", want: zapcore.ErrorLevel, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), EnvLevel)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, zapcore.WarnLevel)
	logger.Info("hidden")
	logger.Warn("shown", zap.String("tool", "python3"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shnote")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "python3")
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	logger := New(&buf, zapcore.DebugLevel)
	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Debug("from context")
	assert.Contains(t, buf.String(), "from context")
}
