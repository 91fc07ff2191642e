package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "valid info level", level: "info"},
		{name: "valid debug level", level: "debug"},
		{name: "valid warn level", level: "warn"},
		{name: "warning alias", level: "warning"},
		{name: "valid error level", level: "error"},
		{name: "empty level defaults to info", level: ""},
		{name: "invalid level", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, logger)
			}
		})
	}
}

func TestNewWithWriter_EmitsServiceAttr(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("hello")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "newsdesk")
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("error", &buf)
	require.NoError(t, err)

	logger.Info("filtered out")
	logger.Error("kept")

	out := buf.String()
	assert.False(t, strings.Contains(out, "filtered out"))
	assert.Contains(t, out, "kept")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	WithComponent(logger, "score_repository").Info("query done")

	assert.Contains(t, buf.String(), "score_repository")
}
