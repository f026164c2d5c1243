package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf).Hook(FileHook{})
	t.Cleanup(func() { log.Logger = orig })
	return &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithFile(t *testing.T) {
	ctx := WithFile(context.Background(), "/tmp/data.csv")
	assert.Equal(t, "/tmp/data.csv", GetFile(ctx))
	assert.Empty(t, GetFile(context.Background()))
}

func TestComponent(t *testing.T) {
	buf := captureGlobal(t)

	logger := Component("editor")
	logger.Info().Msg("hello")

	entry := decode(t, buf)
	assert.Equal(t, "editor", entry[ComponentField])
	assert.Equal(t, "hello", entry["message"])
	assert.NotContains(t, entry, FileField)
}

func TestForFile(t *testing.T) {
	buf := captureGlobal(t)

	logger := ForFile(WithFile(context.Background(), "people.csv"), "tui")
	logger.Warn().Msg("save failed")

	entry := decode(t, buf)
	assert.Equal(t, "tui", entry[ComponentField])
	assert.Equal(t, "people.csv", entry[FileField])
}

func TestFileHook(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		wantFile string
	}{
		{
			name:     "file in context",
			ctx:      WithFile(context.Background(), "people.csv"),
			wantFile: "people.csv",
		},
		{
			name: "no context values",
			ctx:  context.Background(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := zerolog.New(&buf).Hook(FileHook{})
			logger.Info().Ctx(tt.ctx).Msg("test")

			entry := decode(t, &buf)
			if tt.wantFile == "" {
				assert.NotContains(t, entry, FileField)
				return
			}
			assert.Equal(t, tt.wantFile, entry[FileField])
		})
	}
}
