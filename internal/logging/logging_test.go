package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"upload-relay/internal/config"
	"upload-relay/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	cfg := config.LogConfig{Level: "info", Format: "json"}

	// Act
	logger, closer, err := logging.New(cfg, &buf)
	require.NoError(t, err)
	defer closer.Close()
	logger.Debug("hidden")
	logger.Info("file uploaded", "key", "1-cat.png")

	// Assert
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "file uploaded", record["msg"])
	assert.Equal(t, "1-cat.png", record["key"])
}

func TestNew_TextDebug(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	cfg := config.LogConfig{Level: "DEBUG", Format: "text"}

	// Act
	logger, closer, err := logging.New(cfg, &buf)
	require.NoError(t, err)
	defer closer.Close()
	logger.Debug("object stored")

	// Assert
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `msg="object stored"`)
}

func TestNew_File(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "relay.log")
	cfg := config.LogConfig{Level: "info", Format: "text", File: path, MaxSizeMB: 1, MaxBackups: 1}

	// Act
	logger, closer, err := logging.New(cfg, &buf)
	require.NoError(t, err)
	logger.Info("server started")
	require.NoError(t, closer.Close())

	// Assert
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "server started")
	assert.Contains(t, buf.String(), "server started")
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
	}{
		{name: "level", cfg: config.LogConfig{Level: "loud", Format: "text"}},
		{name: "format", cfg: config.LogConfig{Level: "info", Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, closer, err := logging.New(tt.cfg, &bytes.Buffer{})

			assert.Error(t, err)
			assert.Nil(t, logger)
			assert.Nil(t, closer)
		})
	}
}
