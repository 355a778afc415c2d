package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "homelyhub.log")

	log, cleanup, err := New(Options{Level: "info", File: path, Format: "json"})
	require.NoError(t, err)

	log.Info("listing loaded")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "listing loaded")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New(Options{Level: "chatty", File: filepath.Join(t.TempDir(), "x.log")})
	require.Error(t, err)
}
