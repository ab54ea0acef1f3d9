package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("AOC_SESSION sets the session", func(t *testing.T) {
		t.Setenv("AOC_SESSION", "  abc123\n")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, "abc123", cfg.Session)
	})

	t.Run("AOC_INPUT_DIR replaces the input dir", func(t *testing.T) {
		t.Setenv("AOC_INPUT_DIR", "/tmp/puzzles")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, "/tmp/puzzles", cfg.InputDir)
	})

	t.Run("AOC_WORKERS must be a number", func(t *testing.T) {
		t.Setenv("AOC_WORKERS", "many")

		cfg := DefaultConfig()
		assert.Error(t, cfg.applyEnvOverrides())
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		t.Setenv("AOC_WORKERS", "3")
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("workers: 8\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Workers)
	})
}

func TestSessionToken(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.SessionFile = filepath.Join(dir, "session")

	_, err := cfg.SessionToken()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, os.WriteFile(cfg.SessionFile, []byte("from-file\n"), 0600))
	token, err := cfg.SessionToken()
	require.NoError(t, err)
	assert.Equal(t, "from-file", token)

	cfg.Session = "from-env"
	token, err = cfg.SessionToken()
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)

	require.NoError(t, os.WriteFile(cfg.SessionFile, []byte("  \n"), 0600))
	cfg.Session = ""
	_, err = cfg.SessionToken()
	assert.ErrorIs(t, err, ErrNoSession)
}
