package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("MODELPANEL_TEST_KEY", "")
	require.NoError(t, os.Unsetenv("MODELPANEL_TEST_KEY"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MODELPANEL_TEST_KEY=secret\n"), 0o600))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "secret", os.Getenv("MODELPANEL_TEST_KEY"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}

func TestRenderMarkdown(t *testing.T) {
	out := renderMarkdown("# Title\n\nsome text", 40)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "some text")
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.log")

	log, closeLog, err := newLogger(path, "debug")
	require.NoError(t, err)

	log.Debug().Str("k", "v").Msg("hello")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"app":"modelpanel"`)
}

func TestNewLogger_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.log")

	log, closeLog, err := newLogger(path, "warn")
	require.NoError(t, err)

	log.Info().Msg("quiet")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNewLogger_NoPath(t *testing.T) {
	_, closeLog, err := newLogger("", "info")
	require.NoError(t, err)
	assert.NoError(t, closeLog())
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, _, err := newLogger("", "loud")
	assert.Error(t, err)
}
