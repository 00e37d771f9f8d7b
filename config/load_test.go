package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calmdeck.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 600, cfg.Flip.DurationMs)
	assert.False(t, cfg.Flip.AutoFlip)
	assert.Equal(t, 3000, cfg.Flip.AutoFlipDelayMs)
	assert.False(t, cfg.Audio.Muted)
	assert.Equal(t, "auto", cfg.UI.ColorMode)
	assert.Empty(t, cfg.Deck.Path)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[flip]
duration_ms = 400
auto_flip = true
auto_flip_delay_ms = 5000

[audio]
muted = true

[ui]
color_mode = "256"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 400, cfg.Flip.DurationMs)
	assert.True(t, cfg.Flip.AutoFlip)
	assert.Equal(t, 5000, cfg.Flip.AutoFlipDelayMs)
	assert.True(t, cfg.Audio.Muted)
	assert.Equal(t, "256", cfg.UI.ColorMode)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[flip]
duration_ms = 400
`)

	t.Setenv("CALMDECK_FLIP_DURATION_MS", "250")
	t.Setenv("CALMDECK_UI_COLOR_MODE", "truecolor")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Flip.DurationMs)
	assert.Equal(t, "truecolor", cfg.UI.ColorMode)
}

func TestLoadRejectsInvalidColorMode(t *testing.T) {
	path := writeConfig(t, `
[ui]
color_mode = "16bit"
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadRejectsNonPositiveDuration(t *testing.T) {
	path := writeConfig(t, `
[flip]
duration_ms = 0
`)

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadRejectsOversizedDuration(t *testing.T) {
	path := writeConfig(t, `
[flip]
duration_ms = 60000
`)

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[flip\nbroken =")
	_, err := LoadFile(path)
	require.Error(t, err)
}
