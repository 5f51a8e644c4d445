package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekirdag/folio/internal/effects"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	cfg, resolved, err := loadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
	assert.Equal(t, effects.DefaultSettings(), cfg)
}

func TestLoadSettingsPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
fps: 30
typewriter:
  interval: 50ms
cursor:
  spring:
    stiffness: 300
    damping: 20
`), 0o644))

	cfg, _, err := loadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, 50*time.Millisecond, cfg.Typewriter.Interval)
	assert.Equal(t, 300.0, cfg.Cursor.Spring.Stiffness)
	// untouched keys keep their defaults
	def := effects.DefaultSettings()
	assert.Equal(t, def.Cursor.Bias, cfg.Cursor.Bias)
	assert.Equal(t, def.Marquee, cfg.Marquee)
	assert.Equal(t, def.Scroll, cfg.Scroll)
}

func TestLoadSettingsRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("fps: [\n"), 0o644))
	cfg, _, err := loadSettings(broken)
	assert.ErrorContains(t, err, "parse settings")
	assert.Equal(t, effects.DefaultSettings(), cfg)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("fps: 0\nscroll:\n  wheel_step: 0\n"), 0o644))
	cfg, _, err = loadSettings(invalid)
	assert.ErrorContains(t, err, "fps must be within")
	assert.ErrorContains(t, err, "wheel step")
	assert.Equal(t, effects.DefaultSettings(), cfg)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := effects.DefaultSettings()
	want.FPS = 24
	want.Marquee.BaseVelocity = 6
	want.Preloader.Delay = time.Second

	require.NoError(t, saveSettings(want, path))
	got, _, err := loadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
