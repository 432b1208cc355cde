package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_BadJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{"), 0o644))
	cfg, err := Load(p)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.Debug = true
	cfg.OutputFormat = "JPG"
	cfg.LastDir = "/home/me/pictures"
	cfg.SmartPositionOnOpen = true
	require.NoError(t, cfg.Save(p))

	got, err := Load(p)
	require.NoError(t, err)
	assert.True(t, got.Debug)
	assert.Equal(t, "jpg", got.OutputFormat)
	assert.Equal(t, "/home/me/pictures", got.LastDir)
	assert.True(t, got.SmartPositionOnOpen)
}

func TestValidate_Normalizes(t *testing.T) {
	cfg := &Config{
		ViewportSize: 10,
		OutputSuffix: " ../x/ ",
		OutputFormat: "webp",
	}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidValue)
	for _, field := range []string{"viewport_size", "window_width", "window_height", "output_suffix", "output_format=webp"} {
		assert.Contains(t, err.Error(), field)
	}
	assert.Equal(t, 1000, cfg.ViewportSize)
	assert.Equal(t, 1026, cfg.WindowWidth)
	assert.Equal(t, 1111, cfg.WindowHeight)
	assert.Equal(t, "~cropped", cfg.OutputSuffix)
	assert.Equal(t, "png", cfg.OutputFormat)
}

func TestValidate_KeepsValidValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputSuffix = "_square"
	cfg.OutputFormat = ".tiff"
	require.NoError(t, cfg.Validate(), "valid values must not be reported")
	assert.Equal(t, "_square", cfg.OutputSuffix)
	assert.Equal(t, "tiff", cfg.OutputFormat)
}

func TestParseBoolLoose(t *testing.T) {
	cases := map[string]struct{ val, ok bool }{
		"true": {true, true}, " Yes ": {true, true}, "1": {true, true},
		"off": {false, true}, "F": {false, true},
		"maybe": {false, false}, "": {false, false},
	}
	for in, want := range cases {
		val, ok := ParseBoolLoose(in)
		assert.Equal(t, want.val, val, in)
		assert.Equal(t, want.ok, ok, in)
	}
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}
