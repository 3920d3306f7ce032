package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backdrop.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
root_font_size = 15
base_url = "https://example.com/assets/"
log_level = "debug"

[viewport]
width = 640
`)
	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 15.0, conf.RootFontSize)
	assert.Equal(t, "https://example.com/assets/", conf.BaseURL)
	assert.Equal(t, slog.LevelDebug, conf.Level())
	assert.Equal(t, 640, conf.Viewport.Width)
	// defaults are kept
	assert.Equal(t, 300, conf.Viewport.Height)
	assert.Equal(t, 64, conf.CacheSize)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "font_size = 12\n"},
		{"negative font size", "root_font_size = -1\n"},
		{"negative cache", "cache_size = -5\n"},
		{"empty viewport", "[viewport]\nwidth = 0\n"},
		{"bad level", "log_level = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeFile(t, "root_font_size = = 3"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	conf := Default()
	conf.BaseURL = "file:///srv/images/"
	conf.Viewport.Width = 1024
	require.NoError(t, Save(path, conf))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, conf, loaded)
}

func TestDefault_Valid(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "nope"}.Level())
}
