// Package config loads the settings shared by the command line tools
// from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"backdrop/pkg/css"
	"backdrop/pkg/logging"
)

// ErrInvalid is returned for files holding unknown keys or bad values.
var ErrInvalid = errors.New("invalid configuration")

type Viewport struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type Config struct {
	// RootFontSize is the font size of the root element in points, used
	// for rem lengths.
	RootFontSize float64 `toml:"root_font_size"`
	// BaseURL resolves relative image URLs. Directories end with a slash.
	BaseURL   string   `toml:"base_url"`
	CacheSize int      `toml:"cache_size"`
	LogLevel  string   `toml:"log_level"`
	Viewport  Viewport `toml:"viewport"`
}

func Default() Config {
	return Config{
		RootFontSize: css.DefaultFontSize,
		CacheSize:    64,
		LogLevel:     "info",
		Viewport:     Viewport{Width: 400, Height: 300},
	}
}

// Load reads the file at path. Keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	conf := Default()
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s in %s", ErrInvalid, strings.Join(keys, ", "), path)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}

// Save writes conf to path.
func Save(path string, conf Config) error {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, buffer.Bytes(), 0o644)
}

func (c Config) Validate() error {
	if c.RootFontSize <= 0 {
		return fmt.Errorf("%w: root_font_size must be positive, got %g", ErrInvalid, c.RootFontSize)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size must not be negative, got %d", ErrInvalid, c.CacheSize)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport must not be empty, got %dx%d", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Level returns the parsed log level, or info if it is invalid.
func (c Config) Level() slog.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}
