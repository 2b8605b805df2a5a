// Package config loads and saves the dockyard preferences file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mj1618/dockyard/internal/model"
	"gopkg.in/yaml.v3"
)

// Config holds the canvas geometry, the default layout file and the windows
// the host application registers on startup.
type Config struct {
	Width             float64  `yaml:"width"`
	Height            float64  `yaml:"height"`
	TabBarHeight      float64  `yaml:"tab_bar_height"`
	DropTargetSize    float64  `yaml:"drop_target_size"`
	SplitterThickness float64  `yaml:"splitter_thickness"`
	MinSize           float64  `yaml:"min_size"`
	Layout            string   `yaml:"layout"`
	Windows           []string `yaml:"windows,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	o := model.DefaultOptions()
	return Config{
		Width:             o.Width,
		Height:            o.Height,
		TabBarHeight:      o.TabBarHeight,
		DropTargetSize:    o.DropTargetSize,
		SplitterThickness: o.SplitterThickness,
		MinSize:           o.MinSize,
		Layout:            "layout.xml",
	}
}

// Path returns the default location of the config file.
func Path() string {
	loc := "$HOME/.config/dockyard/config.yaml"
	if runtime.GOOS == "windows" {
		loc = "$APPDATA/dockyard/config.yaml"
	}
	return os.ExpandEnv(loc)
}

// Load reads the config file at path. A missing file yields Default(); keys
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Options converts c into manager options using logger for diagnostics.
func (c Config) Options(logger *slog.Logger) model.Options {
	return model.Options{
		Width:             c.Width,
		Height:            c.Height,
		TabBarHeight:      c.TabBarHeight,
		DropTargetSize:    c.DropTargetSize,
		SplitterThickness: c.SplitterThickness,
		MinSize:           c.MinSize,
		Logger:            logger,
	}
}

// Set assigns one key by its YAML name. It is used by `dockyard config set`.
func (c *Config) Set(key, value string) error {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(key+": "+value), &node); err != nil {
		return fmt.Errorf("invalid value %q: %w", value, err)
	}
	known := map[string]bool{
		"width": true, "height": true, "tab_bar_height": true, "drop_target_size": true,
		"splitter_thickness": true, "min_size": true, "layout": true, "windows": true,
	}
	if !known[key] {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := node.Decode(c); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}
