package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bekirdag/folio/internal/effects"
)

// loadSettings reads effect tuning from path, or from the default location
// when path is empty. Missing files yield defaults without error; invalid
// files yield defaults and the reason.
func loadSettings(path string) (effects.Settings, string, error) {
	if path == "" {
		configDir := resolveConfigDir()
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			return effects.DefaultSettings(), filepath.Join(configDir, "settings.yaml"), nil
		}
		path = filepath.Join(configDir, "settings.yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return effects.DefaultSettings(), path, nil
		}
		return effects.DefaultSettings(), path, fmt.Errorf("read settings: %w", err)
	}
	// unset keys keep their defaults
	cfg := effects.DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return effects.DefaultSettings(), path, fmt.Errorf("parse settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return effects.DefaultSettings(), path, fmt.Errorf("settings %s: %w", path, err)
	}
	return cfg, path, nil
}

func saveSettings(cfg effects.Settings, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func resolveConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "folio")
}
