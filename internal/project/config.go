// Package project handles persistence of optimizer configuration on
// disk: the user's saved config, and the config_used.json snapshot
// written next to each optimization run.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/panelwright/panelcut/internal/model"
)

// DefaultConfigDir returns the default directory for application
// configuration, under the platform config directory.
func DefaultConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "panelcut"), nil
}

// DefaultConfigPath returns the default path for the optimizer config
// file.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "optimizer_config.json"), nil
}

// SaveConfig persists a config to the given path as JSON. It creates
// any missing parent directories automatically.
func SaveConfig(path string, cfg model.Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadConfig reads a config from the given path and validates it.
func LoadConfig(path string) (model.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Config{}, err
	}
	var cfg model.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return model.Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigOrDefault reads a config from the given path. If the file
// does not exist, it returns the stock preset for the orientation with
// no error.
func LoadConfigOrDefault(path string, orientation model.Orientation) (model.Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.PresetFor(orientation), nil
		}
		return model.Config{}, err
	}
	return cfg, nil
}

// WriteUsedConfig snapshots the config actually used by a run into
// outputDir as config_used.json, so results stay reproducible after
// the saved config changes.
func WriteUsedConfig(outputDir string, cfg model.Config) error {
	return SaveConfig(filepath.Join(outputDir, "config_used.json"), cfg)
}
