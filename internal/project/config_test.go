package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/panelwright/panelcut/internal/model"
)

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "optimizer_config.json")

	cfg := model.VerticalPreset()
	cfg.ProjectName = "North Elevation"
	cfg.Constraints.MaxWidth = 120
	cfg.DoorClearances.Jamb = 8

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.ProjectName != "North Elevation" {
		t.Errorf("expected ProjectName=North Elevation, got %s", loaded.ProjectName)
	}
	if loaded.Constraints.MaxWidth != 120 {
		t.Errorf("expected MaxWidth=120, got %f", loaded.Constraints.MaxWidth)
	}
	if loaded.DoorClearances.Jamb != 8 {
		t.Errorf("expected door jamb=8, got %f", loaded.DoorClearances.Jamb)
	}
	if loaded.Orientation != model.OrientationVertical {
		t.Errorf("expected vertical orientation, got %s", loaded.Orientation)
	}
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "optimizer_config.json")

	if err := SaveConfig(path, model.DefaultConfig()); err != nil {
		t.Fatalf("SaveConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "optimizer_config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoadConfigRejectsInvalidConstraints(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "optimizer_config.json")

	cfg := model.VerticalPreset()
	cfg.Constraints.MinWidth = 200
	cfg.Constraints.MaxWidth = 100
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error for min width above max width")
	}
}

func TestLoadConfigOrDefaultMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "optimizer_config.json")

	cfg, err := LoadConfigOrDefault(path, model.OrientationHorizontal)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	preset := model.HorizontalPreset()
	if cfg.Orientation != model.OrientationHorizontal {
		t.Errorf("expected horizontal orientation, got %s", cfg.Orientation)
	}
	if cfg.Constraints.MaxWidth != preset.Constraints.MaxWidth {
		t.Errorf("expected preset max width %f, got %f",
			preset.Constraints.MaxWidth, cfg.Constraints.MaxWidth)
	}
}

func TestWriteUsedConfig(t *testing.T) {
	dir := t.TempDir()

	if err := WriteUsedConfig(dir, model.DefaultConfig()); err != nil {
		t.Fatalf("WriteUsedConfig failed: %v", err)
	}

	loaded, err := LoadConfig(filepath.Join(dir, "config_used.json"))
	if err != nil {
		t.Fatalf("snapshot does not load back: %v", err)
	}
	if loaded.Orientation != model.OrientationVertical {
		t.Errorf("expected vertical orientation, got %s", loaded.Orientation)
	}
}
