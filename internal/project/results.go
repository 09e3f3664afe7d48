package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/panelwright/panelcut/internal/model"
)

// SaveLayout persists a layout result to the given path as JSON, for
// downstream tooling that prefers structured output over the placement
// CSV. It creates any missing parent directories automatically.
func SaveLayout(path string, layout model.LayoutResult) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadLayout reads a previously saved layout result.
func LoadLayout(path string) (model.LayoutResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.LayoutResult{}, err
	}
	var layout model.LayoutResult
	if err := json.Unmarshal(data, &layout); err != nil {
		return model.LayoutResult{}, err
	}
	return layout, nil
}
