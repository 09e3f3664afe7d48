package project

import (
	"path/filepath"
	"testing"

	"github.com/panelwright/panelcut/internal/model"
)

func TestSaveAndLoadLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "layout_result.json")

	layout := model.LayoutResult{
		Walls: []model.WallResult{
			{
				Wall: model.Wall{ID: "W-101", Width: 240, Height: 108},
				Panels: []model.Panel{
					{
						Name: "P01", X: 0, Y: 0, W: 119, H: 108,
						Cutouts: []model.Cutout{
							{ID: "D1", Type: "Door", X: 94, Y: 0, W: 25, H: 92},
						},
					},
				},
			},
		},
	}

	if err := SaveLayout(path, layout); err != nil {
		t.Fatalf("SaveLayout failed: %v", err)
	}

	loaded, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout failed: %v", err)
	}

	if len(loaded.Walls) != 1 {
		t.Fatalf("expected 1 wall, got %d", len(loaded.Walls))
	}
	w := loaded.Walls[0]
	if w.Wall.ID != "W-101" || w.Wall.Width != 240 {
		t.Errorf("wall did not round-trip: %+v", w.Wall)
	}
	if len(w.Panels) != 1 || w.Panels[0].Name != "P01" {
		t.Fatalf("panels did not round-trip: %+v", w.Panels)
	}
	if len(w.Panels[0].Cutouts) != 1 || w.Panels[0].Cutouts[0].W != 25 {
		t.Errorf("cutouts did not round-trip: %+v", w.Panels[0].Cutouts)
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	if _, err := LoadLayout(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
