package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/panelwright/panelcut/internal/model"
)

// DXF layer names for the fabrication drawings.
const (
	layerWall    = "WALL"
	layerPanels  = "PANELS"
	layerCutouts = "CUTOUTS"
)

// ExportDXF writes one DXF per wall into dir, named wall_<id>.dxf.
// Coordinates are wall-local inches: the wall outline on WALL, panel
// outlines on PANELS, and cutout rectangles (in wall coordinates) on
// CUTOUTS.
func ExportDXF(dir string, layout model.LayoutResult) error {
	for _, wall := range layout.Walls {
		path := filepath.Join(dir, fmt.Sprintf("wall_%s.dxf", sanitizeFilename(wall.Wall.ID)))
		if err := ExportWallDXF(path, wall); err != nil {
			return fmt.Errorf("wall %s: %w", wall.Wall.ID, err)
		}
	}
	return nil
}

// ExportWallDXF writes the fabrication DXF for a single wall.
func ExportWallDXF(path string, wall model.WallResult) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer(layerWall, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("add %s layer: %w", layerWall, err)
	}
	if err := drawRect(d, 0, 0, wall.Wall.Width, wall.Wall.Height); err != nil {
		return err
	}

	if _, err := d.AddLayer(layerPanels, color.Cyan, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("add %s layer: %w", layerPanels, err)
	}
	for _, p := range wall.Panels {
		if err := drawRect(d, p.X, p.Y, p.W, p.H); err != nil {
			return err
		}
	}

	if _, err := d.AddLayer(layerCutouts, color.Red, table.LT_HIDDEN, true); err != nil {
		return fmt.Errorf("add %s layer: %w", layerCutouts, err)
	}
	for _, p := range wall.Panels {
		for _, co := range p.Cutouts {
			if err := drawRect(d, p.X+co.X, p.Y+co.Y, co.W, co.H); err != nil {
				return err
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("save dxf: %w", err)
	}
	return nil
}

// drawRect draws an axis-aligned rectangle as four lines on the
// current layer.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	lines := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return fmt.Errorf("draw line: %w", err)
		}
	}
	return nil
}

// sanitizeFilename makes a wall id safe for use as a file name.
func sanitizeFilename(id string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", " ", "_",
		"*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_",
	)
	return replacer.Replace(id)
}
