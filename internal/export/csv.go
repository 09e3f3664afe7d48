// Package export writes panel layout results to the formats the
// fabrication and CAD side consume: placement CSV, Excel schedules,
// PDF layout drawings, QR-coded panel labels, and DXF outlines.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/panelwright/panelcut/internal/model"
)

// placementHeader is the field set the downstream placement tooling
// expects. Order matters.
var placementHeader = []string{
	"panel_name", "panel_type", "wall_id",
	"x_in", "y_in", "width_in", "height_in",
	"area_in2", "rotation_deg", "x_ref", "cutouts_json",
}

// WritePlacementsCSV writes the panel placement schedule for all walls
// to a single CSV file.
func WritePlacementsCSV(path string, layout model.LayoutResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create placement csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(placementHeader); err != nil {
		return fmt.Errorf("write placement header: %w", err)
	}

	for _, wall := range layout.Walls {
		for _, p := range wall.Panels {
			row, err := placementRow(wall.Wall.ID, p)
			if err != nil {
				return err
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write placement row for %s: %w", p.Name, err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush placement csv: %w", err)
	}
	return nil
}

func placementRow(wallID string, p model.Panel) ([]string, error) {
	cutoutsJSON := "[]"
	if len(p.Cutouts) > 0 {
		data, err := json.Marshal(p.Cutouts)
		if err != nil {
			return nil, fmt.Errorf("marshal cutouts for %s: %w", p.Name, err)
		}
		cutoutsJSON = string(data)
	}
	return []string{
		p.Name,
		PanelType(p),
		wallID,
		formatInches(p.X),
		formatInches(p.Y),
		formatInches(p.W),
		formatInches(p.H),
		formatInches(p.Area()),
		"0.0",
		"start",
		cutoutsJSON,
	}, nil
}

// PanelType is the WxH type designation used on schedules and labels.
func PanelType(p model.Panel) string {
	return formatInches(p.W) + "x" + formatInches(p.H)
}

// formatInches renders a dimension with no trailing zeros.
func formatInches(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
