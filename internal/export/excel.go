package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/panelwright/panelcut/internal/model"
)

// ExportExcel writes a two-sheet workbook: a "Panels" sheet with one
// row per placed panel and a "Walls" sheet summarizing coverage per
// wall.
func ExportExcel(path string, layout model.LayoutResult) error {
	f := excelize.NewFile()
	defer f.Close()

	const panelSheet = "Panels"
	if err := f.SetSheetName("Sheet1", panelSheet); err != nil {
		return fmt.Errorf("rename panel sheet: %w", err)
	}

	panelHeaders := []string{
		"Panel", "Type", "Wall", "X (in)", "Y (in)",
		"Width (in)", "Height (in)", "Area (in2)", "Cutouts",
	}
	if err := writeRow(f, panelSheet, 1, toCells(panelHeaders)); err != nil {
		return err
	}

	rowNum := 2
	for _, wall := range layout.Walls {
		for _, p := range wall.Panels {
			cells := []interface{}{
				p.Name, PanelType(p), wall.Wall.ID,
				p.X, p.Y, p.W, p.H, p.Area(), len(p.Cutouts),
			}
			if err := writeRow(f, panelSheet, rowNum, cells); err != nil {
				return err
			}
			rowNum++
		}
	}

	const wallSheet = "Walls"
	if _, err := f.NewSheet(wallSheet); err != nil {
		return fmt.Errorf("create wall sheet: %w", err)
	}
	wallHeaders := []string{
		"Wall", "Width (in)", "Height (in)", "Panels",
		"Covered (in2)", "Coverage (%)",
	}
	if err := writeRow(f, wallSheet, 1, toCells(wallHeaders)); err != nil {
		return err
	}
	for i, wall := range layout.Walls {
		cells := []interface{}{
			wall.Wall.ID, wall.Wall.Width, wall.Wall.Height,
			len(wall.Panels), wall.CoveredArea(), wall.Coverage(),
		}
		if err := writeRow(f, wallSheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for col, v := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name (%d,%d): %w", col+1, row, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
