// Package importer loads wall and opening schedules from CSV and Excel
// exports. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition; schedule dimensions
// are in feet and are converted to inches on import.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/panelwright/panelcut/internal/model"
)

// WallsResult holds the outcome of a wall schedule import.
type WallsResult struct {
	Walls    []model.Wall
	Errors   []string
	Warnings []string
}

// OpeningsResult holds the outcome of an opening schedule import,
// grouped by host wall id.
type OpeningsResult struct {
	ByWall   map[string][]model.Opening
	Errors   []string
	Warnings []string
}

// Header aliases per role, compared after lowercasing and removing
// spaces. The "(ft)" suffixed forms are what the schedule export
// writes; the bare forms cover hand-edited files.
var wallHeaderAliases = map[string][]string{
	"id":     {"wallid", "elementid", "id"},
	"name":   {"name", "wallname"},
	"length": {"length(ft)", "length", "lengthft"},
	"height": {"unconnectedheight(ft)", "unconnectedheight", "height(ft)", "height"},
}

var openingHeaderAliases = map[string][]string{
	"id":       {"openingid", "id"},
	"hostwall": {"hostwallid", "wallid", "host"},
	"type":     {"openingtype", "type", "category"},
	"width":    {"width(ft)", "width"},
	"height":   {"height(ft)", "height"},
	"sill":     {"sillheight(ft)", "sillheight", "sill(ft)", "sill"},
	"leftedge": {"leftedgealongwall(ft)", "leftedgealongwall", "leftedge"},
	"position": {"positionalongwall(ft)", "positionalongwall", "position"},
}

// DetectCSVDelimiter determines the most likely delimiter by trying
// comma, semicolon, tab, and pipe and scoring column-count consistency.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}
		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}
	return bestDelimiter
}

func normalizeHeader(cell string) string {
	s := strings.ToLower(strings.TrimSpace(cell))
	return strings.ReplaceAll(s, " ", "")
}

// roleIndices matches a header row against an alias table and returns
// index-per-role plus whether any role matched at all.
func roleIndices(row []string, aliases map[string][]string) (map[string]int, bool) {
	out := make(map[string]int, len(aliases))
	for role := range aliases {
		out[role] = -1
	}
	matched := false
	for i, cell := range row {
		normalized := normalizeHeader(cell)
		for role, names := range aliases {
			for _, alias := range names {
				if normalized == alias && out[role] == -1 {
					out[role] = i
					matched = true
				}
			}
		}
	}
	return out, matched
}

// getCell safely retrieves a trimmed cell value by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// safeFloat coerces a schedule cell to a float, treating anything
// unparsable as zero. Zero dimensions are filtered by the callers, so
// malformed rows degrade to skipped rows instead of aborting the run.
func safeFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

const inchesPerFoot = 12.0

// ImportWallsCSV loads a wall schedule from a CSV file.
func ImportWallsCSV(path string) WallsResult {
	result := WallsResult{}
	records, warnings, errMsg := readCSVFile(path)
	if errMsg != "" {
		result.Errors = append(result.Errors, errMsg)
		return result
	}
	result.Warnings = warnings
	return wallsFromRows(records, result.Warnings)
}

// ImportWallsFromReader loads a wall schedule from a CSV stream with a
// known delimiter.
func ImportWallsFromReader(r io.Reader, delimiter rune) WallsResult {
	records, errMsg := readCSVStream(r, delimiter)
	if errMsg != "" {
		return WallsResult{Errors: []string{errMsg}}
	}
	return wallsFromRows(records, nil)
}

// ImportWallsExcel loads a wall schedule from the first sheet of an
// Excel workbook.
func ImportWallsExcel(path string) WallsResult {
	rows, errMsg := readExcelFile(path)
	if errMsg != "" {
		return WallsResult{Errors: []string{errMsg}}
	}
	return wallsFromRows(rows, nil)
}

// ImportOpeningsCSV loads an opening schedule from a CSV file,
// assigning each opening its category clearance from cfg.
func ImportOpeningsCSV(path string, cfg model.Config) OpeningsResult {
	result := OpeningsResult{}
	records, warnings, errMsg := readCSVFile(path)
	if errMsg != "" {
		result.Errors = append(result.Errors, errMsg)
		return result
	}
	result.Warnings = warnings
	return openingsFromRows(records, cfg, result.Warnings)
}

// ImportOpeningsFromReader loads an opening schedule from a CSV stream
// with a known delimiter.
func ImportOpeningsFromReader(r io.Reader, delimiter rune, cfg model.Config) OpeningsResult {
	records, errMsg := readCSVStream(r, delimiter)
	if errMsg != "" {
		return OpeningsResult{Errors: []string{errMsg}}
	}
	return openingsFromRows(records, cfg, nil)
}

// ImportOpeningsExcel loads an opening schedule from the first sheet
// of an Excel workbook.
func ImportOpeningsExcel(path string, cfg model.Config) OpeningsResult {
	rows, errMsg := readExcelFile(path)
	if errMsg != "" {
		return OpeningsResult{Errors: []string{errMsg}}
	}
	return openingsFromRows(rows, cfg, nil)
}

func readCSVFile(path string) (records [][]string, warnings []string, errMsg string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Sprintf("Cannot open file: %v", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, "File is empty"
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err = reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Sprintf("Cannot read CSV: %v", err)
	}
	if len(records) == 0 {
		return nil, nil, "File is empty"
	}
	return records, warnings, ""
}

func readCSVStream(r io.Reader, delimiter rune) ([][]string, string) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Sprintf("Cannot read CSV: %v", err)
	}
	if len(records) == 0 {
		return nil, "File is empty"
	}
	return records, ""
}

func readExcelFile(path string) ([][]string, string) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Sprintf("Cannot open Excel file: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, "Excel file has no sheets"
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Sprintf("Cannot read Excel data: %v", err)
	}
	if len(rows) == 0 {
		return nil, "Sheet is empty"
	}
	return rows, ""
}

// wallsFromRows parses the wall schedule. The schedule must carry a
// header row; the id falls back WallId -> ElementId -> Id -> Name and
// finally a generated "Wall N" label.
func wallsFromRows(rows [][]string, initialWarnings []string) WallsResult {
	result := WallsResult{Warnings: initialWarnings}

	idx, matched := roleIndices(rows[0], wallHeaderAliases)
	if !matched || idx["length"] == -1 || idx["height"] == -1 {
		result.Errors = append(result.Errors,
			"Required columns not found in header: Length (ft), UnconnectedHeight (ft)")
		return result
	}

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		id := getCell(row, idx["id"])
		if id == "" {
			id = getCell(row, idx["name"])
		}
		if id == "" {
			id = fmt.Sprintf("Wall %d", len(result.Walls)+1)
		}

		width := safeFloat(getCell(row, idx["length"])) * inchesPerFoot
		height := safeFloat(getCell(row, idx["height"])) * inchesPerFoot
		if width <= 0 || height <= 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Line %d: wall %s has non-positive dimensions, skipping", i+1, id))
			continue
		}

		result.Walls = append(result.Walls, model.Wall{ID: id, Width: width, Height: height})
	}
	return result
}

// openingsFromRows parses the opening schedule. The left edge comes
// from LeftEdgeAlongWall (ft) or, when absent, from the opening center
// in PositionAlongWall (ft) minus half the width.
func openingsFromRows(rows [][]string, cfg model.Config, initialWarnings []string) OpeningsResult {
	result := OpeningsResult{
		ByWall:   make(map[string][]model.Opening),
		Warnings: initialWarnings,
	}

	idx, matched := roleIndices(rows[0], openingHeaderAliases)
	if !matched || idx["hostwall"] == -1 || idx["width"] == -1 || idx["height"] == -1 {
		result.Errors = append(result.Errors,
			"Required columns not found in header: HostWallId, Width (ft), Height (ft)")
		return result
	}

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		hostWall := getCell(row, idx["hostwall"])
		if hostWall == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Line %d: opening has no host wall, skipping", i+1))
			continue
		}

		w := safeFloat(getCell(row, idx["width"])) * inchesPerFoot
		h := safeFloat(getCell(row, idx["height"])) * inchesPerFoot
		if w <= 0 || h <= 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Line %d: opening has non-positive dimensions, skipping", i+1))
			continue
		}

		y := safeFloat(getCell(row, idx["sill"])) * inchesPerFoot

		var x float64
		if left := getCell(row, idx["leftedge"]); left != "" {
			x = safeFloat(left) * inchesPerFoot
		} else {
			center := safeFloat(getCell(row, idx["position"])) * inchesPerFoot
			x = center - w/2
		}

		id := getCell(row, idx["id"])
		if id == "" {
			id = model.NewID()
		}
		openingType := model.ParseOpeningType(getCell(row, idx["type"]))

		result.ByWall[hostWall] = append(result.ByWall[hostWall], model.Opening{
			ID: id, Type: openingType,
			X: x, Y: y, W: w, H: h,
			Clearance: cfg.ClearanceFor(openingType),
		})
	}
	return result
}
