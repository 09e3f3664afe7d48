package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/panelwright/panelcut/internal/model"
)

// panelColor represents an RGB fill color for a placed panel.
type panelColor struct {
	R, G, B int
}

// panelColors cycle through the panels on each wall drawing.
var panelColors = []panelColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders each wall layout on its own page, followed by a
// summary page. Wall coordinates have their origin at the bottom-left
// corner; pages are drawn with the wall base at the bottom.
func ExportPDF(path string, layout model.LayoutResult, openingsByWall map[string][]model.Opening) error {
	if len(layout.Walls) == 0 {
		return fmt.Errorf("no walls to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, wall := range layout.Walls {
		pdf.AddPage()
		renderWallPage(pdf, wall, openingsByWall[wall.Wall.ID], i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, layout)

	return pdf.OutputFileAndClose(path)
}

// renderWallPage draws a single wall layout on the current page.
func renderWallPage(pdf *fpdf.Fpdf, wall model.WallResult, openings []model.Opening, pageNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Wall %d: %s (%.0f x %.0f in)", pageNum, wall.Wall.ID, wall.Wall.Width, wall.Wall.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Panels: %d | Openings: %d | Covered area: %.0f in² | Coverage: %.1f%%",
		len(wall.Panels), len(openings), wall.CoveredArea(), wall.Coverage())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scaleX := drawWidth / wall.Wall.Width
	scaleY := drawHeight / wall.Wall.Height
	scale := math.Min(scaleX, scaleY)

	canvasW := wall.Wall.Width * scale
	canvasH := wall.Wall.Height * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Wall-local y grows upward; page y grows downward.
	pageY := func(y float64) float64 { return offsetY + canvasH - y*scale }

	// Wall face background.
	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Openings with hatched clearance margins.
	for _, o := range openings {
		zx0 := math.Max(0, o.X-o.Clearance.Jamb)
		zy0 := math.Max(0, o.Y-o.Clearance.Sill)
		zx1 := math.Min(wall.Wall.Width, o.Right()+o.Clearance.Jamb)
		zy1 := math.Min(wall.Wall.Height, o.Top()+o.Clearance.Header)

		zx := offsetX + zx0*scale
		zw := (zx1 - zx0) * scale
		zh := (zy1 - zy0) * scale
		zy := pageY(zy1)

		pdf.SetFillColor(255, 220, 220)
		pdf.SetDrawColor(200, 0, 0)
		pdf.SetLineWidth(0.3)
		pdf.Rect(zx, zy, zw, zh, "FD")
		drawHatchPattern(pdf, zx, zy, zw, zh)

		// Opening itself on top of its clearance zone.
		ox := offsetX + o.X*scale
		ow := o.W * scale
		oh := o.H * scale
		oy := pageY(o.Top())
		pdf.SetFillColor(200, 225, 255)
		pdf.SetDrawColor(60, 60, 60)
		pdf.Rect(ox, oy, ow, oh, "FD")

		if ow > 15 && oh > 6 {
			pdf.SetFont("Helvetica", "", 6)
			pdf.SetTextColor(40, 40, 40)
			label := fmt.Sprintf("%s %s", o.Type, o.ID)
			labelW := pdf.GetStringWidth(label)
			if labelW < ow-2 {
				pdf.SetXY(ox+(ow-labelW)/2, oy+oh/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	// Placed panels.
	for i, p := range wall.Panels {
		col := panelColors[i%len(panelColors)]
		pw := p.W * scale
		ph := p.H * scale
		px := offsetX + p.X*scale
		py := pageY(p.Top())

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Cutouts punched through the panel.
		for _, co := range p.Cutouts {
			cx := offsetX + (p.X+co.X)*scale
			cy := pageY(p.Y + co.Y + co.H)
			pdf.SetFillColor(255, 255, 255)
			pdf.SetDrawColor(120, 0, 0)
			pdf.Rect(cx, cy, co.W*scale, co.H*scale, "FD")
		}

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.Name
			dims := fmt.Sprintf("%gx%g", p.W, p.H)
			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, wall.Wall, scale, offsetX, offsetY, canvasW, canvasH)
	drawPanelLegend(pdf, wall, offsetY+canvasH+5)
}

// drawHatchPattern draws diagonal lines inside a rectangle to mark
// clearance zones.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.15)

	spacing := 4.0
	maxDist := w + h
	for d := spacing; d < maxDist; d += spacing {
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)
		pdf.Line(x1, y1, x2, y2)
	}
}

// drawDimensionAnnotations adds width and height labels outside the
// wall rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, wall model.Wall, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f in", wall.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f in", wall.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawPanelLegend renders a compact legend of placed panels below the
// drawing.
func drawPanelLegend(pdf *fpdf.Fpdf, wall model.WallResult, startY float64) {
	if len(wall.Panels) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Panels placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range wall.Panels {
		col := panelColors[i%len(panelColors)]
		label := fmt.Sprintf("%s (%gx%g)", p.Name, p.W, p.H)
		if len(p.Cutouts) > 0 {
			label += fmt.Sprintf(" [%d cutout]", len(p.Cutouts))
		}
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final page with per-wall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, layout model.LayoutResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Panel Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	var totalArea, coveredArea float64
	for _, w := range layout.Walls {
		totalArea += w.Wall.Width * w.Wall.Height
		coveredArea += w.CoveredArea()
	}
	overall := 0.0
	if totalArea > 0 {
		overall = coveredArea / totalArea * 100
	}

	summaryItems := []struct {
		label string
		value string
	}{
		{"Walls Processed", fmt.Sprintf("%d", len(layout.Walls))},
		{"Total Panels", fmt.Sprintf("%d", layout.TotalPanels())},
		{"Overall Coverage", fmt.Sprintf("%.1f%%", overall)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Wall Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 70, 50, 35, 35, 55}
	headers := []string{"#", "Wall", "Dimensions", "Panels", "Coverage", "Covered / Total Area"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, wall := range layout.Walls {
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			wall.Wall.ID,
			fmt.Sprintf("%.0f x %.0f in", wall.Wall.Width, wall.Wall.Height),
			fmt.Sprintf("%d", len(wall.Panels)),
			fmt.Sprintf("%.1f%%", wall.Coverage()),
			fmt.Sprintf("%.0f / %.0f in²", wall.CoveredArea(), wall.Wall.Width*wall.Wall.Height),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}
}

// labelFontSize returns an appropriate font size for a rectangle.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
