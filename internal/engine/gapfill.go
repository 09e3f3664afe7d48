package engine

import (
	"math"

	"go.uber.org/zap"

	"github.com/panelwright/panelcut/internal/model"
)

// gapSpan describes a vertical gap above or below an opening that the
// gap filler should tile with rows of panels.
type gapSpan struct {
	regionXStart, regionXEnd float64
	yStart, yEnd             float64
	openLeft, openRight      float64 // opening clearance zone edges
	fullSpan                 bool    // span the whole region, not just the opening
}

// fillGap tiles a vertical gap with horizontal rows of panels, bottom
// up, appending to panels and returning the updated counter.
//
// The fill band is inset by the panel spacing so new panels keep a seam
// against their neighbors. Candidates that would overlap an existing
// panel or intrude into a blocker clearance zone end the row; landing
// over a cutout opening is allowed and produces a cutout.
func (e *Engine) fillGap(g gapSpan, all []ClassifiedOpening, wallID string, panels []model.Panel, counter int) ([]model.Panel, int) {
	cons := e.cfg.Constraints
	spacing := cons.PanelSpacing

	var xStart, xEnd float64
	if g.fullSpan {
		xStart = g.regionXStart + spacing
		xEnd = g.regionXEnd - spacing
	} else {
		xStart = math.Max(g.openLeft+spacing, g.regionXStart)
		xEnd = math.Min(g.openRight-spacing, g.regionXEnd)
	}

	if xEnd-xStart < cons.MinWidth || g.yEnd-g.yStart < cons.MinHeight {
		return panels, counter
	}

	y := g.yStart
	for y < g.yEnd {
		remH := g.yEnd - y
		if remH < cons.MinHeight {
			break
		}
		rowH := snapDown(remH, cons.DimensionIncrement)
		if rowH < cons.MinHeight {
			break
		}
		rowMax := e.bandMaxWidth(rowH)

		x := xStart
		rowPlaced := false
		for x < xEnd {
			remW := xEnd - x
			if remW < cons.MinWidth {
				break
			}
			w := snapDown(math.Min(remW, rowMax), cons.DimensionIncrement)

			// A leftover strip too small for another panel plus a seam
			// gets consumed by widening this one.
			leftover := remW - w
			if leftover > 0 && leftover < cons.MinWidth+spacing {
				w = snapDown(remW, cons.DimensionIncrement)
			}
			if w < cons.MinWidth || !cons.IsValidPanel(w, rowH) {
				break
			}

			candidate := model.Panel{
				Name: panelName(counter),
				X:    x, Y: y,
				W: w, H: rowH,
			}
			if overlapsAny(candidate, panels) {
				e.log.Debug("gap fill candidate overlaps placed panel, stopping row",
					zap.String("wall", wallID))
				break
			}
			if intrudesBlocker(candidate, all) {
				e.log.Debug("gap fill candidate intrudes blocker zone, stopping row",
					zap.String("wall", wallID))
				break
			}
			candidate.Cutouts = cutoutsFor(candidate, all)
			panels = append(panels, candidate)
			counter++
			rowPlaced = true
			x += w + spacing
		}

		if !rowPlaced {
			break
		}
		y += rowH + spacing
	}
	return panels, counter
}

// overlapsAny reports whether the candidate overlaps any placed panel.
func overlapsAny(candidate model.Panel, panels []model.Panel) bool {
	for _, p := range panels {
		if model.PanelsOverlap(candidate, p) {
			return true
		}
	}
	return false
}

// intrudesBlocker reports whether the candidate enters a blocker
// clearance zone.
func intrudesBlocker(candidate model.Panel, openings []ClassifiedOpening) bool {
	cr := rect{x0: candidate.X, y0: candidate.Y, x1: candidate.Right(), y1: candidate.Top()}
	for _, o := range openings {
		if o.Kind != KindBlocker {
			continue
		}
		if overlaps(cr, o.zoneRect()) {
			return true
		}
	}
	return false
}
