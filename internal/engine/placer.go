package engine

import (
	"math"

	"go.uber.org/zap"

	"github.com/panelwright/panelcut/internal/model"
)

// band is one horizontal strip of a region that panels are laid into.
type band struct {
	yStart, yEnd float64
}

func (b band) height() float64 { return b.yEnd - b.yStart }

// bands splits a region into placement strips. Vertical orientation
// uses a single full-height band; horizontal orientation stacks bands
// of up to ShortMax bottom-up, leaving any remainder below MinHeight to
// the gap filler.
func (e *Engine) bands(r Region) []band {
	cons := e.cfg.Constraints
	if e.cfg.Orientation != model.OrientationHorizontal {
		return []band{{yStart: r.YStart, yEnd: r.YEnd}}
	}
	var out []band
	cy := r.YStart
	for {
		rem := r.YEnd - cy
		bh := snapDown(math.Min(rem, cons.ShortMax), cons.DimensionIncrement)
		if bh < cons.MinHeight {
			break
		}
		out = append(out, band{yStart: cy, yEnd: cy + bh})
		cy += bh + cons.PanelSpacing
	}
	return out
}

// bandMaxWidth is the widest panel a band allows: a band taller than
// ShortMax forces the width to be the short dimension.
func (e *Engine) bandMaxWidth(bandHeight float64) float64 {
	if bandHeight > e.cfg.Constraints.ShortMax {
		return e.cfg.Constraints.ShortMax
	}
	return e.cfg.Constraints.LongMax
}

// placeRegion runs the cursor over one region band by band, appending
// placed panels and returning the updated panel counter.
//
// At each cursor position the placer looks ahead to the nearest cutout
// opening intersecting the band. If a single panel can bridge from the
// cursor over that opening's full clearance span it places the bridge;
// otherwise it tiles panels up to the opening's left zone (or the
// region end) and hops over the opening, leaving the strips above and
// below it to the gap filler.
func (e *Engine) placeRegion(r Region, wallID string, panels []model.Panel, counter int) ([]model.Panel, int) {
	cons := e.cfg.Constraints

	for _, bd := range e.bands(r) {
		bandMax := e.bandMaxWidth(bd.height())
		segMax := math.Min(cons.MaxWidth, bandMax)
		x := math.Max(0, r.XStart)

		for x < r.XEnd {
			if r.XEnd-x < cons.MinWidth {
				break
			}

			next := nextOpening(r.Openings, x, bd)
			hardStop := r.XEnd
			targetIsOpening := false
			if next != nil {
				bridge := next.RightZone() - x
				if bridge <= bandMax && bridge >= cons.MinWidth {
					w := snapDown(bridge, cons.DimensionIncrement)
					if cons.IsValidPanel(w, bd.height()) {
						p := model.Panel{
							Name: panelName(counter),
							X:    x, Y: bd.yStart,
							W: w, H: bd.height(),
						}
						p.Cutouts = cutoutsFor(p, r.Openings)
						panels = append(panels, p)
						counter++
						x += w + cons.PanelSpacing
						continue
					}
				}
				hardStop = next.LeftZone()
				targetIsOpening = true
			}

			dist := hardStop - x
			if dist < cons.MinWidth {
				if targetIsOpening {
					// Too tight to panel before the opening; resume
					// past its clearance.
					e.log.Debug("skipping narrow strip before opening",
						zap.String("wall", wallID),
						zap.String("opening", next.ID),
						zap.Float64("width", dist))
					x = next.RightZone()
					continue
				}
				break
			}

			w := segmentWidth(dist, segMax, cons.MinWidth, cons.DimensionIncrement, cons.PanelSpacing)
			w = e.validateSeam(r, x, w, bandMax, wallID)

			if !cons.IsValidPanel(w, bd.height()) {
				e.log.Warn("panel failed validity check, stopping band",
					zap.String("wall", wallID),
					zap.Float64("width", w),
					zap.Float64("height", bd.height()))
				break
			}

			p := model.Panel{
				Name: panelName(counter),
				X:    x, Y: bd.yStart,
				W: w, H: bd.height(),
			}
			p.Cutouts = cutoutsFor(p, r.Openings)
			panels = append(panels, p)
			counter++
			x += w + cons.PanelSpacing

			// Landing at the stop in front of an opening means the
			// strip up to the jamb is done; jump past the opening.
			if targetIsOpening && math.Abs(x-(hardStop+cons.PanelSpacing)) < adjacencyTol {
				x = next.RightZone()
			}
		}
	}
	return panels, counter
}

// nextOpening returns the nearest cutout opening ahead of the cursor
// whose clearance zone intersects the band vertically, or nil.
func nextOpening(openings []ClassifiedOpening, x float64, bd band) *ClassifiedOpening {
	var nearest *ClassifiedOpening
	for i := range openings {
		o := &openings[i]
		if o.Kind != KindCutout {
			continue
		}
		if o.LeftZone() <= x+aheadTol {
			continue
		}
		if o.TopZone() <= bd.yStart || o.BottomZone() >= bd.yEnd {
			continue
		}
		if nearest == nil || o.LeftZone() < nearest.LeftZone() {
			nearest = o
		}
	}
	return nearest
}

// segmentWidth picks the width for the next panel in a run from the
// cursor to a hard stop. A distance that fits one panel is taken whole;
// otherwise the run is divided into the fewest equal panels that fit,
// so no final sliver below MinWidth is left behind.
func segmentWidth(dist, maxW, minW, inc, spacing float64) float64 {
	if dist < minW {
		return dist
	}
	if dist <= maxW {
		return snapDown(dist, inc)
	}
	for n := 1; ; n++ {
		if n > 100 {
			return maxW
		}
		candidate := (dist - float64(n-1)*spacing) / float64(n)
		if candidate > maxW {
			continue
		}
		if candidate < minW {
			return maxW
		}
		return snapDown(candidate, inc)
	}
}

// validateSeam checks whether the panel's right edge would land inside
// an opening's clearance zone and corrects the width: pull the seam
// back to the left jamb when enough width remains, otherwise stretch
// the panel to clear the right jamb. Only the first offending opening
// is corrected per panel.
func (e *Engine) validateSeam(r Region, x, w, bandMax float64, wallID string) float64 {
	cons := e.cfg.Constraints
	rightEdge := x + w
	for _, o := range r.Openings {
		if rightEdge <= o.LeftZone()+seamTol || rightEdge >= o.RightZone()-seamTol {
			continue
		}
		distToLeftJamb := o.LeftZone() - x
		if distToLeftJamb >= cons.MinWidth {
			return snapDown(distToLeftJamb, cons.DimensionIncrement)
		}
		widthToClear := snapUp(o.RightZone()-x, cons.DimensionIncrement)
		if widthToClear <= bandMax {
			return widthToClear
		}
		e.log.Warn("cannot clear opening clearance zone, clamping panel to band max",
			zap.String("wall", wallID),
			zap.String("opening", o.ID))
		return snapDown(bandMax, cons.DimensionIncrement)
	}
	return w
}
