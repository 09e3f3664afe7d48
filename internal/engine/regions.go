package engine

import "sort"

// Region is a horizontal slice of wall between blocker clearance zones
// (or wall edges). Openings holds the cutout openings whose clearance
// zones intersect the region horizontally.
type Region struct {
	XStart, XEnd float64
	YStart, YEnd float64
	Openings     []ClassifiedOpening
}

// Width returns the horizontal extent of the region.
func (r Region) Width() float64 { return r.XEnd - r.XStart }

// SplitRegions divides a wall into placeable regions around blocker
// clearance zones. Segments narrower than minWidth or lying inside a
// blocker span are discarded. With no blockers the whole wall is one
// region.
func SplitRegions(wallWidth, wallHeight float64, openings []ClassifiedOpening, minWidth float64) []Region {
	blockers := blockersOf(openings)
	cutouts := make([]ClassifiedOpening, 0, len(openings))
	for _, o := range openings {
		if o.Kind == KindCutout {
			cutouts = append(cutouts, o)
		}
	}

	if len(blockers) == 0 {
		return []Region{{
			XStart: 0, XEnd: wallWidth,
			YStart: 0, YEnd: wallHeight,
			Openings: cutouts,
		}}
	}

	boundaries := []float64{0, wallWidth}
	for _, b := range blockers {
		boundaries = append(boundaries, b.LeftZone(), b.RightZone())
	}
	sort.Float64s(boundaries)

	var regions []Region
	for i := 0; i < len(boundaries)-1; i++ {
		xStart, xEnd := boundaries[i], boundaries[i+1]
		if xEnd-xStart < minWidth {
			continue
		}
		if insideBlocker(xStart, xEnd, blockers) {
			continue
		}
		r := Region{XStart: xStart, XEnd: xEnd, YStart: 0, YEnd: wallHeight}
		for _, o := range cutouts {
			if o.RightZone() <= xStart || o.LeftZone() >= xEnd {
				continue
			}
			r.Openings = append(r.Openings, o)
		}
		regions = append(regions, r)
	}
	return regions
}

// insideBlocker reports whether the segment overlaps any blocker's
// horizontal clearance span.
func insideBlocker(xStart, xEnd float64, blockers []ClassifiedOpening) bool {
	for _, b := range blockers {
		if xEnd <= b.LeftZone() || xStart >= b.RightZone() {
			continue
		}
		return true
	}
	return false
}
