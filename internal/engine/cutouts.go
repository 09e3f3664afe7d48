package engine

import "github.com/panelwright/panelcut/internal/model"

// cutoutsFor intersects a panel with the clearance zones of the cutout
// openings and returns the positive-area intersections as panel-local
// cutout records. Blockers never produce cutouts; panels are kept out
// of their zones entirely.
func cutoutsFor(p model.Panel, openings []ClassifiedOpening) []model.Cutout {
	var out []model.Cutout
	pr := rect{x0: p.X, y0: p.Y, x1: p.Right(), y1: p.Top()}
	for _, o := range openings {
		if o.Kind != KindCutout {
			continue
		}
		iv, ok := intersect(pr, o.zoneRect())
		if !ok {
			continue
		}
		out = append(out, model.Cutout{
			ID:   o.ID,
			Type: o.Type.String(),
			X:    iv.x0 - p.X,
			Y:    iv.y0 - p.Y,
			W:    iv.width(),
			H:    iv.height(),
		})
	}
	return out
}
