package engine

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/panelwright/panelcut/internal/model"
)

// adjustSeams moves vertical seams that fall inside small openings
// (man doors and the like) to the opening's left edge, so the
// right-hand panel fully owns the opening and its cutout. idx selects
// the panels in scope; panels are mutated in place and have their
// cutouts recomputed when adjusted. Each opening is adjusted at most
// once.
func (e *Engine) adjustSeams(panels []model.Panel, idx []int, openings []ClassifiedOpening, wallID string) {
	cons := e.cfg.Constraints
	spacing := cons.PanelSpacing

	for _, o := range openings {
		if !(o.W < e.cfg.Policy.SmallOpeningMaxWidth && o.H < e.cfg.Policy.SmallOpeningMaxHeight) {
			continue
		}

		// Panels crossing the opening's raw vertical span, left to right.
		band := make([]int, 0, len(idx))
		for _, i := range idx {
			p := panels[i]
			if p.Top() <= o.Y || p.Y >= o.Top() {
				continue
			}
			band = append(band, i)
		}
		sort.Slice(band, func(a, b int) bool { return panels[band[a]].X < panels[band[b]].X })

		for bi := 0; bi < len(band)-1; bi++ {
			left := &panels[band[bi]]
			right := &panels[band[bi+1]]

			seam := left.X + left.W + spacing
			if math.Abs(right.X-seam) > adjacencyTol {
				continue
			}
			if !(o.X < seam && seam < o.Right()) {
				continue
			}

			newSeam := snapDown(o.X, cons.DimensionIncrement)
			if newSeam <= left.X {
				continue
			}

			delta := seam - newSeam
			newLeftW := left.W - delta
			newRightW := right.Right() - newSeam
			if newLeftW < cons.MinWidth || newRightW < cons.MinWidth {
				continue
			}

			e.log.Debug("moving seam off small opening",
				zap.String("wall", wallID),
				zap.String("opening", o.ID),
				zap.Float64("from", seam),
				zap.Float64("to", newSeam))

			left.W = newLeftW
			right.X = newSeam
			right.W = newRightW
			left.Cutouts = cutoutsFor(*left, openings)
			right.Cutouts = cutoutsFor(*right, openings)
			break
		}
	}
}
