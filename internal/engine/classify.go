package engine

import (
	"math"
	"sort"

	"github.com/panelwright/panelcut/internal/model"
)

// OpeningKind is the placement role an opening plays on its wall.
type OpeningKind int

const (
	// KindCutout openings can be spanned by a single panel carrying a
	// cutout.
	KindCutout OpeningKind = iota
	// KindBlocker openings split the wall into independent regions;
	// no panel may enter their clearance zone.
	KindBlocker
)

func (k OpeningKind) String() string {
	if k == KindBlocker {
		return "blocker"
	}
	return "cutout"
}

// ClassifiedOpening pairs an opening with its placement role and the
// clearance the layout actually works with. Blockers keep only a
// panel-spacing gap on all sides; cutout openings keep their full
// category clearance so the spanning panel's hole clears the frame.
type ClassifiedOpening struct {
	model.Opening
	Kind      OpeningKind
	Effective model.Clearance
}

// LeftZone returns the left clearance boundary, clamped to the wall
// start. The right and top boundaries are deliberately unclamped:
// an opening hard against the far edge of the wall must still push its
// clearance past the region end so placement stops short of it.
func (o ClassifiedOpening) LeftZone() float64 {
	return math.Max(0, o.X-o.Effective.Jamb)
}

// RightZone returns the right clearance boundary (unclamped).
func (o ClassifiedOpening) RightZone() float64 {
	return o.X + o.W + o.Effective.Jamb
}

// BottomZone returns the bottom clearance boundary, clamped to the
// wall base.
func (o ClassifiedOpening) BottomZone() float64 {
	return math.Max(0, o.Y-o.Effective.Sill)
}

// TopZone returns the top clearance boundary (unclamped).
func (o ClassifiedOpening) TopZone() float64 {
	return o.Y + o.H + o.Effective.Header
}

// zoneRect returns the full clearance zone as a rectangle.
func (o ClassifiedOpening) zoneRect() rect {
	return rect{x0: o.LeftZone(), y0: o.BottomZone(), x1: o.RightZone(), y1: o.TopZone()}
}

// Classify assigns each opening its placement role for the given
// configuration and returns the result sorted by X. The function is
// pure: it never mutates its inputs and calling it twice on the same
// slice yields identical output.
//
// Storefront and curtain openings are blockers whenever the
// StorefrontAlwaysBlocks policy is set. Any other opening becomes a
// blocker when the span a bridging panel would need, W plus a jamb
// clearance on each side, exceeds the maximum panel width.
func Classify(openings []model.Opening, cfg model.Config) []ClassifiedOpening {
	out := make([]ClassifiedOpening, 0, len(openings))
	for _, o := range openings {
		co := ClassifiedOpening{Opening: o}
		blocker := false
		if o.Type.StorefrontLike() && cfg.Policy.StorefrontAlwaysBlocks {
			blocker = true
		} else {
			requiredSpan := o.W + 2*o.Clearance.Jamb
			blocker = requiredSpan > cfg.Constraints.MaxWidth
		}
		if blocker {
			co.Kind = KindBlocker
			co.Effective = model.UniformClearance(cfg.Constraints.PanelSpacing)
		} else {
			co.Kind = KindCutout
			co.Effective = o.Clearance
		}
		out = append(out, co)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}

// blockersOf filters the classified set down to blockers.
func blockersOf(openings []ClassifiedOpening) []ClassifiedOpening {
	var out []ClassifiedOpening
	for _, o := range openings {
		if o.Kind == KindBlocker {
			out = append(out, o)
		}
	}
	return out
}
