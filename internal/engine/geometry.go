package engine

import "math"

// Tolerances used by the placement loops. These are positional slacks
// in inches, not float epsilons: lookahead ignores openings less than
// aheadTol past the cursor, seam checks shrink the clearance zone by
// seamTol on each side, and adjacencyTol decides when two panels (or a
// cursor and a stop) count as meeting.
const (
	aheadTol     = 0.01
	seamTol      = 0.1
	adjacencyTol = 1.0
)

// snapDown rounds v down to the nearest multiple of inc.
func snapDown(v, inc float64) float64 {
	if inc <= 0 {
		return v
	}
	return math.Floor(v/inc) * inc
}

// snapUp rounds v up to the next multiple of inc using the integer
// ceiling identity floor((v+inc-1)/inc)*inc.
func snapUp(v, inc float64) float64 {
	if inc <= 0 {
		return v
	}
	return math.Floor((v+inc-1)/inc) * inc
}

// rect is an axis-aligned rectangle given by its edges.
type rect struct {
	x0, y0, x1, y1 float64
}

func (r rect) width() float64  { return r.x1 - r.x0 }
func (r rect) height() float64 { return r.y1 - r.y0 }

// intersect returns the overlap of two rectangles and whether it has
// positive area.
func intersect(a, b rect) (rect, bool) {
	out := rect{
		x0: math.Max(a.x0, b.x0),
		y0: math.Max(a.y0, b.y0),
		x1: math.Min(a.x1, b.x1),
		y1: math.Min(a.y1, b.y1),
	}
	if out.width() <= 0 || out.height() <= 0 {
		return rect{}, false
	}
	return out, true
}

// overlaps reports whether two rectangles share positive area.
func overlaps(a, b rect) bool {
	_, ok := intersect(a, b)
	return ok
}
