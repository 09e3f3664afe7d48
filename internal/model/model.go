// Package model defines the core value types for wall panel layout:
// walls, openings with clearance requirements, fabricable panels and
// their cutouts, and the dimensional constraints that govern placement.
// All dimensions are in inches, wall-local, with the origin at the
// bottom-left corner of the wall face.
package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// OpeningType identifies the source category of a wall opening.
type OpeningType int

const (
	OpeningUnknown OpeningType = iota
	OpeningDoor
	OpeningWindow
	OpeningStorefront // Storefront or curtain wall
)

func (t OpeningType) String() string {
	switch t {
	case OpeningDoor:
		return "Door"
	case OpeningWindow:
		return "Window"
	case OpeningStorefront:
		return "Storefront/Curtain"
	default:
		return "Unknown"
	}
}

// StorefrontLike reports whether the opening type behaves like a
// storefront for classification purposes.
func (t OpeningType) StorefrontLike() bool {
	return t == OpeningStorefront
}

// ParseOpeningType maps a free-form type string from an input row to an
// OpeningType. Matching is case-insensitive and substring based, so
// "Exterior Door", "storefront" and "Curtain Wall" all resolve.
func ParseOpeningType(s string) OpeningType {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "door"):
		return OpeningDoor
	case strings.Contains(lower, "storefront"), strings.Contains(lower, "curtain"):
		return OpeningStorefront
	case strings.Contains(lower, "window"):
		return OpeningWindow
	default:
		return OpeningUnknown
	}
}

// Clearance holds the minimum keep-out margins around an opening.
type Clearance struct {
	Jamb   float64 `json:"jamb_min"`   // Left/right margin
	Header float64 `json:"header_min"` // Top margin
	Sill   float64 `json:"sill_min"`   // Bottom margin
}

// UniformClearance returns a clearance with the same margin on all sides.
func UniformClearance(v float64) Clearance {
	return Clearance{Jamb: v, Header: v, Sill: v}
}

// Wall is the reduced wall representation the engine operates on.
type Wall struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width_in"`
	Height float64 `json:"height_in"`
}

// Opening is a rectangular door, window or storefront cut into a wall.
// X is the left edge measured from the wall start, Y the sill height
// from the wall base. Clearance is the category clearance assigned at
// the data boundary; it is never mutated after construction.
type Opening struct {
	ID        string      `json:"id"`
	Type      OpeningType `json:"-"`
	X         float64     `json:"x_in"`
	Y         float64     `json:"y_in"`
	W         float64     `json:"width_in"`
	H         float64     `json:"height_in"`
	Clearance Clearance   `json:"clearance"`
}

// Right returns the raw right edge of the opening (no clearance).
func (o Opening) Right() float64 { return o.X + o.W }

// Top returns the raw top edge of the opening (no clearance).
func (o Opening) Top() float64 { return o.Y + o.H }

// Cutout is a rectangular hole punched through a panel, in coordinates
// relative to the panel's own bottom-left origin. The JSON field names
// match the placement CSV consumed by the CAD-side tooling.
type Cutout struct {
	ID   string  `json:"id"`
	Type string  `json:"type"`
	X    float64 `json:"x_in"`
	Y    float64 `json:"y_in"`
	W    float64 `json:"width_in"`
	H    float64 `json:"height_in"`
}

// Panel is a placed fabricable panel on a wall.
type Panel struct {
	Name    string   `json:"name"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	W       float64  `json:"w"`
	H       float64  `json:"h"`
	Cutouts []Cutout `json:"cutouts,omitempty"`
}

// Right returns the panel's right edge.
func (p Panel) Right() float64 { return p.X + p.W }

// Top returns the panel's top edge.
func (p Panel) Top() float64 { return p.Y + p.H }

// Area returns the panel face area in square inches.
func (p Panel) Area() float64 { return p.W * p.H }

// PanelsOverlap reports whether two panels physically overlap.
// Panels that merely share an edge do not overlap.
func PanelsOverlap(a, b Panel) bool {
	return !(a.Right() <= b.X || b.Right() <= a.X ||
		a.Top() <= b.Y || b.Top() <= a.Y)
}

// PanelConstraints holds the fabrication limits for panels.
//
// ShortMax and LongMax encode the aspect rule: a panel may exceed
// ShortMax in one dimension only, and neither dimension may exceed
// LongMax. MaxWidth caps the width chosen during normal segment
// placement; bridging panels that span an opening are allowed up to the
// band limit instead.
type PanelConstraints struct {
	MinWidth           float64 `json:"min_width"`
	MaxWidth           float64 `json:"max_width"`
	MinHeight          float64 `json:"min_height"`
	MaxHeight          float64 `json:"max_height"`
	ShortMax           float64 `json:"short_max"`
	LongMax            float64 `json:"long_max"`
	DimensionIncrement float64 `json:"dimension_increment"`
	PanelSpacing       float64 `json:"panel_spacing"`
}

// IsValidPanel reports whether a w x h panel is fabricable: both
// dimensions at least their minimum, neither above LongMax, and at
// least one of them within ShortMax.
func (c PanelConstraints) IsValidPanel(w, h float64) bool {
	if w < c.MinWidth || h < c.MinHeight {
		return false
	}
	if w > c.LongMax || h > c.LongMax {
		return false
	}
	if w > c.ShortMax && h > c.ShortMax {
		return false
	}
	return true
}

// Validate checks the internal consistency of the constraint set.
func (c PanelConstraints) Validate() error {
	if c.MinWidth <= 0 || c.MinHeight <= 0 {
		return fmt.Errorf("minimum panel dimensions must be positive")
	}
	if c.DimensionIncrement <= 0 {
		return fmt.Errorf("dimension increment must be positive")
	}
	if c.PanelSpacing < 0 {
		return fmt.Errorf("panel spacing cannot be negative")
	}
	if c.MinWidth >= c.MaxWidth {
		return fmt.Errorf("min width %.3f must be less than max width %.3f", c.MinWidth, c.MaxWidth)
	}
	if c.MaxWidth > c.LongMax {
		return fmt.Errorf("max width %.3f exceeds long max %.3f", c.MaxWidth, c.LongMax)
	}
	if c.ShortMax > c.LongMax {
		return fmt.Errorf("short max %.3f exceeds long max %.3f", c.ShortMax, c.LongMax)
	}
	return nil
}

// WallResult is the layout produced for a single wall.
type WallResult struct {
	Wall   Wall    `json:"wall"`
	Panels []Panel `json:"panels"`
}

// CoveredArea returns the total area of all placed panels.
func (r WallResult) CoveredArea() float64 {
	var total float64
	for _, p := range r.Panels {
		total += p.Area()
	}
	return total
}

// Coverage returns the covered percentage of the wall face.
func (r WallResult) Coverage() float64 {
	wa := r.Wall.Width * r.Wall.Height
	if wa == 0 {
		return 0
	}
	return (r.CoveredArea() / wa) * 100.0
}

// LayoutResult holds the layouts for all processed walls, in input order.
type LayoutResult struct {
	Walls []WallResult `json:"walls"`
}

// TotalPanels returns the number of panels across all walls.
func (lr LayoutResult) TotalPanels() int {
	total := 0
	for _, w := range lr.Walls {
		total += len(w.Panels)
	}
	return total
}

// NewID returns a short random identifier for records that arrive
// without one from the source model.
func NewID() string {
	return uuid.New().String()[:8]
}
