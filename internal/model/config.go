package model

import (
	"fmt"
	"strings"
)

// Orientation selects the primary panel direction.
type Orientation string

const (
	// OrientationVertical places full-height panels across the wall.
	OrientationVertical Orientation = "vertical"
	// OrientationHorizontal stacks bands of wide panels bottom-up.
	OrientationHorizontal Orientation = "horizontal"
)

// ParseOrientation resolves a user-supplied orientation string,
// defaulting to vertical.
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(strings.TrimSpace(s), string(OrientationHorizontal)) {
		return OrientationHorizontal
	}
	return OrientationVertical
}

// LayoutPolicy holds the named placement heuristics that used to be
// buried as literals in the layout code.
type LayoutPolicy struct {
	// StorefrontAlwaysBlocks forces storefront/curtain openings to be
	// treated as blockers regardless of their span.
	StorefrontAlwaysBlocks bool `json:"storefront_always_blocks"`
	// SmallOpeningMaxWidth / SmallOpeningMaxHeight bound the openings
	// that qualify for seam adjustment.
	SmallOpeningMaxWidth  float64 `json:"small_opening_max_width"`
	SmallOpeningMaxHeight float64 `json:"small_opening_max_height"`
}

// DefaultLayoutPolicy returns the stock placement heuristics.
func DefaultLayoutPolicy() LayoutPolicy {
	return LayoutPolicy{
		StorefrontAlwaysBlocks: true,
		SmallOpeningMaxWidth:   72,
		SmallOpeningMaxHeight:  120,
	}
}

// Config is the full optimizer configuration: fabrication constraints,
// per-category clearances, panel orientation and placement policy.
type Config struct {
	ProjectName          string           `json:"project_name"`
	Orientation          Orientation      `json:"panel_orientation"`
	Constraints          PanelConstraints `json:"panel_constraints"`
	DoorClearances       Clearance        `json:"door_clearances"`
	WindowClearances     Clearance        `json:"window_clearances"`
	StorefrontClearances Clearance        `json:"storefront_clearances"`
	Policy               LayoutPolicy     `json:"layout_policy"`
}

// VerticalPreset returns the configuration for full-height vertical
// panels. Panels run tall and narrow: width capped at 138in, height up
// to 348in.
func VerticalPreset() Config {
	return Config{
		ProjectName: "Untitled Project",
		Orientation: OrientationVertical,
		Constraints: PanelConstraints{
			MinWidth:           24,
			MaxWidth:           138,
			MinHeight:          24,
			MaxHeight:          348,
			ShortMax:           138,
			LongMax:            348,
			DimensionIncrement: 1,
			PanelSpacing:       0.125,
		},
		DoorClearances:       Clearance{Jamb: 6, Header: 8, Sill: 6},
		WindowClearances:     Clearance{Jamb: 4, Header: 6, Sill: 4},
		StorefrontClearances: UniformClearance(0.75),
		Policy:               DefaultLayoutPolicy(),
	}
}

// HorizontalPreset returns the configuration for stacked horizontal
// bands. Panels run wide and short: width up to 348in, height capped at
// 138in.
func HorizontalPreset() Config {
	return Config{
		ProjectName: "Untitled Project",
		Orientation: OrientationHorizontal,
		Constraints: PanelConstraints{
			MinWidth:           12,
			MaxWidth:           348,
			MinHeight:          12,
			MaxHeight:          138,
			ShortMax:           138,
			LongMax:            348,
			DimensionIncrement: 1,
			PanelSpacing:       0.125,
		},
		DoorClearances:       Clearance{Jamb: 6, Header: 8, Sill: 6},
		WindowClearances:     Clearance{Jamb: 6, Header: 8, Sill: 6},
		StorefrontClearances: UniformClearance(0.75),
		Policy:               DefaultLayoutPolicy(),
	}
}

// DefaultConfig is the vertical preset.
func DefaultConfig() Config {
	return VerticalPreset()
}

// PresetFor returns the stock configuration for an orientation.
func PresetFor(o Orientation) Config {
	if o == OrientationHorizontal {
		return HorizontalPreset()
	}
	return VerticalPreset()
}

// ClearanceFor returns the category clearance for an opening type.
// Unknown types get the window clearance.
func (c Config) ClearanceFor(t OpeningType) Clearance {
	switch t {
	case OpeningDoor:
		return c.DoorClearances
	case OpeningStorefront:
		return c.StorefrontClearances
	default:
		return c.WindowClearances
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if err := c.Constraints.Validate(); err != nil {
		return fmt.Errorf("panel constraints: %w", err)
	}
	for _, cl := range []struct {
		name string
		c    Clearance
	}{
		{"door", c.DoorClearances},
		{"window", c.WindowClearances},
		{"storefront", c.StorefrontClearances},
	} {
		if cl.c.Jamb < 0 || cl.c.Header < 0 || cl.c.Sill < 0 {
			return fmt.Errorf("%s clearances cannot be negative", cl.name)
		}
	}
	if c.Orientation != OrientationVertical && c.Orientation != OrientationHorizontal {
		return fmt.Errorf("unknown panel orientation %q", c.Orientation)
	}
	return nil
}
