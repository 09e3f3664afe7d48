package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelwright/panelcut/internal/model"
)

func TestSegmentWidth(t *testing.T) {
	// minW 24, maxW 138, increment 1, spacing 0.125 throughout.
	cases := []struct {
		name string
		dist float64
		want float64
	}{
		{"below minimum returns the gap as-is", 20, 20},
		{"single panel takes the whole run snapped", 100.6, 100},
		{"exactly max", 138, 138},
		{"two equal panels", 240, 119},
		{"three equal panels", 400, 133},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, segmentWidth(tc.dist, 138, 24, 1, 0.125))
		})
	}

	// An absurd run trips the iteration cap and falls back to max width.
	assert.Equal(t, 138.0, segmentWidth(1e9, 138, 24, 1, 0.125))
}

// A plain 20' x 9' wall with no openings splits into two near-equal
// vertical panels rather than one over-wide panel.
func TestPlainWallTwoPanels(t *testing.T) {
	cfg := model.VerticalPreset()
	e := New(cfg, nil)

	res := e.ProcessWall(model.Wall{ID: "W1", Width: 240, Height: 108}, nil)

	require.Len(t, res.Panels, 2)
	p1, p2 := res.Panels[0], res.Panels[1]
	assert.Equal(t, "P01", p1.Name)
	assert.Equal(t, "P02", p2.Name)
	assert.Equal(t, 108.0, p1.H)
	assert.Equal(t, 108.0, p2.H)
	assert.Equal(t, 119.0, p1.W)
	assert.Equal(t, 120.0, p2.W)
	// Widths plus the seam cover the wall to within one snap increment.
	covered := p1.W + cfg.Constraints.PanelSpacing + p2.W
	assert.InDelta(t, 240, covered, cfg.Constraints.DimensionIncrement)
}

// With a finer snap grid the same wall is covered exactly.
func TestPlainWallExactCoverageFineIncrement(t *testing.T) {
	cfg := model.VerticalPreset()
	cfg.Constraints.DimensionIncrement = 0.125
	e := New(cfg, nil)

	res := e.ProcessWall(model.Wall{ID: "W1", Width: 240, Height: 108}, nil)

	require.Len(t, res.Panels, 2)
	assert.Equal(t, 119.875, res.Panels[0].W)
	assert.Equal(t, 120.0, res.Panels[1].W)
	assert.Equal(t, 240.0, res.Panels[1].Right())
}

// A standard man door is bridged by a single panel carrying the
// door's clearance box as a cutout.
func TestDoorBridging(t *testing.T) {
	cfg := model.VerticalPreset()
	e := New(cfg, nil)
	d := door("d1", 100, 0, 36, 84, cfg)

	res := e.ProcessWall(model.Wall{ID: "W1", Width: 240, Height: 108}, []model.Opening{d})

	require.Len(t, res.Panels, 2)
	bridge := res.Panels[0]
	assert.Equal(t, 0.0, bridge.X)
	assert.Equal(t, 142.0, bridge.W, "bridge spans cursor to the door's right clearance zone")
	assert.Equal(t, 108.0, bridge.H)

	require.Len(t, bridge.Cutouts, 1)
	co := bridge.Cutouts[0]
	assert.Equal(t, "d1", co.ID)
	assert.Equal(t, "Door", co.Type)
	// Cutout is the clearance box in panel-local coordinates:
	// jamb 6" each side, sill clamped at the wall base, header 8".
	assert.Equal(t, 94.0, co.X)
	assert.Equal(t, 0.0, co.Y)
	assert.Equal(t, 48.0, co.W)
	assert.Equal(t, 92.0, co.H)

	assert.Empty(t, res.Panels[1].Cutouts)
}

// In a band taller than ShortMax the band max width drops to ShortMax,
// so a moderately wide opening cannot be bridged and gets hopped.
func TestTallBandHopsWideOpening(t *testing.T) {
	cfg := model.VerticalPreset()
	e := New(cfg, nil)
	// 12' tall wall: band height 144 > ShortMax 138, so panels in the
	// band are capped at 138" wide. The window needs a 144" bridge
	// from x=0 and cannot be spanned.
	w := window("w1", 100, 40, 40, 40, cfg)

	res := e.ProcessWall(model.Wall{ID: "W1", Width: 300, Height: 144}, []model.Opening{w})
	require.NotEmpty(t, res.Panels)

	// No panel crosses the window's clearance zone horizontally at
	// the window's height.
	co := Classify([]model.Opening{w}, cfg)[0]
	for _, p := range res.Panels {
		if p.Y >= co.TopZone() || p.Top() <= co.BottomZone() {
			continue
		}
		crosses := p.X < co.LeftZone() && p.Right() > co.RightZone()
		straddlesLeft := p.X < co.LeftZone()-seamTol && p.Right() > co.LeftZone()+seamTol
		assert.False(t, crosses, "panel %s should not span the unbridgeable window", p.Name)
		assert.False(t, straddlesLeft && p.Right() < co.RightZone(), "panel %s ends inside the clearance zone", p.Name)
	}
}

// Horizontal orientation stacks bands bottom-up: a 200" tall wall gets
// a full ShortMax band and a snapped remainder band.
func TestHorizontalBands(t *testing.T) {
	cfg := model.HorizontalPreset()
	e := New(cfg, nil)

	res := e.ProcessWall(model.Wall{ID: "W1", Width: 240, Height: 200}, nil)

	require.Len(t, res.Panels, 2)
	assert.Equal(t, 0.0, res.Panels[0].Y)
	assert.Equal(t, 138.0, res.Panels[0].H)
	assert.Equal(t, 240.0, res.Panels[0].W)
	assert.Equal(t, 138.125, res.Panels[1].Y)
	assert.Equal(t, 61.0, res.Panels[1].H)
	assert.Equal(t, 240.0, res.Panels[1].W)
}

// Every placed panel respects the fabrication constraints.
func TestPlacedPanelsAreValid(t *testing.T) {
	cfg := model.VerticalPreset()
	e := New(cfg, nil)
	openings := []model.Opening{
		door("d1", 60, 0, 36, 84, cfg),
		window("w1", 180, 40, 30, 40, cfg),
		storefront("sf1", 300, 0, 150, 96, cfg),
	}

	res := e.ProcessWall(model.Wall{ID: "W1", Width: 600, Height: 120}, openings)

	require.NotEmpty(t, res.Panels)
	for _, p := range res.Panels {
		assert.True(t, cfg.Constraints.IsValidPanel(p.W, p.H),
			"panel %s %gx%g violates constraints", p.Name, p.W, p.H)
	}
}
