package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelwright/panelcut/internal/model"
)

// A blocking storefront splits the wall into flanking regions and gets
// its own full-span fill above the glazing.
func TestStorefrontFlankedAndFilledAbove(t *testing.T) {
	cfg := model.VerticalPreset()
	e := New(cfg, nil)
	sf := storefront("sf1", 50, 0, 200, 60, cfg)

	res := e.ProcessWall(model.Wall{ID: "W1", Width: 400, Height: 108}, []model.Opening{sf})

	classified := Classify([]model.Opening{sf}, cfg)
	require.Equal(t, KindBlocker, classified[0].Kind)
	blocker := classified[0]

	// Panels land on both sides of the storefront and above it, and
	// none enter its clearance zone.
	var leftOf, rightOf, above int
	for _, p := range res.Panels {
		assert.False(t, intrudesBlocker(p, classified),
			"panel %s intrudes the storefront clearance zone", p.Name)
		switch {
		case p.Right() <= blocker.LeftZone():
			leftOf++
		case p.X >= blocker.RightZone():
			rightOf++
		case p.Y >= blocker.TopZone():
			above++
		}
	}
	assert.Greater(t, leftOf, 0, "expected panels left of the storefront")
	assert.Greater(t, rightOf, 0, "expected panels right of the storefront")
	assert.Greater(t, above, 0, "expected fill panels above the storefront")

	// The fill above spans the storefront's own width, inset by the
	// panel seam.
	for _, p := range res.Panels {
		if p.Y >= blocker.TopZone() {
			assert.Equal(t, blocker.LeftZone()+cfg.Constraints.PanelSpacing, p.X)
			assert.Equal(t, 200.0, p.W)
		}
	}
}

// The fill band is inset by the panel seam and widths land on the
// snap grid.
func TestGapFillInsetAndSnapped(t *testing.T) {
	cfg := model.VerticalPreset()
	e := New(cfg, nil)

	var panels []model.Panel
	panels, counter := e.fillGap(gapSpan{
		regionXStart: 0, regionXEnd: 160.25,
		yStart: 0, yEnd: 40,
		fullSpan: true,
	}, nil, "W1", panels, 1)

	require.Len(t, panels, 1)
	assert.Equal(t, 2, counter)
	assert.Equal(t, 0.125, panels[0].X)
	assert.Equal(t, 160.0, panels[0].W)
	assert.Equal(t, 40.0, panels[0].H)
}

// Gaps below the panel minimums produce nothing.
func TestGapFillSkipsDegenerateGaps(t *testing.T) {
	cfg := model.VerticalPreset()
	e := New(cfg, nil)

	var panels []model.Panel
	panels, counter := e.fillGap(gapSpan{
		regionXStart: 0, regionXEnd: 20, // narrower than MinWidth
		yStart: 0, yEnd: 100,
		fullSpan: true,
	}, nil, "W1", panels, 1)
	assert.Empty(t, panels)
	assert.Equal(t, 1, counter)

	panels, counter = e.fillGap(gapSpan{
		regionXStart: 0, regionXEnd: 200,
		yStart: 0, yEnd: 20, // shorter than MinHeight
		fullSpan: true,
	}, nil, "W1", panels, counter)
	assert.Empty(t, panels)
	assert.Equal(t, 1, counter)
}

// Fill rows stop rather than overlap panels already placed.
func TestGapFillStopsAtExistingPanels(t *testing.T) {
	cfg := model.VerticalPreset()
	e := New(cfg, nil)

	placed := []model.Panel{{Name: "P01", X: 100, Y: 0, W: 100, H: 100}}
	out, counter := e.fillGap(gapSpan{
		regionXStart: 0, regionXEnd: 300,
		yStart: 0, yEnd: 90,
		fullSpan: true,
	}, nil, "W1", placed, 2)

	// The first candidate spans the whole band and collides with the
	// placed panel, so the row stops with nothing added.
	require.Len(t, out, 1)
	assert.Equal(t, 2, counter)
	assert.Equal(t, "P01", out[0].Name)
}
