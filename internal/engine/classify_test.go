package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelwright/panelcut/internal/model"
)

func door(id string, x, y, w, h float64, cfg model.Config) model.Opening {
	return model.Opening{
		ID: id, Type: model.OpeningDoor,
		X: x, Y: y, W: w, H: h,
		Clearance: cfg.ClearanceFor(model.OpeningDoor),
	}
}

func window(id string, x, y, w, h float64, cfg model.Config) model.Opening {
	return model.Opening{
		ID: id, Type: model.OpeningWindow,
		X: x, Y: y, W: w, H: h,
		Clearance: cfg.ClearanceFor(model.OpeningWindow),
	}
}

func storefront(id string, x, y, w, h float64, cfg model.Config) model.Opening {
	return model.Opening{
		ID: id, Type: model.OpeningStorefront,
		X: x, Y: y, W: w, H: h,
		Clearance: cfg.ClearanceFor(model.OpeningStorefront),
	}
}

func TestClassifySpanRule(t *testing.T) {
	cfg := model.VerticalPreset()

	// 36" door + 6" jamb each side = 48" span, bridgeable.
	out := Classify([]model.Opening{door("d1", 100, 0, 36, 84, cfg)}, cfg)
	require.Len(t, out, 1)
	assert.Equal(t, KindCutout, out[0].Kind)
	assert.Equal(t, cfg.DoorClearances, out[0].Effective)

	// 130" door + 12" of jamb = 142" span, over the 138" panel cap.
	out = Classify([]model.Opening{door("d2", 50, 0, 130, 84, cfg)}, cfg)
	require.Len(t, out, 1)
	assert.Equal(t, KindBlocker, out[0].Kind)
	// Blockers keep only a panel-spacing gap on all sides.
	assert.Equal(t, model.UniformClearance(cfg.Constraints.PanelSpacing), out[0].Effective)
}

func TestClassifyStorefrontPolicy(t *testing.T) {
	cfg := model.VerticalPreset()

	// A narrow storefront would be bridgeable by span, but the policy
	// forces it to block.
	sf := storefront("sf1", 40, 0, 60, 90, cfg)
	out := Classify([]model.Opening{sf}, cfg)
	require.Len(t, out, 1)
	assert.Equal(t, KindBlocker, out[0].Kind)

	cfg.Policy.StorefrontAlwaysBlocks = false
	out = Classify([]model.Opening{sf}, cfg)
	assert.Equal(t, KindCutout, out[0].Kind)
	assert.Equal(t, cfg.StorefrontClearances, out[0].Effective)
}

func TestClassifyIsPureAndSorted(t *testing.T) {
	cfg := model.VerticalPreset()
	in := []model.Opening{
		window("w2", 180, 40, 30, 40, cfg),
		door("d1", 20, 0, 36, 84, cfg),
	}
	orig := make([]model.Opening, len(in))
	copy(orig, in)

	first := Classify(in, cfg)
	second := Classify(in, cfg)

	assert.Equal(t, first, second)
	assert.Equal(t, orig, in, "input openings must not be mutated")
	require.Len(t, first, 2)
	assert.Equal(t, "d1", first[0].ID, "output sorted by x")
	assert.Equal(t, "w2", first[1].ID)
}

func TestClearanceZones_FarEdgeUnclamped(t *testing.T) {
	cfg := model.VerticalPreset()

	// Door flush against the wall start: left and bottom zones clamp
	// to zero.
	left := Classify([]model.Opening{door("d1", 2, 0, 36, 84, cfg)}, cfg)[0]
	assert.Equal(t, 0.0, left.LeftZone())
	assert.Equal(t, 0.0, left.BottomZone())

	// Door hard against a 240" wall's far edge: the right zone extends
	// past the wall so placement stops short of it.
	right := Classify([]model.Opening{door("d2", 204, 20, 36, 84, cfg)}, cfg)[0]
	assert.Equal(t, 246.0, right.RightZone())
	assert.Greater(t, right.RightZone(), 240.0)
	assert.Equal(t, 112.0, right.TopZone())
}
