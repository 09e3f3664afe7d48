// Package engine lays out fabricable panels on rectangular wall faces.
//
// Openings are first classified as cutouts (spanned by a single panel
// carrying a hole) or blockers (splitting the wall into independent
// regions). Each region is tiled by a greedy cursor that bridges
// cutouts where a single panel fits and otherwise hops over them; a
// gap-fill pass then tiles the strips above and below openings, and a
// seam pass keeps joints off small openings.
package engine

import (
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/panelwright/panelcut/internal/model"
)

// Engine runs the panel layout for one configuration.
type Engine struct {
	cfg model.Config
	log *zap.Logger
}

// New builds an engine. A nil logger disables logging.
func New(cfg model.Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{cfg: cfg, log: log}
}

func panelName(counter int) string {
	return fmt.Sprintf("P%02d", counter)
}

// ProcessWall lays out panels on a single wall. It never fails: a wall
// with no placeable area yields an empty panel list, and degenerate
// geometry is skipped with a log entry. Panel names P01, P02, ... are
// assigned in placement order, restarting on each wall.
func (e *Engine) ProcessWall(wall model.Wall, openings []model.Opening) model.WallResult {
	cons := e.cfg.Constraints

	classified := Classify(openings, e.cfg)
	regions := SplitRegions(wall.Width, wall.Height, classified, cons.MinWidth)

	e.log.Debug("processing wall",
		zap.String("wall", wall.ID),
		zap.Float64("width", wall.Width),
		zap.Float64("height", wall.Height),
		zap.Int("openings", len(openings)),
		zap.Int("regions", len(regions)))

	var panels []model.Panel
	counter := 1

	for _, r := range regions {
		panels, counter = e.placeRegion(r, wall.ID, panels, counter)

		// Fill the strips below and above each opening the placer
		// hopped over instead of bridging.
		for _, o := range r.Openings {
			if !o.Type.StorefrontLike() && o.BottomZone() <= 0 && o.TopZone() >= wall.Height {
				continue
			}
			if o.BottomZone() > 0 && o.BottomZone() >= cons.MinHeight {
				panels, counter = e.fillGap(gapSpan{
					regionXStart: r.XStart, regionXEnd: r.XEnd,
					yStart: 0, yEnd: o.BottomZone(),
					openLeft: o.LeftZone(), openRight: o.RightZone(),
				}, classified, wall.ID, panels, counter)
			}
			if o.TopZone() < wall.Height && wall.Height-o.TopZone() >= cons.MinHeight {
				panels, counter = e.fillGap(gapSpan{
					regionXStart: r.XStart, regionXEnd: r.XEnd,
					yStart: o.TopZone(), yEnd: wall.Height,
					openLeft: o.LeftZone(), openRight: o.RightZone(),
					fullSpan: o.Type.StorefrontLike(),
				}, classified, wall.ID, panels, counter)
			}
		}

		var idx []int
		for i, p := range panels {
			if r.XStart <= p.X && p.X < r.XEnd {
				idx = append(idx, i)
			}
		}
		e.adjustSeams(panels, idx, r.Openings, wall.ID)
	}

	// Blockers are not part of any region, so the strips below and
	// above their own span get a dedicated fill pass.
	for _, b := range blockersOf(classified) {
		if b.BottomZone() > 0 && b.BottomZone() >= cons.MinHeight {
			panels, counter = e.fillGap(gapSpan{
				regionXStart: b.LeftZone(), regionXEnd: b.RightZone(),
				yStart: 0, yEnd: b.BottomZone(),
				openLeft: b.LeftZone(), openRight: b.RightZone(),
				fullSpan: true,
			}, classified, wall.ID, panels, counter)
		}
		if b.TopZone() < wall.Height && wall.Height-b.TopZone() >= cons.MinHeight {
			panels, counter = e.fillGap(gapSpan{
				regionXStart: b.LeftZone(), regionXEnd: b.RightZone(),
				yStart: b.TopZone(), yEnd: wall.Height,
				openLeft: b.LeftZone(), openRight: b.RightZone(),
				fullSpan: true,
			}, classified, wall.ID, panels, counter)
		}
	}

	e.log.Info("wall layout complete",
		zap.String("wall", wall.ID),
		zap.Int("panels", len(panels)))

	return model.WallResult{Wall: wall, Panels: panels}
}

// WallInput pairs a wall with its openings for batch processing.
type WallInput struct {
	Wall     model.Wall
	Openings []model.Opening
}

// ProcessWalls lays out every wall using a bounded pool of workers
// (default NumCPU) and returns results in input order. Walls share no
// state, so identical inputs always produce identical output.
func (e *Engine) ProcessWalls(inputs []WallInput, workers int) model.LayoutResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]model.WallResult, len(inputs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, in := range inputs {
		wg.Add(1)
		go func(i int, in WallInput) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = e.ProcessWall(in.Wall, in.Openings)
		}(i, in)
	}
	wg.Wait()
	return model.LayoutResult{Walls: results}
}
