package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/panelwright/panelcut/internal/engine"
	"github.com/panelwright/panelcut/internal/export"
	"github.com/panelwright/panelcut/internal/importer"
	"github.com/panelwright/panelcut/internal/model"
	"github.com/panelwright/panelcut/internal/project"
)

type optimizeOptions struct {
	wallsPath    string
	openingsPath string
	configPath   string
	orientation  string
	outDir       string
	workers      int
	withPDF      bool
	withDXF      bool
	withExcel    bool
	withLabels   bool
	withJSON     bool
}

func newOptimizeCmd(verbose *bool) *cobra.Command {
	opts := &optimizeOptions{}

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Run the panel layout optimizer on wall and opening schedules",
		Long:  "Imports a wall schedule and an optional opening schedule (CSV or Excel),\nplaces panels on every wall and writes the placement CSV plus any\nrequested fabrication exports into the output directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(*verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Sync()
			return runOptimize(cmd, opts, logger)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.wallsPath, "walls", "", "wall schedule file, .csv or .xlsx (required)")
	f.StringVar(&opts.openingsPath, "openings", "", "opening schedule file, .csv or .xlsx")
	f.StringVarP(&opts.configPath, "config", "c", "", "optimizer config file (default: saved user config)")
	f.StringVar(&opts.orientation, "orientation", "", "panel orientation preset, vertical or horizontal")
	f.StringVarP(&opts.outDir, "out", "o", "output", "output directory")
	f.IntVar(&opts.workers, "workers", 0, "walls processed in parallel (default: number of CPUs)")
	f.BoolVar(&opts.withPDF, "pdf", false, "write layout drawings PDF")
	f.BoolVar(&opts.withDXF, "dxf", false, "write per-wall fabrication DXFs")
	f.BoolVar(&opts.withExcel, "excel", false, "write panel schedule workbook")
	f.BoolVar(&opts.withLabels, "labels", false, "write QR panel labels PDF")
	f.BoolVar(&opts.withJSON, "json", false, "write the full layout result as JSON")
	cmd.MarkFlagRequired("walls")

	return cmd
}

func runOptimize(cmd *cobra.Command, opts *optimizeOptions, logger *zap.Logger) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	walls := importWalls(opts.wallsPath)
	logImportIssues(logger, "walls", walls.Errors, walls.Warnings)
	if len(walls.Walls) == 0 {
		return fmt.Errorf("no usable walls in %s", opts.wallsPath)
	}

	openingsByWall := map[string][]model.Opening{}
	if opts.openingsPath != "" {
		openings := importOpenings(opts.openingsPath, cfg)
		logImportIssues(logger, "openings", openings.Errors, openings.Warnings)
		openingsByWall = openings.ByWall
	}

	inputs := make([]engine.WallInput, len(walls.Walls))
	for i, w := range walls.Walls {
		inputs[i] = engine.WallInput{Wall: w, Openings: openingsByWall[w.ID]}
	}

	logger.Info("optimizing layout",
		zap.Int("walls", len(inputs)),
		zap.String("orientation", string(cfg.Orientation)))
	layout := engine.New(cfg, logger).ProcessWalls(inputs, opts.workers)

	if err := os.MkdirAll(opts.outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := writeOutputs(opts, cfg, layout, openingsByWall, logger); err != nil {
		return err
	}

	printSummary(cmd, layout)
	return nil
}

// resolveConfig picks the run configuration: an explicit config file
// wins, then the saved user config, then the orientation preset. An
// orientation flag on top of a loaded config only flips the direction.
func resolveConfig(opts *optimizeOptions) (model.Config, error) {
	orientation := model.ParseOrientation(opts.orientation)

	if opts.configPath != "" {
		cfg, err := project.LoadConfig(opts.configPath)
		if err != nil {
			return model.Config{}, fmt.Errorf("load config: %w", err)
		}
		if opts.orientation != "" {
			cfg.Orientation = orientation
		}
		return cfg, nil
	}

	path, err := project.DefaultConfigPath()
	if err != nil {
		return model.PresetFor(orientation), nil
	}
	cfg, err := project.LoadConfigOrDefault(path, orientation)
	if err != nil {
		return model.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.orientation != "" {
		cfg.Orientation = orientation
	}
	return cfg, nil
}

func importWalls(path string) importer.WallsResult {
	if isExcelFile(path) {
		return importer.ImportWallsExcel(path)
	}
	return importer.ImportWallsCSV(path)
}

func importOpenings(path string, cfg model.Config) importer.OpeningsResult {
	if isExcelFile(path) {
		return importer.ImportOpeningsExcel(path, cfg)
	}
	return importer.ImportOpeningsCSV(path, cfg)
}

func isExcelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".xlsx" || ext == ".xlsm"
}

func logImportIssues(logger *zap.Logger, schedule string, errors, warnings []string) {
	for _, e := range errors {
		logger.Error("import failed", zap.String("schedule", schedule), zap.String("reason", e))
	}
	for _, w := range warnings {
		logger.Warn("import issue", zap.String("schedule", schedule), zap.String("reason", w))
	}
}

func writeOutputs(opts *optimizeOptions, cfg model.Config, layout model.LayoutResult, openingsByWall map[string][]model.Opening, logger *zap.Logger) error {
	placements := filepath.Join(opts.outDir, "optimized_panel_placement.csv")
	if err := export.WritePlacementsCSV(placements, layout); err != nil {
		return fmt.Errorf("write placement CSV: %w", err)
	}
	logger.Info("wrote placements", zap.String("path", placements))

	if err := project.WriteUsedConfig(opts.outDir, cfg); err != nil {
		return fmt.Errorf("write config snapshot: %w", err)
	}

	if opts.withPDF {
		path := filepath.Join(opts.outDir, "panel_layout.pdf")
		if err := export.ExportPDF(path, layout, openingsByWall); err != nil {
			return fmt.Errorf("write layout PDF: %w", err)
		}
		logger.Info("wrote drawings", zap.String("path", path))
	}
	if opts.withExcel {
		path := filepath.Join(opts.outDir, "panel_schedule.xlsx")
		if err := export.ExportExcel(path, layout); err != nil {
			return fmt.Errorf("write panel workbook: %w", err)
		}
		logger.Info("wrote workbook", zap.String("path", path))
	}
	if opts.withLabels {
		path := filepath.Join(opts.outDir, "panel_labels.pdf")
		if err := export.ExportLabels(path, layout); err != nil {
			return fmt.Errorf("write labels PDF: %w", err)
		}
		logger.Info("wrote labels", zap.String("path", path))
	}
	if opts.withJSON {
		path := filepath.Join(opts.outDir, "layout_result.json")
		if err := project.SaveLayout(path, layout); err != nil {
			return fmt.Errorf("write layout JSON: %w", err)
		}
		logger.Info("wrote layout json", zap.String("path", path))
	}
	if opts.withDXF {
		dir := filepath.Join(opts.outDir, "dxf")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create dxf directory: %w", err)
		}
		if err := export.ExportDXF(dir, layout); err != nil {
			return fmt.Errorf("write DXFs: %w", err)
		}
		logger.Info("wrote dxf files", zap.String("dir", dir))
	}
	return nil
}

func printSummary(cmd *cobra.Command, layout model.LayoutResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Optimized %d wall(s), %d panel(s) total\n", len(layout.Walls), layout.TotalPanels())
	for _, w := range layout.Walls {
		fmt.Fprintf(out, "  %-12s %3d panels, %5.1f%% coverage\n",
			w.Wall.ID, len(w.Panels), w.Coverage())
	}
}
