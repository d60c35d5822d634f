// Package generate runs the full maze pipeline: validate the configuration,
// carve the grid, render it and write the PNG, then record the run.
package generate

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazegen/internal/config"
	"github.com/vovakirdan/mazegen/internal/core"
	"github.com/vovakirdan/mazegen/internal/maze"
	"github.com/vovakirdan/mazegen/internal/render"
	"github.com/vovakirdan/mazegen/internal/storage"
)

// Recorder persists finished runs. *storage.Store implements it.
type Recorder interface {
	SaveRun(run storage.Run) (string, error)
}

var _ Recorder = (*storage.Store)(nil)

// Options controls one pipeline invocation.
type Options struct {
	Config   config.Config
	Dump     io.Writer   // Receives the grid dump before rendering; nil disables it
	Logger   *log.Logger // nil uses log.Default()
	Recorder Recorder    // nil disables history
}

// Result describes a finished run.
type Result struct {
	RunID    string
	Seed     int64
	Grid     *maze.Grid
	Stats    maze.Stats
	Output   string
	Width    int // Image width in pixels
	Height   int // Image height in pixels
	Duration time.Duration
}

// Run validates opts.Config and, only if it is valid, generates, renders and
// saves a maze. Nothing is written to disk when validation fails.
func Run(opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	cfg := opts.Config

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	seed := core.ResolveSeed(cfg.Seed)
	logger.Debug("generating maze", "width", cfg.Grid.Width, "height", cfg.Grid.Height, "seed", seed)

	grid, stats, err := maze.Generate(cfg.Grid.Width, cfg.Grid.Height, core.NewRNG(uint64(seed)))
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	logger.Debug("maze carved",
		"steps", stats.Steps,
		"passages", stats.Passages,
		"backtracks", stats.Backtracks,
		"max_depth", stats.MaxDepth,
	)
	if logger.GetLevel() <= log.DebugLevel {
		rep := maze.Analyze(grid)
		logger.Debug("maze analysis",
			"cells", rep.Cells,
			"reachable", rep.Reachable,
			"perfect", rep.Perfect(),
		)
	}

	if opts.Dump != nil {
		if _, err := io.WriteString(opts.Dump, grid.String()); err != nil {
			return nil, fmt.Errorf("generate: cannot write grid dump: %w", err)
		}
	}

	im, err := render.Raster(grid, cfg.Geometry(), pal)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	if err := im.Save(cfg.Output); err != nil {
		return nil, err
	}

	b := im.Bounds()
	res := &Result{
		Seed:     seed,
		Grid:     grid,
		Stats:    stats,
		Output:   cfg.Output,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Duration: time.Since(start),
	}
	logger.Info("maze saved", "path", res.Output, "size", fmt.Sprintf("%dx%d", res.Width, res.Height), "seed", seed)

	if opts.Recorder != nil {
		id, err := opts.Recorder.SaveRun(storage.Run{
			Seed:       seed,
			Width:      cfg.Grid.Width,
			Height:     cfg.Grid.Height,
			CellWidth:  cfg.Cell.Width,
			CellHeight: cfg.Cell.Height,
			WallWidth:  cfg.Wall.Width,
			WallHeight: cfg.Wall.Height,
			Passages:   stats.Passages,
			Output:     cfg.Output,
			DurationMs: res.Duration.Milliseconds(),
		})
		if err != nil {
			// History is best-effort; the image is already on disk.
			logger.Warn("could not record run", "error", err)
		} else {
			res.RunID = id
		}
	}

	return res, nil
}
