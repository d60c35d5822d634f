package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazegen/internal/config"
	"github.com/vovakirdan/mazegen/internal/core"
	"github.com/vovakirdan/mazegen/internal/maze"
	"github.com/vovakirdan/mazegen/internal/platform/tui"
	"github.com/vovakirdan/mazegen/internal/render"
)

var flagCompact bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a maze in the terminal",
	Long: `Generate a maze and print it with block characters instead of writing a PNG.

Without --width/--height the maze is sized to fill the terminal.
Cells are two characters wide so they look square; --compact uses one.

Examples:
  mazegen preview
  mazegen preview --width 20 --height 10 --seed 42
  mazegen preview --compact`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&flagCompact, "compact", false, "Use one character per cell and wall")
	viewCmd.Flags().BoolVar(&flagCompact, "compact", false, "Use one character per cell and wall")
}

// textOptions returns the character geometry for terminal rendering.
func textOptions() render.TextOptions {
	opt := render.DefaultTextOptions()
	if flagCompact {
		opt.Geometry = render.DefaultGeometry()
	}
	return opt
}

// terminalSize returns the size of the controlling terminal, or 80x24.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// mazeSize returns the maze size to show: explicit flags or config values win,
// otherwise the maze is fitted to the terminal.
func mazeSize(cmd *cobra.Command, cfg config.Config, rt core.RuntimeConfig, opt render.TextOptions, reservedRows int) (w, h int) {
	g := opt.Geometry
	w, h = rt.MazeFit(g.CellWidth, g.CellHeight, g.WallWidth, g.WallHeight, reservedRows)
	if cmd.Flags().Changed("width") || flagConfig != "" {
		w = cfg.Grid.Width
	}
	if cmd.Flags().Changed("height") || flagConfig != "" {
		h = cfg.Grid.Height
	}
	return w, h
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	rt := core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: cfg.Seed}
	opt := textOptions()
	w, h := mazeSize(cmd, cfg, rt, opt, 2)

	seed := core.ResolveSeed(rt.Seed)
	grid, stats, err := maze.Generate(w, h, core.NewRNG(uint64(seed)))
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	out := cmd.OutOrStdout()
	if flagVerbose {
		fmt.Fprint(out, grid.String())
	}

	screen, err := render.Text(grid, opt)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	// Plain text when piped, styled when shown in a terminal.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(out, tui.RenderScreen(screen))
	} else {
		fmt.Fprintln(out, screen.String())
	}
	fmt.Fprintf(out, "seed %d  %dx%d  %d passages\n", seed, w, h, stats.Passages)
	return nil
}
