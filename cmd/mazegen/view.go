package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazegen/internal/config"
	"github.com/vovakirdan/mazegen/internal/core"
	"github.com/vovakirdan/mazegen/internal/platform/tui"
	"github.com/vovakirdan/mazegen/internal/storage"
)

var (
	flagSaveDir string
	flagAnimate bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse mazes interactively",
	Long: `Open an interactive maze viewer.

Controls:
  n/Space     - New maze
  p           - Previous maze
  a           - Animate carving (press again to finish)
  s           - Save the current maze as PNG
  Arrows/hjkl - Scroll large mazes
  ?           - Toggle help
  q/Esc       - Quit

Saved mazes use the configured cell and wall sizes and are recorded in history.

Examples:
  mazegen view
  mazegen view --animate
  mazegen view --width 60 --height 40 --save-dir ./mazes`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagSaveDir, "save-dir", ".", "Directory for PNGs saved from the viewer")
	viewCmd.Flags().BoolVar(&flagAnimate, "animate", false, "Animate the first maze")
}

func runView(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	fixed := cmd.Flags().Changed("width") || cmd.Flags().Changed("height") || flagConfig != ""
	return openViewer(cfg, store, cfg.Seed, fixed)
}

// openViewer runs the interactive viewer starting at seed. With fixedSize the
// maze keeps cfg.Grid's size, otherwise it is fitted to the terminal.
func openViewer(cfg config.Config, store *storage.Store, seed int64, fixedSize bool) error {
	width, height := terminalSize()

	vc := tui.DefaultViewerConfig()
	vc.Runtime = core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: seed}
	vc.Text = textOptions()
	vc.Base = cfg
	vc.Logger = logger
	vc.SaveDir = flagSaveDir
	vc.Animate = flagAnimate
	if store != nil {
		vc.Recorder = store
	}
	if fixedSize {
		vc.Width, vc.Height = cfg.Grid.Width, cfg.Grid.Height
	}

	logger.Debug("opening viewer", "seed", seed, "screen", width, "rows", height)
	return tui.RunViewer(vc)
}
