// mazegen generates perfect mazes with a randomized depth-first backtracker
// and renders them to PNG.
//
// Usage:
//
//	mazegen [flags]          - Generate a maze and write it to maze.png
//	mazegen preview          - Print the maze to the terminal
//	mazegen view             - Browse mazes interactively
//	mazegen history          - Show previously generated mazes
//	mazegen serve            - Start SSH server for remote viewing
//
// Global flags:
//
//	--width, --height         - Maze size in cells (default: 100x75)
//	--cellw, --cellh          - Cell interior size in pixels (default: 1)
//	--wallw, --wallh          - Wall thickness in pixels (default: 1)
//	--seed <value>            - RNG seed for reproducible mazes
//	--config <path>           - Custom config YAML
//	--db <path>               - History database (default: ~/.mazegen/history.db)
//	--verbose                 - Dump the grid and log debug output
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazegen/internal/config"
	"github.com/vovakirdan/mazegen/internal/generate"
	"github.com/vovakirdan/mazegen/internal/maze"
	"github.com/vovakirdan/mazegen/internal/storage"
)

var (
	// Global flags
	flagWidth   int
	flagHeight  int
	flagCellW   int
	flagCellH   int
	flagWallW   int
	flagWallH   int
	flagSeed    int64
	flagConfig  string
	flagDBPath  string
	flagVerbose bool

	// Root command flags
	flagOut string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "mazegen",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazegen",
	Short: "Generate perfect mazes as PNG images",
	Long: `mazegen carves a perfect maze (exactly one path between any two cells)
with a randomized depth-first backtracker and writes it as a PNG.

Available commands:
  preview  - Print a maze in the terminal
  view     - Interactive maze viewer
  history  - List previously generated mazes
  serve    - Start SSH server for remote viewing

Examples:
  mazegen
  mazegen --width 40 --height 30 --cellw 8 --cellh 8 --wallw 2 --wallh 2
  mazegen --seed 42 --out small.png --verbose
  mazegen preview --width 20 --height 10`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 100, "Maze width in cells")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 75, "Maze height in cells")
	rootCmd.PersistentFlags().IntVar(&flagCellW, "cellw", 1, "Cell width in pixels")
	rootCmd.PersistentFlags().IntVar(&flagCellH, "cellh", 1, "Cell height in pixels")
	rootCmd.PersistentFlags().IntVar(&flagWallW, "wallw", 1, "Wall width in pixels")
	rootCmd.PersistentFlags().IntVar(&flagWallH, "wallh", 1, "Wall height in pixels")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazegen/history.db", "Path to history database")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Print the grid dump and debug logs")

	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "maze.png", "Output PNG path")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Reject bad input before the history database is created.
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := cfg.Palette(); err != nil {
		return err
	}

	opts := generate.Options{
		Config: cfg,
		Logger: logger,
	}
	if flagVerbose {
		opts.Dump = cmd.OutOrStdout()
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
		opts.Recorder = store
	}

	_, err = generate.Run(opts)
	return err
}

// loadConfig loads the config file and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Grid.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Grid.Height = flagHeight
	}
	if flags.Changed("cellw") {
		cfg.Cell.Width = flagCellW
	}
	if flags.Changed("cellh") {
		cfg.Cell.Height = flagCellH
	}
	if flags.Changed("wallw") {
		cfg.Wall.Width = flagWallW
	}
	if flags.Changed("wallh") {
		cfg.Wall.Height = flagWallH
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if f := flags.Lookup("out"); f != nil && f.Changed {
		cfg.Output = flagOut
	}

	logger.Debug("config loaded",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"cell", fmt.Sprintf("%dx%d", cfg.Cell.Width, cfg.Cell.Height),
		"wall", fmt.Sprintf("%dx%d", cfg.Wall.Width, cfg.Wall.Height),
		"output", cfg.Output,
	)
	return cfg, nil
}

// openStore opens the history database. History is optional: failures are
// logged and nil is returned.
func openStore(cfg config.Config) *storage.Store {
	if !cfg.History {
		return nil
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", cfg.DBPath, "error", err)
		return nil
	}
	return store
}

// reportError prints the boundary message. In verbose mode the full chain of
// wrapped errors is logged as well.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Failed with error:\n%s\n", err)
	if !flagVerbose {
		return
	}

	var dimErr *maze.DimensionError
	if errors.As(err, &dimErr) {
		logger.Debug("invalid dimension", "name", dimErr.Name, "value", dimErr.Value, "min", dimErr.Min)
	}
	for depth, e := 0, err; e != nil; depth, e = depth+1, errors.Unwrap(e) {
		logger.Debug("error chain", "depth", depth, "type", fmt.Sprintf("%T", e), "error", e.Error())
	}
}
