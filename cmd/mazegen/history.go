package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazegen/internal/platform/tui"
	"github.com/vovakirdan/mazegen/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagTUI   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously generated mazes",
	Long: `List the most recent mazes recorded in the history database.

Every seed is recorded, so any maze can be regenerated with
  mazegen --seed <seed> --width <w> --height <h>

With --tui the history opens in a table browser; pressing enter opens the
selected maze in the viewer.

Examples:
  mazegen history
  mazegen history --limit 50
  mazegen history --tui
  mazegen history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	historyCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse history interactively")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearRuns()
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d runs.\n", n)
		return nil
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}

	if flagTUI {
		width, height := terminalSize()
		selected, err := tui.RunHistory(runs, width, height)
		if err != nil {
			return err
		}
		if selected == nil {
			return nil
		}
		cfg.Grid.Width, cfg.Grid.Height = selected.Width, selected.Height
		cfg.Cell.Width, cfg.Cell.Height = selected.CellWidth, selected.CellHeight
		cfg.Wall.Width, cfg.Wall.Height = selected.WallWidth, selected.WallHeight
		return openViewer(cfg, store, selected.Seed, true)
	}

	printHistory(runs)

	sum, err := store.Summarize()
	if err == nil && sum.Runs > 0 {
		fmt.Println()
		fmt.Printf("Total: %d runs, %d cells, largest %dx%d, last %s\n",
			sum.Runs, sum.TotalCells, sum.LargestW, sum.LargestH,
			sum.LastRun.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// printHistory prints runs as a plain table.
func printHistory(runs []storage.Run) {
	fmt.Println("Maze History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No mazes recorded yet.")
		fmt.Println()
		fmt.Println("Run 'mazegen' to generate the first one!")
		return
	}

	fmt.Printf("  %-16s  %-9s  %-20s  %-7s  %s\n", "Date", "Size", "Seed", "Time", "Output")
	fmt.Printf("  %-16s  %-9s  %-20s  %-7s  %s\n", "----", "----", "----", "----", "------")

	for _, r := range runs {
		fmt.Printf("  %-16s  %-9s  %-20d  %-7s  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Seed,
			fmt.Sprintf("%dms", r.DurationMs),
			r.Output,
		)
	}
}
