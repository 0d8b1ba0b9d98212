package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagLimit       int
	flagPlayer      string
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs.

Examples:
  runner scores
  runner scores --limit 20
  runner scores --player alice
  runner scores -i          # Interactive scoreboard
  runner scores --clear     # Delete all recorded runs`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearRuns(runner.GameID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d runs.\n", n)
		return nil
	}

	if flagInteractive {
		cfg := runtimeConfig()
		player := flagPlayer
		if player == "" {
			player = storage.LocalPlayer
		}
		_, err := tui.RunScoreboard(store, player, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	var runs []storage.Run
	if flagPlayer != "" {
		runs, err = store.PlayerRuns(runner.GameID, flagPlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(runner.GameID, flagLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Endless Runner")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'runner play' to set the first high score!")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  Rank\tScore\tPlayer\tSpeed\tDate")
	fmt.Fprintln(tw, "  ----\t-----\t------\t-----\t----")
	for i, r := range runs {
		fmt.Fprintf(tw, "  %d\t%05d\t%s\t%.0f\t%s\n", i+1, r.Score, r.Player, r.Speed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	stats, err := store.Stats(runner.GameID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not load stats:", err)
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %05d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	return nil
}
