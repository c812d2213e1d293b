package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresPlayer string
	flagScoresBoard  bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top runs of every player, or the latest runs of one player.

Examples:
  dino scores
  dino scores --limit 25
  dino scores --recent --player rex
  dino scores --board          # Interactive scoreboard
  dino scores --clear          # Forget every recorded run`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs of --player instead of the best")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", defaultPlayer(), "Player for --recent")
	scoresCmd.Flags().BoolVar(&flagScoresBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("All runs deleted.")
		return

	case flagScoresBoard:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, flagScoresPlayer, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	var runs []storage.Run
	if flagScoresRecent {
		runs, err = store.RecentRuns(flagScoresPlayer, flagScoresLimit)
		fmt.Printf("Recent Runs - %s\n", flagScoresPlayer)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
		fmt.Println("High Scores")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dino play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %s\n", "Rank", "Player", "Score", "Frames", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %s\n", "----", "------", "-----", "------", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-8d  %s\n", i+1, r.Player, r.Score, r.Frames, dateStr)
	}

	fmt.Println()
	if flagScoresRecent {
		if best, err := store.PlayerBest(flagScoresPlayer); err == nil {
			fmt.Printf("Personal best: %d\n", best)
		}
	} else if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
