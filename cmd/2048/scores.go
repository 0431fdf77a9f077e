package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and overall statistics.

Examples:
  2048 scores
  2048 scores --limit 20
  2048 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", storage.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Println("All scores deleted.")
		return
	}

	if err := writeScores(os.Stdout, store, flagLimit); err != nil {
		store.Close()
		fail("%v", err)
	}
}

// scoreLister is the part of the store the listing reads.
type scoreLister interface {
	TopScores(limit int) ([]storage.ScoreEntry, error)
	Stats() (*storage.Stats, error)
}

// writeScores prints the leaderboard followed by the statistics footer.
func writeScores(w io.Writer, store scoreLister, limit int) error {
	scores, err := store.TopScores(limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(w, "High Scores - 2048")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play '2048' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Tile", "Moves", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %-6d  %-6d  %-12s  %s\n",
			i+1, entry.Score, entry.MaxTile, entry.Moves, entry.Player, dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Best: %d  Average: %.0f  Best tile: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestTile)
	return nil
}
