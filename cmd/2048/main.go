// 2048 is the sliding-tile puzzle played in the terminal.
//
// Usage:
//
//	2048 [theme]          - Play (themes: original, blackwhite, bluered)
//	2048 test             - Run the slide/merge self-test
//	2048 scores           - Show high scores
//	2048 themes           - List colour themes
//	2048 serve            - Host games over SSH and the leaderboard over HTTP
//
// Global flags:
//
//	--config <path> - Config file (default: ~/.2048/config.yaml)
//	--seed <value>  - RNG seed for reproducible games
//	--db <path>     - Scores database (default: ~/.2048/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var version = "dev"

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	// Load .env if present (ignore error if missing)
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "2048 [theme]",
	Short: "2048 - slide tiles, merge numbers, reach 2048",
	Long: `2048 in your terminal.

Slide the board with the arrow keys (or WASD / HJKL). Equal tiles merge
into their sum. The game ends when no move changes the board.

Controls:
  Arrows/WASD/HJKL - Move
  P                - Pause
  R                - Restart (asks y/n while playing)
  Q                - Quit (asks y/n)
  Ctrl+S           - Save a screenshot

Available commands:
  test     - Run the slide/merge self-test
  scores   - View high scores
  themes   - List colour themes
  serve    - Start SSH server for remote play

Examples:
  2048
  2048 bluered
  2048 --menu
  2048 --seed 42
  2048 serve --ssh :23234 --http :8080`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	Run:     runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.Flags().BoolP("version", "v", false, "Print version")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads configuration and applies the global flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	return cfg, nil
}

// fail prints the error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
