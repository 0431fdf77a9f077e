package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
	"github.com/vovakirdan/tui-2048/internal/theme"
)

var (
	flagTheme string
	flagMenu  bool
)

func init() {
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "Colour theme (see '2048 themes')")
	rootCmd.Flags().BoolVar(&flagMenu, "menu", false, "Start with the menu (high scores, theme picker)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	// Positional theme wins over --theme, which wins over config
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if len(args) == 1 {
		cfg.Theme = args[0]
	}
	if !theme.Exists(cfg.Theme) {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", cfg.Theme)
		fmt.Fprintln(os.Stderr, "Run '2048 themes' to see available themes.")
		os.Exit(1)
	}

	logger, closer, err := logging.File(cfg.LogFile, cfg.LogLevel, "2048")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.TickRate
	rc.Seed = cfg.Seed
	opts := gameOptions(cfg)

	// Continue without storage - game still works
	var scores tui.Scores
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
	} else {
		scores = store
	}

	player := os.Getenv("USER")
	logger.Info("starting", "theme", cfg.Theme, "seed", cfg.Seed, "menu", flagMenu)

	var runErr error
	if flagMenu {
		runErr = tui.RunSession(scores, logger, player, opts, rc)
	} else {
		runErr = tui.Run(t2048.New(opts), scores, logger, player, rc)
	}

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

func gameOptions(cfg config.Config) t2048.Options {
	return t2048.Options{
		Theme:           cfg.Theme,
		FourProbability: cfg.Spawn.FourProbability,
		SlideTicks:      cfg.Animation.SlideTicks,
		PopTicks:        cfg.Animation.PopTicks,
	}
}
