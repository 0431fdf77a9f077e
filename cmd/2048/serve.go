package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/httpapi"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxPerIP    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the 2048 SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own private game behind a menu.
Scores are stored per-server (all users share the same leaderboard).
With --http the leaderboard is also served read-only as JSON.

Examples:
  2048 serve                           # Listen on :23234
  2048 serve --ssh :2222               # Listen on port 2222
  2048 serve --http :8080              # Also serve GET /scores and /stats
  2048 serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config, :23234)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Leaderboard HTTP address (disabled if empty)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxPerIP, "max-per-ip", -1, "Concurrent sessions per remote host (0 = unlimited)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHTTPAddr != "" {
		cfg.HTTP.Address = flagHTTPAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	if flagMaxPerIP >= 0 {
		cfg.SSH.MaxPerIP = flagMaxPerIP
	}

	logger, err := logging.Stderr(cfg.LogLevel, "2048")
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	server, err := tui.NewSSHServer(tui.SSHServerConfigFrom(cfg), store, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting 2048 SSH server on %s\n", cfg.SSH.Address)
	if cfg.HTTP.Address != "" {
		fmt.Printf("Leaderboard API on %s\n", cfg.HTTP.Address)
	}
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The first server to fail stops the other one
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	running := 1
	go func() { errCh <- server.ListenAndServe(ctx) }()
	if cfg.HTTP.Address != "" {
		api := httpapi.New(store, logger)
		running++
		go func() { errCh <- api.ListenAndServe(ctx, cfg.HTTP.Address) }()
	}

	var firstErr error
	for range running {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			cancel()
		}
	}
	if firstErr != nil {
		store.Close()
		fail("server: %v", firstErr)
	}
	logger.Info("stopped")
}
