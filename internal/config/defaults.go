package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-2048/internal/theme"
)

//go:embed defaults/2048.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when no YAML is readable.
func Default() Config {
	return Config{
		Theme:    theme.Default,
		Seed:     0,
		TickRate: 60,
		DBPath:   "~/.2048/scores.db",
		LogLevel: "info",
		LogFile:  "~/.2048/2048.log",
		Spawn: SpawnConfig{
			FourProbability: 0.1,
		},
		Animation: AnimationConfig{
			SlideTicks: 6,
			PopTicks:   4,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKey:     ".ssh/2048_ed25519",
			IdleTimeout: 10 * time.Minute,
			MaxPerIP:    3,
		},
		HTTP: HTTPConfig{
			Address: "",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
