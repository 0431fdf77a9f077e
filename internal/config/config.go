// Package config provides YAML-based configuration loading for the game,
// the scoreboard database and the SSH/HTTP servers.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-2048/internal/theme"
)

// Config contains all runtime settings.
type Config struct {
	Theme     string          `yaml:"theme"`
	Seed      int64           `yaml:"seed"`      // 0 picks a time-based seed
	TickRate  int             `yaml:"tick_rate"` // Simulation ticks per second
	DBPath    string          `yaml:"db_path"`
	LogLevel  string          `yaml:"log_level"`
	LogFile   string          `yaml:"log_file"` // Used while the TUI owns the terminal
	Spawn     SpawnConfig     `yaml:"spawn"`
	Animation AnimationConfig `yaml:"animation"`
	SSH       SSHConfig       `yaml:"ssh"`
	HTTP      HTTPConfig      `yaml:"http"`
}

// SpawnConfig defines how new tiles are chosen.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"`
}

// AnimationConfig defines animation lengths in ticks.
type AnimationConfig struct {
	SlideTicks int `yaml:"slide_ticks"`
	PopTicks   int `yaml:"pop_ticks"`
}

// SSHConfig defines the SSH game server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	MaxPerIP    int           `yaml:"max_per_ip"` // 0 means unlimited
}

// HTTPConfig defines the leaderboard API server.
type HTTPConfig struct {
	Address string `yaml:"address"` // Empty disables the API
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if !theme.Exists(c.Theme) {
		return fmt.Errorf("config: unknown theme %q (available: %v)", c.Theme, theme.Names())
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}
	if p := c.Spawn.FourProbability; p < 0 || p > 1 {
		return fmt.Errorf("config: spawn.four_probability must be within [0, 1], got %v", p)
	}
	if c.Animation.SlideTicks < 0 || c.Animation.PopTicks < 0 {
		return fmt.Errorf("config: animation ticks must not be negative")
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout must not be negative")
	}
	if c.SSH.MaxPerIP < 0 {
		return fmt.Errorf("config: ssh.max_per_ip must not be negative")
	}
	return nil
}
