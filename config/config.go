package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Defaults matching the original server behavior.
const (
	DefaultBossAlertness = 50
	DefaultCooldownSecs  = 300
)

// ErrInvalid marks configuration rejected during Load.
var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved runtime configuration.
type Config struct {
	// BossAlertness is the probability (0-100) of a boss alert increase
	// per break tool usage.
	BossAlertness int `mapstructure:"boss_alertness"`
	// BossAlertnessCooldown is the interval in seconds for the boss alert
	// level to automatically decrease by 1.
	BossAlertnessCooldown int `mapstructure:"boss_alertness_cooldown"`
	// Server selects MCP stdio server mode instead of the interactive CLI.
	Server bool `mapstructure:"server"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Cooldown returns the cooldown as a duration.
func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.BossAlertnessCooldown) * time.Second
}

// Validate rejects out-of-range settings.
func (c *Config) Validate() error {
	if c.BossAlertness < 0 || c.BossAlertness > 100 {
		return fmt.Errorf("%w: boss_alertness must be between 0 and 100, got %d", ErrInvalid, c.BossAlertness)
	}
	if c.BossAlertnessCooldown <= 0 {
		return fmt.Errorf("%w: boss_alertness_cooldown must be positive, got %d", ErrInvalid, c.BossAlertnessCooldown)
	}
	return nil
}

// SetDefaults registers the baseline values on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("boss_alertness", DefaultBossAlertness)
	v.SetDefault("boss_alertness_cooldown", DefaultCooldownSecs)
	v.SetDefault("server", false)
	v.SetDefault("log_level", "info")
}

// Load resolves the configuration from the given viper instance:
// defaults, then an optional $HOME/.chillmcp.yaml, then CHILLMCP_*
// environment variables, then whatever flags the caller has bound.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	v.SetConfigName(".chillmcp")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("CHILLMCP")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
