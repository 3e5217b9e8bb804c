package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game     GameConfig     `mapstructure:"game"`
	Agent    AgentConfig    `mapstructure:"agent"`
	Training TrainingConfig `mapstructure:"training"`
	Play     PlayConfig     `mapstructure:"play"`
	Log      LogConfig      `mapstructure:"log"`
}

// GameConfig holds game setup configuration
type GameConfig struct {
	Piles []int `mapstructure:"piles"`
}

// AgentConfig holds the learning parameters
type AgentConfig struct {
	Alpha   float64 `mapstructure:"alpha"`
	Epsilon float64 `mapstructure:"epsilon"`
}

// TrainingConfig holds self-play training settings
type TrainingConfig struct {
	Episodes         int `mapstructure:"episodes"`
	ProgressInterval int `mapstructure:"progress_interval"`
}

// PlayConfig holds interactive play settings
type PlayConfig struct {
	MoveDelayMs int `mapstructure:"move_delay_ms"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.piles", []int{1, 3, 5, 7})

	v.SetDefault("agent.alpha", 0.5)
	v.SetDefault("agent.epsilon", 0.1)

	v.SetDefault("training.episodes", 10000)
	v.SetDefault("training.progress_interval", 1000)

	v.SetDefault("play.move_delay_ms", 500)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/nim-rl")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("NIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	if err := v.Unmarshal(cfg); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to apply config update")
	}
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		if err := v.Unmarshal(cfg); err != nil {
			log.Error().Err(err).Str("file", e.Name).Msg("Failed to reload config")
			return
		}
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if len(c.Game.Piles) == 0 {
		return fmt.Errorf("game.piles must not be empty")
	}
	total := 0
	for i, n := range c.Game.Piles {
		if n < 0 {
			return fmt.Errorf("game.piles[%d] must be non-negative", i)
		}
		total += n
	}
	if total == 0 {
		return fmt.Errorf("game.piles must contain at least one object")
	}

	if c.Agent.Alpha <= 0 || c.Agent.Alpha > 1 {
		return fmt.Errorf("agent.alpha must be in (0, 1]")
	}
	if c.Agent.Epsilon < 0 || c.Agent.Epsilon > 1 {
		return fmt.Errorf("agent.epsilon must be between 0 and 1")
	}

	if c.Training.Episodes < 0 {
		return fmt.Errorf("training.episodes must be non-negative")
	}
	if c.Training.ProgressInterval < 0 {
		return fmt.Errorf("training.progress_interval must be non-negative")
	}

	if c.Play.MoveDelayMs < 0 {
		return fmt.Errorf("play.move_delay_ms must be non-negative")
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json")
	}

	return nil
}
