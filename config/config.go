package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Window     WindowConfig  `mapstructure:"window"`
	TPS        int           `mapstructure:"tps"`
	Controller string        `mapstructure:"controller"`
	Physics    PhysicsConfig `mapstructure:"physics"`
	Prefabs    PrefabsConfig `mapstructure:"prefabs"`
	Log        LogConfig     `mapstructure:"log"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type PhysicsConfig struct {
	// Gravity only applies to the rigid controller.
	Gravity float64 `mapstructure:"gravity"`
}

type PrefabsConfig struct {
	Dir       string `mapstructure:"dir"`
	HotReload bool   `mapstructure:"hot_reload"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Load decodes the current viper state.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	return nil
}

// TickDuration is the simulated time of one update.
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}
