package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/swipedeck/internal/errors"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig
	Gesture GestureConfig
	Motion  MotionConfig
	UI      UIConfig
	Loader  LoaderConfig
	Log     LogConfig
	Journal JournalConfig
}

// ServerConfig points at the record service.
type ServerConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// GestureConfig holds swipe classification thresholds, in pixels where applicable.
type GestureConfig struct {
	MinMove         float64 `mapstructure:"min_move"`
	Dominance       float64 `mapstructure:"dominance"`
	Damping         float64 `mapstructure:"damping"`
	RotationDivisor float64 `mapstructure:"rotation_divisor"`
	CommitMin       float64 `mapstructure:"commit_min"`
	CommitFraction  float64 `mapstructure:"commit_fraction"`
}

// MotionConfig holds animation timings.
type MotionConfig struct {
	Outcome     time.Duration `mapstructure:"outcome"`
	Spring      time.Duration `mapstructure:"spring"`
	ExitDegrees float64       `mapstructure:"exit_degrees"`
}

// UIConfig maps terminal cells onto the pixel space the gesture thresholds use.
type UIConfig struct {
	CellWidthPx  float64 `mapstructure:"cell_width_px"`
	CellHeightPx float64 `mapstructure:"cell_height_px"`
	CardWidth    int     `mapstructure:"card_width"`
	Path         string  `mapstructure:"path"`
}

// LoaderConfig controls in-flight fetch handling.
type LoaderConfig struct {
	CancelStale bool `mapstructure:"cancel_stale"`
}

// LogConfig holds log destination settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// JournalConfig holds the opt-in decision journal settings.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "swipedeck")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "state", "swipedeck")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.base_url", "http://localhost:3000")
	v.SetDefault("server.timeout", 10*time.Second)

	v.SetDefault("gesture.min_move", 12.0)
	v.SetDefault("gesture.dominance", 1.5)
	v.SetDefault("gesture.damping", 0.6)
	v.SetDefault("gesture.rotation_divisor", 25.0)
	v.SetDefault("gesture.commit_min", 120.0)
	v.SetDefault("gesture.commit_fraction", 0.18)

	v.SetDefault("motion.outcome", 500*time.Millisecond)
	v.SetDefault("motion.spring", 300*time.Millisecond)
	v.SetDefault("motion.exit_degrees", 20.0)

	v.SetDefault("ui.cell_width_px", 8.0)
	v.SetDefault("ui.cell_height_px", 16.0)
	v.SetDefault("ui.card_width", 44)
	v.SetDefault("ui.path", "/")

	v.SetDefault("loader.cancel_stale", true)

	v.SetDefault("log.path", filepath.Join(stateDir(), "swipedeck.log"))
	v.SetDefault("log.level", "info")

	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "swipedeck", "journal.db"))
}

// Defaults returns the built-in configuration, ignoring files and env.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from file and env. Env var overrides use prefix SWIPEDECK_.
// An explicit path wins over SWIPEDECK_CONFIG, which wins over ~/.config/swipedeck/config.toml.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SWIPEDECK_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "swipedeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SWIPEDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// an explicitly named file must exist and parse
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing || path != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the gesture and loader logic cannot work with.
func (c Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.NewInvalidConfig("server.base_url", c.Server.BaseURL)
	}
	if c.Server.Timeout <= 0 {
		return errors.NewInvalidConfig("server.timeout", c.Server.Timeout)
	}
	positive := []struct {
		key string
		val float64
	}{
		{"gesture.min_move", c.Gesture.MinMove},
		{"gesture.dominance", c.Gesture.Dominance},
		{"gesture.damping", c.Gesture.Damping},
		{"gesture.rotation_divisor", c.Gesture.RotationDivisor},
		{"gesture.commit_min", c.Gesture.CommitMin},
		{"ui.cell_width_px", c.UI.CellWidthPx},
		{"ui.cell_height_px", c.UI.CellHeightPx},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return errors.NewInvalidConfig(p.key, p.val)
		}
	}
	if c.Gesture.CommitFraction < 0 || c.Gesture.CommitFraction > 1 {
		return errors.NewInvalidConfig("gesture.commit_fraction", c.Gesture.CommitFraction)
	}
	if c.Motion.Outcome <= 0 {
		return errors.NewInvalidConfig("motion.outcome", c.Motion.Outcome)
	}
	if c.Motion.Spring <= 0 {
		return errors.NewInvalidConfig("motion.spring", c.Motion.Spring)
	}
	if c.UI.CardWidth < 28 {
		return errors.NewInvalidConfig("ui.card_width", c.UI.CardWidth)
	}
	if !strings.HasPrefix(c.UI.Path, "/") {
		return errors.NewInvalidConfig("ui.path", c.UI.Path)
	}
	return nil
}

// Save writes the provided config to path, creating the directory if needed.
// Used by `swipedeck config init` to materialize the defaults.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("server.base_url", cfg.Server.BaseURL)
	v.Set("server.timeout", cfg.Server.Timeout.String())
	v.Set("gesture.min_move", cfg.Gesture.MinMove)
	v.Set("gesture.dominance", cfg.Gesture.Dominance)
	v.Set("gesture.damping", cfg.Gesture.Damping)
	v.Set("gesture.rotation_divisor", cfg.Gesture.RotationDivisor)
	v.Set("gesture.commit_min", cfg.Gesture.CommitMin)
	v.Set("gesture.commit_fraction", cfg.Gesture.CommitFraction)
	v.Set("motion.outcome", cfg.Motion.Outcome.String())
	v.Set("motion.spring", cfg.Motion.Spring.String())
	v.Set("motion.exit_degrees", cfg.Motion.ExitDegrees)
	v.Set("ui.cell_width_px", cfg.UI.CellWidthPx)
	v.Set("ui.cell_height_px", cfg.UI.CellHeightPx)
	v.Set("ui.card_width", cfg.UI.CardWidth)
	v.Set("ui.path", cfg.UI.Path)
	v.Set("loader.cancel_stale", cfg.Loader.CancelStale)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("journal.enabled", cfg.Journal.Enabled)
	v.Set("journal.path", cfg.Journal.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
