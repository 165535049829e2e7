package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/swipedeck/internal/errors"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("SWIPEDECK_CONFIG", "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:3000", cfg.Server.BaseURL)
	require.Equal(t, 10*time.Second, cfg.Server.Timeout)
	require.Equal(t, 12.0, cfg.Gesture.MinMove)
	require.Equal(t, 1.5, cfg.Gesture.Dominance)
	require.Equal(t, 0.6, cfg.Gesture.Damping)
	require.Equal(t, 25.0, cfg.Gesture.RotationDivisor)
	require.Equal(t, 120.0, cfg.Gesture.CommitMin)
	require.Equal(t, 0.18, cfg.Gesture.CommitFraction)
	require.Equal(t, 500*time.Millisecond, cfg.Motion.Outcome)
	require.Equal(t, 300*time.Millisecond, cfg.Motion.Spring)
	require.Equal(t, 20.0, cfg.Motion.ExitDegrees)
	require.True(t, cfg.Loader.CancelStale)
	require.False(t, cfg.Journal.Enabled)
	require.Equal(t, "/", cfg.UI.Path)
}

func TestDefaultsMatchLoad(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, cfg, Defaults())
	require.NoError(t, Defaults().Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "deck.toml")
	body := `
[server]
base_url = "https://cards.example.com"
timeout = "3s"

[gesture]
commit_min = 150.0

[motion]
outcome = "750ms"

[journal]
enabled = true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("SWIPEDECK_GESTURE_DAMPING", "0.5")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://cards.example.com", cfg.Server.BaseURL)
	require.Equal(t, 3*time.Second, cfg.Server.Timeout)
	require.Equal(t, 150.0, cfg.Gesture.CommitMin)
	require.Equal(t, 0.5, cfg.Gesture.Damping)
	require.Equal(t, 750*time.Millisecond, cfg.Motion.Outcome)
	require.True(t, cfg.Journal.Enabled)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	isolate(t)
	base, err := Load("")
	require.NoError(t, err)

	cases := map[string]func(c *Config){
		"server.base_url":         func(c *Config) { c.Server.BaseURL = "not a url" },
		"server.timeout":          func(c *Config) { c.Server.Timeout = 0 },
		"gesture.damping":         func(c *Config) { c.Gesture.Damping = 0 },
		"gesture.commit_fraction": func(c *Config) { c.Gesture.CommitFraction = 1.5 },
		"motion.outcome":          func(c *Config) { c.Motion.Outcome = -time.Second },
		"ui.card_width":           func(c *Config) { c.UI.CardWidth = 3 },
		"ui.path":                 func(c *Config) { c.UI.Path = "cards" },
	}
	for key, mutate := range cases {
		t.Run(key, func(t *testing.T) {
			c := base
			mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, errors.ErrInvalidConfig))
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Server.BaseURL = "http://127.0.0.1:9999"
	cfg.Motion.Outcome = 400 * time.Millisecond

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}
