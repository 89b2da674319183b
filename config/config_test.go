package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ball-game/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, parameter.PlayerSize, cfg.Player.Size)
	assert.Equal(t, parameter.PlayerSpeed, cfg.Player.Speed)
	assert.Equal(t, parameter.NumberOfEnemies, cfg.Enemy.Count)
	assert.Equal(t, parameter.NumberOfStars, cfg.Star.Count)
	assert.Equal(t, 5*time.Second, cfg.Enemy.SpawnInterval.Duration)
	assert.Equal(t, time.Second, cfg.Star.SpawnInterval.Duration)
	assert.Equal(t, "Player 1", cfg.Scores.PlayerName)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[enemy]
count = 3
spawn_interval = "2500ms"

[logging]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Enemy.Count)
	assert.Equal(t, 2500*time.Millisecond, cfg.Enemy.SpawnInterval.Duration)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Untouched sections keep defaults
	assert.Equal(t, parameter.EnemySpeed, cfg.Enemy.Speed)
	assert.Equal(t, parameter.StarSize, cfg.Star.Size)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_MissingDefaultPathIsFine(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad toml", `[player`},
		{"bad duration", "[star]\nspawn_interval = \"soon\""},
		{"negative speed", "[player]\nspeed = -1.0"},
		{"zero interval", "[enemy]\nspawn_interval = \"0s\""},
		{"volume out of range", "[audio]\nmaster_volume = 1.5"},
		{"unknown log format", "[logging]\nformat = \"xml\""},
		{"unknown log level", "[logging]\nlevel = \"verbose\""},
		{"uppercase log level", "[logging]\nlevel = \"INFO\""},
		{"negative repeat delay", "[input]\nrepeat_delay = \"-1s\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestFrameInterval(t *testing.T) {
	cfg := Defaults()
	cfg.Window.FPS = 50
	assert.Equal(t, 20*time.Millisecond, cfg.FrameInterval())
}

func TestLoad_ExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "ball-game.example.toml"))
	require.NoError(t, err)

	want := Defaults()
	want.Window.FPS = 60
	want.Scores.Path = "scores.toml"
	assert.Equal(t, want, cfg)
}
