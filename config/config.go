package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ball-game/parameter"
)

// DefaultPath is the config file looked up when no --config flag is given
// Its absence is not an error
const DefaultPath = "ball-game.toml"

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Player  PlayerConfig  `toml:"player"`
	Enemy   EnemyConfig   `toml:"enemy"`
	Star    StarConfig    `toml:"star"`
	Audio   AudioConfig   `toml:"audio"`
	Input   InputConfig   `toml:"input"`
	Logging LoggingConfig `toml:"logging"`
	Scores  ScoresConfig  `toml:"scores"`
}

type WindowConfig struct {
	CellWidth  float64 `toml:"cell_width"`  // world units per terminal column
	CellHeight float64 `toml:"cell_height"` // world units per terminal row
	FPS        int     `toml:"fps"`
}

type PlayerConfig struct {
	Size  float64 `toml:"size"`
	Speed float64 `toml:"speed"` // world units per second
}

type EnemyConfig struct {
	Size          float64  `toml:"size"`
	Speed         float64  `toml:"speed"`
	Count         int      `toml:"count"`
	SpawnInterval Duration `toml:"spawn_interval"`
}

type StarConfig struct {
	Size          float64  `toml:"size"`
	Count         int      `toml:"count"`
	SpawnInterval Duration `toml:"spawn_interval"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0-1.0
}

type InputConfig struct {
	HoldWindow  Duration `toml:"hold_window"`
	RepeatDelay Duration `toml:"repeat_delay"` // 0 = hold window only
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`
}

type ScoresConfig struct {
	Path       string `toml:"path"` // empty disables persistence
	PlayerName string `toml:"player_name"`
}

// Duration wraps time.Duration for "1.5s" style TOML strings
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load reads path over the defaults
// A missing file at DefaultPath yields defaults; any other missing path is an error
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			CellWidth:  parameter.CellWidth,
			CellHeight: parameter.CellHeight,
			FPS:        int(time.Second / parameter.FrameUpdateInterval),
		},
		Player: PlayerConfig{
			Size:  parameter.PlayerSize,
			Speed: parameter.PlayerSpeed,
		},
		Enemy: EnemyConfig{
			Size:          parameter.EnemySize,
			Speed:         parameter.EnemySpeed,
			Count:         parameter.NumberOfEnemies,
			SpawnInterval: Duration{parameter.EnemySpawnInterval},
		},
		Star: StarConfig{
			Size:          parameter.StarSize,
			Count:         parameter.NumberOfStars,
			SpawnInterval: Duration{parameter.StarSpawnInterval},
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 1.0,
		},
		Input: InputConfig{
			HoldWindow:  Duration{parameter.KeyHoldWindow},
			RepeatDelay: Duration{parameter.KeyRepeatDelay},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "logs/ball-game.log",
		},
		Scores: ScoresConfig{
			PlayerName: parameter.DefaultPlayerName,
		},
	}
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("window.cell_width", c.Window.CellWidth)
	positive("window.cell_height", c.Window.CellHeight)
	positive("window.fps", float64(c.Window.FPS))
	positive("player.size", c.Player.Size)
	positive("player.speed", c.Player.Speed)
	positive("enemy.size", c.Enemy.Size)
	positive("enemy.speed", c.Enemy.Speed)
	positive("enemy.spawn_interval", c.Enemy.SpawnInterval.Seconds())
	positive("star.size", c.Star.Size)
	positive("star.spawn_interval", c.Star.SpawnInterval.Seconds())
	positive("input.hold_window", c.Input.HoldWindow.Seconds())

	if c.Enemy.Count < 0 {
		errs = append(errs, fmt.Errorf("enemy.count must not be negative, got %d", c.Enemy.Count))
	}
	if c.Star.Count < 0 {
		errs = append(errs, fmt.Errorf("star.count must not be negative, got %d", c.Star.Count))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.master_volume must be within [0,1], got %v", c.Audio.MasterVolume))
	}
	if c.Input.RepeatDelay.Duration < 0 {
		errs = append(errs, fmt.Errorf("input.repeat_delay must not be negative, got %s", c.Input.RepeatDelay.Duration))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level))
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// FrameInterval converts the configured FPS into a ticker interval
func (c *Config) FrameInterval() time.Duration {
	if c.Window.FPS <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Window.FPS)
}
