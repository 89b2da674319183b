package engine

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ball-game/config"
	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/highscore"
	"github.com/lixenwraith/ball-game/input"
	"github.com/lixenwraith/ball-game/status"
	"github.com/lixenwraith/ball-game/vmath"
)

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Window *WindowResource
	Config *config.Config
	State  *StateResource

	Score      *ScoreResource
	HighScores *HighScoreResource
	LastRun    *LastRunResource

	StarSpawnTimer  *Timer
	EnemySpawnTimer *Timer

	Keyboard *input.Keyboard
	Mouse    *input.Mouse
	Menu     *MenuResource

	Audio  *AudioResource
	Status *status.Registry
	Logger *zap.Logger
	Rand   *rand.Rand
}

// NewResource builds the default resource set from cfg (nil = defaults)
func NewResource(cfg *config.Config) *Resource {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return &Resource{
		Time:            &TimeResource{},
		Window:          NewWindowResource(80, 24, cfg.Window.CellWidth, cfg.Window.CellHeight),
		Config:          cfg,
		State:           NewStateResource(),
		Score:           &ScoreResource{},
		HighScores:      &HighScoreResource{Table: &highscore.Table{}},
		LastRun:         &LastRunResource{},
		StarSpawnTimer:  NewTimer(cfg.Star.SpawnInterval.Duration, TimerRepeating),
		EnemySpawnTimer: NewTimer(cfg.Enemy.SpawnInterval.Duration, TimerRepeating),
		Keyboard:        input.NewKeyboard(cfg.Input.HoldWindow.Duration, cfg.Input.RepeatDelay.Duration),
		Mouse:           &input.Mouse{},
		Menu:            &MenuResource{},
		Audio:           &AudioResource{},
		Status:          status.NewRegistry(),
		Logger:          zap.NewNop(),
		Rand:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// TimeResource wraps time data for systems
// Updated by App at the start of each tick
type TimeResource struct {
	// Delta is the duration since the last tick, capped at MaxFrameDelta
	Delta time.Duration

	// GameTime is the elapsed unpaused time of the current run
	GameTime time.Duration

	// PausedTime is the time the current run has spent paused
	PausedTime time.Duration

	// RealTime is the wall-clock time of the tick
	RealTime time.Time

	// FrameNumber is the current frame count
	FrameNumber int64
}

// DeltaSeconds returns Delta as float seconds for velocity integration
func (t *TimeResource) DeltaSeconds() float64 {
	return t.Delta.Seconds()
}

// WindowResource is the play field size in world units and terminal cells
type WindowResource struct {
	Cols, Rows int
	CellWidth  float64
	CellHeight float64
	Size       vmath.Vec2
}

func NewWindowResource(cols, rows int, cellW, cellH float64) *WindowResource {
	w := &WindowResource{CellWidth: cellW, CellHeight: cellH}
	w.Resize(cols, rows)
	return w
}

// Resize updates the field for a new terminal size
func (w *WindowResource) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	w.Cols, w.Rows = cols, rows
	w.Size = vmath.V2(float64(cols)*w.CellWidth, float64(rows)*w.CellHeight)
}

// Width returns the field width in world units
func (w *WindowResource) Width() float64 { return w.Size.X }

// Height returns the field height in world units
func (w *WindowResource) Height() float64 { return w.Size.Y }

// Center returns the middle of the field
func (w *WindowResource) Center() vmath.Vec2 {
	return w.Size.Scale(0.5)
}

// ToCell maps a world position to a terminal cell, flipping y
func (w *WindowResource) ToCell(p vmath.Vec2) (col, row int) {
	col = int(p.X / w.CellWidth)
	row = w.Rows - 1 - int(p.Y/w.CellHeight)
	return col, row
}

// ScoreResource is the current run's score
// Present is false outside AppStateGame, mirroring insert/remove on state change
type ScoreResource struct {
	Value   int
	Present bool
	changed bool
}

// Insert resets the score to zero and marks it changed
func (s *ScoreResource) Insert() {
	s.Value = 0
	s.Present = true
	s.changed = true
}

// Remove drops the score
func (s *ScoreResource) Remove() {
	s.Value = 0
	s.Present = false
	s.changed = false
}

// Add increments the score; ignored when not present
func (s *ScoreResource) Add(n int) {
	if !s.Present {
		return
	}
	s.Value += n
	s.changed = true
}

// Changed reports a mutation since the last ClearChanged
func (s *ScoreResource) Changed() bool { return s.changed }

// ClearChanged acknowledges the change
func (s *ScoreResource) ClearChanged() { s.changed = false }

// HighScoreResource holds the high score table and optional persistence
type HighScoreResource struct {
	Table   *highscore.Table
	Store   *highscore.Store // nil disables persistence
	changed bool
}

// Record appends a finished run and marks the table changed
func (h *HighScoreResource) Record(name string, score int) {
	h.Table.Add(name, score)
	h.changed = true
}

// Changed reports a mutation since the last ClearChanged
func (h *HighScoreResource) Changed() bool { return h.changed }

// ClearChanged acknowledges the change
func (h *HighScoreResource) ClearChanged() { h.changed = false }

// LastRunResource keeps the final score visible after the run's score is removed
type LastRunResource struct {
	FinalScore int
	Duration   time.Duration
	PausedFor  time.Duration
	Valid      bool
}

// ButtonKind identifies a menu button action
type ButtonKind int

const (
	ButtonPlay ButtonKind = iota
	ButtonQuit
)

// Interaction is the pointer/focus state of a button
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

// MenuButton is a laid-out button in terminal cells
type MenuButton struct {
	Kind        ButtonKind
	Label       string
	X, Y, W, H  int
	Interaction Interaction
}

// Contains reports whether the cell is inside the button
func (b *MenuButton) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// MenuResource is the main menu, present only in AppStateMainMenu
type MenuResource struct {
	Active  bool
	Buttons []MenuButton
	Focus   int
	TitleY  int
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(sound core.SoundType, volume float64) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// AudioResource wraps the audio player; Player is nil when audio is disabled
type AudioResource struct {
	Player AudioPlayer
}
