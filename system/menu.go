package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/event"
	"github.com/lixenwraith/ball-game/parameter"
)

// MenuSystem drives the main menu buttons from mouse and keyboard
// Runs only in MainMenu; the menu resource is built on enter and cleared on exit
type MenuSystem struct {
	world *engine.World
}

func NewMenuSystem(world *engine.World) *MenuSystem {
	return &MenuSystem{world: world}
}

// Priority returns the system's priority
func (s *MenuSystem) Priority() int {
	return parameter.PriorityMenu
}

// Update lays out the buttons and applies mouse and keyboard interaction
func (s *MenuSystem) Update() {
	menu := s.world.Resources.Menu
	if !menu.Active {
		return
	}
	win := s.world.Resources.Window
	layoutMenu(menu, win.Cols, win.Rows)

	kb := s.world.Resources.Keyboard
	n := len(menu.Buttons)
	if kb.JustPressed(core.KeyUp) || kb.JustPressed(core.KeyW) {
		menu.Focus = (menu.Focus + n - 1) % n
	}
	if kb.JustPressed(core.KeyDown) || kb.JustPressed(core.KeyS) {
		menu.Focus = (menu.Focus + 1) % n
	}

	mouse := s.world.Resources.Mouse
	activated := -1
	hoveredByMouse := false

	for i := range menu.Buttons {
		b := &menu.Buttons[i]
		b.Interaction = engine.InteractionNone
		if !mouse.Valid || !b.Contains(mouse.X, mouse.Y) {
			continue
		}
		hoveredByMouse = true
		menu.Focus = i
		if mouse.LeftDown {
			b.Interaction = engine.InteractionPressed
		} else {
			b.Interaction = engine.InteractionHovered
		}
		if mouse.JustPressed() {
			activated = i
		}
	}

	if !hoveredByMouse {
		menu.Buttons[menu.Focus].Interaction = engine.InteractionHovered
	}
	if activated < 0 && kb.JustPressed(core.KeyEnter) {
		menu.Buttons[menu.Focus].Interaction = engine.InteractionPressed
		activated = menu.Focus
	}
	if activated >= 0 {
		s.activate(menu.Buttons[activated].Kind)
	}
}

func (s *MenuSystem) activate(kind engine.ButtonKind) {
	log := s.world.Resources.Logger
	switch kind {
	case engine.ButtonPlay:
		log.Debug("menu: play")
		s.world.Resources.State.SetNext(core.AppStateGame)
	case engine.ButtonQuit:
		log.Debug("menu: quit")
		s.world.PushEvent(event.EventExitRequest, nil)
	}
}

// EventTypes implements EventHandler; transitions are logged for the menu lifecycle
func (s *MenuSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventStateTransition}
}

// HandleEvent logs app state transitions
func (s *MenuSystem) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.StateTransitionPayload)
	if !ok {
		return
	}
	if payload.To == core.AppStateMainMenu || payload.From == core.AppStateMainMenu {
		s.world.Resources.Logger.Debug("menu lifecycle",
			zap.Stringer("from", payload.From),
			zap.Stringer("to", payload.To),
			zap.Bool("active", s.world.Resources.Menu.Active))
	}
}

// buildMenu is the OnEnter(MainMenu) hook
func buildMenu(w *engine.World) {
	menu := w.Resources.Menu
	menu.Active = true
	menu.Focus = 0
	menu.Buttons = []engine.MenuButton{
		{Kind: engine.ButtonPlay, Label: "Play"},
		{Kind: engine.ButtonQuit, Label: "Quit"},
	}
	layoutMenu(menu, w.Resources.Window.Cols, w.Resources.Window.Rows)
}

// clearMenu is the OnExit(MainMenu) hook
func clearMenu(w *engine.World) {
	menu := w.Resources.Menu
	menu.Active = false
	menu.Buttons = nil
	menu.Focus = 0
}

// layoutMenu centers the title and a vertical button column in a cols x rows screen
// Layout: title, blank, icon row, then buttons separated by ButtonGap
func layoutMenu(menu *engine.MenuResource, cols, rows int) {
	n := len(menu.Buttons)
	if n == 0 {
		return
	}
	height := 3 + n*parameter.ButtonHeight + (n-1)*parameter.ButtonGap
	top := (rows - height) / 2
	if top < 0 {
		top = 0
	}
	x := (cols - parameter.ButtonWidth) / 2
	if x < 0 {
		x = 0
	}

	menu.TitleY = top
	y := top + 3
	for i := range menu.Buttons {
		b := &menu.Buttons[i]
		b.X, b.Y = x, y
		b.W, b.H = parameter.ButtonWidth, parameter.ButtonHeight
		y += parameter.ButtonHeight + parameter.ButtonGap
	}
}
