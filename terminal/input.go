package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
)

// Action is what the loop must do after an event besides updating input state
type Action int

const (
	ActionNone Action = iota
	ActionQuit        // Hard quit, bypasses the game (Ctrl-C)
	ActionResize
)

// Apply feeds one tcell event into the keyboard, mouse and window resources
func Apply(ev tcell.Event, res *engine.Resource, now time.Time) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, quit := translateKey(ev.Key(), ev.Rune(), ev.Modifiers())
		if quit {
			return ActionQuit
		}
		if key != core.KeyNone {
			res.Keyboard.Press(key, now)
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		res.Mouse.Move(x, y, ev.Buttons()&tcell.Button1 != 0)

	case *tcell.EventFocus:
		// Key-up never arrives for keys held while focus moves away
		if !ev.Focused {
			res.Keyboard.ReleaseAll()
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		res.Window.Resize(cols, rows)
		return ActionResize
	}
	return ActionNone
}

// translateKey maps a tcell key event to a game key; quit is set for Ctrl-C
func translateKey(k tcell.Key, r rune, mod tcell.ModMask) (key core.Key, quit bool) {
	switch k {
	case tcell.KeyCtrlC:
		return core.KeyNone, true
	case tcell.KeyLeft:
		return core.KeyLeft, false
	case tcell.KeyRight:
		return core.KeyRight, false
	case tcell.KeyUp:
		return core.KeyUp, false
	case tcell.KeyDown:
		return core.KeyDown, false
	case tcell.KeyEscape:
		return core.KeyEscape, false
	case tcell.KeyEnter:
		return core.KeyEnter, false
	case tcell.KeyRune:
		if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return core.KeyNone, false
		}
		return core.KeyFromRune(r), false
	}
	return core.KeyNone, false
}
