// Package terminal owns the tcell screen and translates its events into game input
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Terminal wraps the tcell screen for the game loop
type Terminal struct {
	screen tcell.Screen
}

// New initializes the terminal: alternate screen, mouse reporting, hidden cursor
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen adopts an already initialized screen
// Focus reporting lets the game drop held keys when the window loses focus
func NewWithScreen(screen tcell.Screen) *Terminal {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()
	return &Terminal{screen: screen}
}

// Screen returns the underlying tcell screen
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the terminal size in cells
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Events starts the event poller; the channel closes when the screen is finalized
func (t *Terminal) Events() <-chan tcell.Event {
	ch := make(chan tcell.Event, 100)
	go func() {
		defer close(ch)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			ch <- ev
		}
	}()
	return ch
}

// Fini restores the terminal
func (t *Terminal) Fini() {
	t.screen.DisableFocus()
	t.screen.DisableMouse()
	t.screen.Fini()
}
