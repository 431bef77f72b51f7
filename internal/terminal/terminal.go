package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ScreenFactory creates an uninitialized screen.
type ScreenFactory func() (tcell.Screen, error)

// NewScreen is the ScreenFactory for the real terminal.
func NewScreen() (tcell.Screen, error) {
	return tcell.NewScreen()
}

// Terminal owns a screen between Open and Close. Close may be called any
// number of times and from a signal handler; the screen is finalized once.
type Terminal struct {
	screen tcell.Screen
	once   sync.Once
}

// Open initializes a screen from factory, putting the terminal in raw mode.
func Open(factory ScreenFactory) (*Terminal, error) {
	screen, err := factory()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()
	return &Terminal{screen: screen}, nil
}

// Screen returns the underlying screen.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Close restores the terminal state.
func (t *Terminal) Close() {
	t.once.Do(t.screen.Fini)
}
