package window

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/kmacinski/harvest/internal/keys"
	"github.com/kmacinski/harvest/internal/ui"
)

// Handler supplies the content and input handling of a window
type Handler interface {
	// BindData writes the dynamic content of one frame onto a freshly
	// cleared surface.
	BindData(w *Window) error

	// OnKeyPressed reads input and reports whether the window should close.
	OnKeyPressed(w *Window) (quit bool, err error)
}

// Env holds what every window of an application shares
type Env struct {
	Screen tcell.Screen
	Colors *ui.Registry
	Log    *slog.Logger
	Keys   keys.KeyMap
}

// Options describes the region and static layout of a window. Zero height
// and width mean full screen.
type Options struct {
	Height  int
	Width   int
	OriginY int
	OriginX int

	// Background is applied on every frame unless it is ui.NoPair.
	Background ui.PairID
	Borders    bool

	// StatusBar is declarative; handlers decide whether to draw one.
	StatusBar bool
}

// State is the lifecycle stage of a window
type State int

const (
	Idle State = iota
	Running
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}
