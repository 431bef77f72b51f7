package window

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/kmacinski/harvest/internal/ui"
)

var _ Handler = (*StatusBar)(nil)

// StatusBar renders a caption on one row
type StatusBar struct {
	Caption string
	Row     int
}

// NewStatusBar creates a status bar handler writing caption at row
func NewStatusBar(caption string, row int) *StatusBar {
	return &StatusBar{Caption: caption, Row: row}
}

// StatusBarOptions places a one-row status bar at the bottom of a screen
// with the given height and width.
func StatusBarOptions(screenHeight, screenWidth int) Options {
	return Options{
		Height:     1,
		Width:      screenWidth,
		OriginY:    screenHeight - 1,
		Background: ui.BlackOnWhite,
	}
}

// BindData writes the caption at column 0
func (s *StatusBar) BindData(w *Window) error {
	return w.Write(s.Caption, 0, s.Row)
}

// OnKeyPressed closes the bar on the quit key and ignores the rest
func (s *StatusBar) OnKeyPressed(w *Window) (bool, error) {
	k, err := w.ReadKey()
	if err != nil {
		return false, err
	}
	return key.Matches(k, w.Env().Keys.Quit), nil
}
