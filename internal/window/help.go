package window

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/mattn/go-runewidth"
)

var _ Handler = (*Help)(nil)

// Help displays keybinding help
type Help struct {
	bindings []key.Binding
}

// NewHelp creates a new help window handler
func NewHelp(bindings []key.Binding) *Help {
	return &Help{bindings: bindings}
}

// Lines returns the rendered help lines
func (h *Help) Lines() []string {
	lines := []string{"Keybindings", ""}
	for _, b := range h.bindings {
		help := b.Help()
		if help.Key == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-8s %s", help.Key, help.Desc))
	}
	return append(lines, "", "Press q to close")
}

// BindData writes as many lines as fit inside the border
func (h *Help) BindData(w *Window) error {
	height, width := w.Surface().Size()
	x, y := 2, 1
	if height < 3 || width <= x+1 {
		return nil
	}
	for i, line := range h.Lines() {
		if y+i >= height-1 {
			break
		}
		line = runewidth.Truncate(line, width-x-1, "…")
		if err := w.Write(line, x, y+i); err != nil {
			return err
		}
	}
	return nil
}

// OnKeyPressed closes help on the quit key
func (h *Help) OnKeyPressed(w *Window) (bool, error) {
	k, err := w.ReadKey()
	if err != nil {
		return false, err
	}
	return key.Matches(k, w.Env().Keys.Quit), nil
}
