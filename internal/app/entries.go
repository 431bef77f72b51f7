package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/kmacinski/harvest/internal/harvest"
	"github.com/kmacinski/harvest/internal/ui"
	"github.com/kmacinski/harvest/internal/window"
)

var _ window.Handler = (*entriesWindow)(nil)

// entriesWindow lists time entries, scrolling to keep the focus visible
type entriesWindow struct {
	*window.StringList[harvest.TimeEntry]
	offset int
	clip   func(string) error
}

func newEntriesWindow(env *window.Env, entries []harvest.TimeEntry, focus ui.PairID, clip func(string) error) *entriesWindow {
	list := window.NewProjectedList(env, entries, entryLine)
	list.FocusPair = focus
	return &entriesWindow{StringList: list, clip: clip}
}

// entryLine renders the id first; the rest is dropped when the row is narrow.
func entryLine(e harvest.TimeEntry) string {
	parts := []string{strconv.FormatInt(e.ID, 10)}
	if e.SpentDate != "" {
		parts = append(parts, e.SpentDate)
	}
	parts = append(parts, fmt.Sprintf("%5.2fh", e.Hours))
	if e.Project.Name != "" {
		parts = append(parts, e.Project.Name)
	}
	if notes, _, _ := strings.Cut(e.Notes, "\n"); notes != "" {
		parts = append(parts, notes)
	}
	return strings.Join(parts, "  ")
}

func (e *entriesWindow) ensureVisible(height int) {
	if height < 1 {
		height = 1
	}
	focus := e.Focus()
	if focus < e.offset {
		e.offset = focus
	} else if focus >= e.offset+height {
		e.offset = focus - height + 1
	}
}

// BindData renders the rows that fit, starting at the scroll offset
func (e *entriesWindow) BindData(w *window.Window) error {
	height, width := w.Surface().Size()
	if width < 2 {
		return nil
	}
	e.ensureVisible(height)

	items := e.Items()
	for row := 0; row < height && e.offset+row < len(items); row++ {
		i := e.offset + row
		txt := fit(e.Display(items[i]), width-1)

		var err error
		if i == e.Focus() {
			err = w.WritePair(txt, 1, row, e.FocusPair)
		} else {
			err = w.Write(txt, 1, row)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// OnKeyPressed copies the focused id on yank, otherwise navigates
func (e *entriesWindow) OnKeyPressed(w *window.Window) (bool, error) {
	k, err := w.ReadKey()
	if err != nil {
		return false, err
	}
	if key.Matches(k, w.Env().Keys.Yank) {
		e.yank(w)
		return false, nil
	}
	return e.HandleKey(k), nil
}

func (e *entriesWindow) yank(w *window.Window) {
	entry, ok := e.Selected()
	if !ok {
		return
	}
	id := strconv.FormatInt(entry.ID, 10)
	if err := e.clip(id); err != nil {
		w.Logger().Warn("copy to clipboard failed", "id", id, "error", err)
		return
	}
	w.Logger().Info("copied entry id", "id", id)
}
