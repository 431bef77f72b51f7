package app

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/kmacinski/harvest/internal/harvest"
	"github.com/kmacinski/harvest/internal/ui"
	"github.com/kmacinski/harvest/internal/window"
	"github.com/mattn/go-runewidth"
)

const defaultFetchTimeout = 30 * time.Second

var _ window.Handler = (*MainWindow)(nil)

// MainConfig configures the main window
type MainConfig struct {
	Source    harvest.Source
	State     *State
	FocusPair ui.PairID
	Caption   string
	Clip      func(string) error // defaults to the system clipboard
	Now       func() time.Time
	Timeout   time.Duration
}

// MainWindow shows the entry ranges and opens the entries of the selected
// one in a nested list window
type MainWindow struct {
	cfg   MainConfig
	state *State

	status       *window.StatusBar
	statusWindow *window.Window
}

// NewMainWindow creates the main window handler
func NewMainWindow(cfg MainConfig) *MainWindow {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Clip == nil {
		cfg.Clip = clipboard.WriteAll
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultFetchTimeout
	}
	if cfg.FocusPair == ui.NoPair {
		cfg.FocusPair = ui.BlackOnWhite
	}
	if cfg.Caption == "" {
		cfg.Caption = "harvest"
	}
	if cfg.State == nil {
		cfg.State = NewState(cfg.Now())
	}
	return &MainWindow{cfg: cfg, state: cfg.State}
}

// MainOptions returns the layout of the main window
func MainOptions() window.Options {
	return window.Options{
		Background: ui.BlackOnWhite,
		StatusBar:  true,
	}
}

// MainRoot returns a RootFunc starting on the main window
func MainRoot(cfg MainConfig) RootFunc {
	return func(env *window.Env) (Root, error) {
		return Root{
			Name:    "main",
			Handler: NewMainWindow(cfg),
			Options: MainOptions(),
		}, nil
	}
}

// State returns the window's selection state
func (m *MainWindow) State() *State {
	return m.state
}

// BindData renders the range menu, the last message and the status bar
func (m *MainWindow) BindData(w *window.Window) error {
	height, width := w.Surface().Size()
	body := height
	if w.Options().StatusBar {
		body--
	}
	now := m.cfg.Now()

	lines := []struct {
		y    int
		text string
		pair ui.PairID
	}{
		{0, "Time entries", ui.NoPair},
		{2, m.rangeLine(RangeToday, "[1] today", harvest.Day(now).Label), m.rangePair(RangeToday)},
		{3, m.rangeLine(RangeWeek, "[2] this week", harvest.Week(now).Label), m.rangePair(RangeWeek)},
		{4, m.rangeLine(RangeMonth, "[3] month", m.monthLabel()), m.rangePair(RangeMonth)},
		{6, "any other key: load entries   ?: help   q: quit", ui.NoPair},
		{8, m.state.Message, ui.NoPair},
	}
	for _, l := range lines {
		if l.y >= body || l.text == "" {
			continue
		}
		if err := w.WritePair(fit(l.text, width-1), 1, l.y, l.pair); err != nil {
			return err
		}
	}

	if w.Options().StatusBar && height > 1 {
		return m.drawStatusBar(w, height, width, now)
	}
	return nil
}

func (m *MainWindow) rangeLine(k RangeKind, name, label string) string {
	marker := " "
	if m.state.Range == k {
		marker = ">"
	}
	return fmt.Sprintf("%s %-14s %s", marker, name, label)
}

func (m *MainWindow) rangePair(k RangeKind) ui.PairID {
	if m.state.Range == k {
		return ui.WhiteOnGreen
	}
	return ui.NoPair
}

func (m *MainWindow) monthLabel() string {
	return harvest.Month(m.state.Month.Year(), m.state.Month.Month()).Label + "  (←/→)"
}

// drawStatusBar frames a one-row status window on the bottom line. The
// window is created on the first frame; its loop is never started.
func (m *MainWindow) drawStatusBar(w *window.Window, height, width int, now time.Time) error {
	if m.statusWindow == nil {
		m.status = window.NewStatusBar("", 0)
		sw, err := window.New(w.Env(), "status", m.status, window.StatusBarOptions(height, width))
		if err != nil {
			return err
		}
		m.statusWindow = sw
	}
	caption := fmt.Sprintf(" %s │ %s │ %s", m.cfg.Caption, m.state.CurrentRange(now).Label, m.state.Range)
	if m.state.Loaded > 0 {
		caption += fmt.Sprintf(" │ %d loaded", m.state.Loaded)
	}
	m.status.Caption = fit(caption, width)
	return m.statusWindow.Frame()
}

// OnKeyPressed quits, opens help, changes the range or loads entries
func (m *MainWindow) OnKeyPressed(w *window.Window) (bool, error) {
	k, err := w.ReadKey()
	if err != nil {
		return false, err
	}

	km := w.Env().Keys
	switch {
	case key.Matches(k, km.Quit):
		return true, nil
	case key.Matches(k, km.Help):
		return false, m.openHelp(w)
	case key.Matches(k, km.RangeToday):
		m.state.SelectRange(RangeToday)
	case key.Matches(k, km.RangeWeek):
		m.state.SelectRange(RangeWeek)
	case key.Matches(k, km.RangeMonth):
		m.state.SelectRange(RangeMonth)
	case key.Matches(k, km.PrevMonth):
		m.state.ShiftMonth(-1)
	case key.Matches(k, km.NextMonth):
		m.state.ShiftMonth(1)
	default:
		return false, m.openEntries(w)
	}
	return false, nil
}

func (m *MainWindow) openHelp(w *window.Window) error {
	help := window.NewHelp(w.Env().Keys.HelpBindings())
	sh, sw := w.Surface().Size()
	h := min(len(help.Lines())+2, sh)
	wd := min(44, sw)
	return w.Spawn("help", help, window.Options{
		Height:     h,
		Width:      wd,
		OriginY:    (sh - h) / 2,
		OriginX:    (sw - wd) / 2,
		Background: ui.WhiteOnBlack,
		Borders:    true,
	})
}

// openEntries fetches the selected range and runs the entries window. A
// failed fetch is reported on the main window instead of ending the loop.
func (m *MainWindow) openEntries(w *window.Window) error {
	r := m.state.CurrentRange(m.cfg.Now())
	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.Timeout)
	entries, err := m.cfg.Source.TimeEntries(ctx, r)
	cancel()
	if err != nil {
		w.Logger().Error("loading time entries failed", "range", r.Label, "error", err)
		m.state.Message = "could not load entries: " + err.Error()
		return nil
	}

	w.Logger().Info("loaded time entries", "range", r.Label, "count", len(entries))
	m.state.Loaded = len(entries)
	m.state.Message = fmt.Sprintf("%d entries for %s", len(entries), r.Label)

	list := newEntriesWindow(w.Env(), entries, m.cfg.FocusPair, m.cfg.Clip)
	return w.Spawn("time entries", list, window.Options{Background: ui.WhiteOnBlack})
}

// fit makes text writable on one row of width cells: control characters
// become spaces and overlong text is cut with an ellipsis.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)
	return runewidth.Truncate(text, width, "…")
}
