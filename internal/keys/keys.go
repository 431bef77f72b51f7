package keys

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/gdamore/tcell/v2"
)

// Key is a decoded key code. Printable characters carry their rune value,
// every other key lives above the Unicode range so the two never collide.
type Key int

// special is the first code of the reserved range for non-rune keys.
const special Key = unicode.MaxRune + 1

// Special keys, derived from tcell's own key constants.
const (
	KeyUp    = special + Key(tcell.KeyUp)
	KeyDown  = special + Key(tcell.KeyDown)
	KeyLeft  = special + Key(tcell.KeyLeft)
	KeyRight = special + Key(tcell.KeyRight)
	KeyEnter = special + Key(tcell.KeyEnter)
	KeyCtrlC = special + Key(tcell.KeyCtrlC)
)

// KeyQuit is the code of the quit key, 'q' (113).
const KeyQuit = Key('q')

// FromEvent decodes a tcell key event.
func FromEvent(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return Key(ev.Rune())
	}
	return special + Key(ev.Key())
}

// Special reports whether k is outside the printable range.
func (k Key) Special() bool {
	return k >= special
}

// String returns the name used by key bindings: the character itself for
// printable keys, lowercase names such as "up" or "ctrl+c" otherwise.
func (k Key) String() string {
	if !k.Special() {
		return string(rune(k))
	}
	if name, ok := tcell.KeyNames[tcell.Key(k-special)]; ok {
		return strings.ReplaceAll(strings.ToLower(name), "-", "+")
	}
	return fmt.Sprintf("key(%d)", int(k-special))
}

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Quit      key.Binding
	Interrupt key.Binding
	Help      key.Binding
	Yank      key.Binding

	// Entry ranges
	RangeToday key.Binding
	RangeWeek  key.Binding
	RangeMonth key.Binding
	PrevMonth  key.Binding
	NextMonth  key.Binding
}

// DefaultKeyMap returns the default keybindings
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑/↓", "move focus"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↑/↓", "move focus"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit / close window"),
	),
	Interrupt: key.NewBinding(
		key.WithKeys(KeyCtrlC.String()),
		key.WithHelp("ctrl+c", "exit from any window"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy entry id"),
	),
	RangeToday: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "today"),
	),
	RangeWeek: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "current week"),
	),
	RangeMonth: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "month"),
	),
	PrevMonth: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←/→", "previous/next month"),
	),
	NextMonth: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("←/→", "previous/next month"),
	),
}

// HelpBindings returns the keybindings to display in help
func (km KeyMap) HelpBindings() []key.Binding {
	return []key.Binding{
		km.Up,
		km.Quit,
		km.Interrupt,
		km.Help,
		km.Yank,
		km.RangeToday,
		km.RangeWeek,
		km.RangeMonth,
		km.PrevMonth,
	}
}
