package window

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/kmacinski/harvest/internal/keys"
	"github.com/kmacinski/harvest/internal/logging"
)

// List tracks the focused item of a list window. The focus index stays in
// [0, Len()) while the list is non-empty and only moves one step per key.
type List[T any] struct {
	items  []T
	focus  int
	keymap keys.KeyMap
	log    *slog.Logger
}

// NewList creates a list focused on its first item
func NewList[T any](env *Env, items []T) *List[T] {
	log := logging.Component(env.Log, "list")
	log.Info("list data", "items", len(items))
	return &List[T]{
		items:  items,
		keymap: env.Keys,
		log:    log,
	}
}

// Items returns the list items
func (l *List[T]) Items() []T {
	return l.items
}

// Len returns the number of items
func (l *List[T]) Len() int {
	return len(l.items)
}

// Focus returns the focused index
func (l *List[T]) Focus() int {
	return l.focus
}

// Selected returns the focused item, if any
func (l *List[T]) Selected() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[l.focus], true
}

// HandleKey applies one key and reports whether the window should close.
// Quit wins over navigation; unknown keys do nothing.
func (l *List[T]) HandleKey(k keys.Key) bool {
	if key.Matches(k, l.keymap.Quit) {
		return true
	}
	switch {
	case key.Matches(k, l.keymap.Up):
		l.FocusUp()
	case key.Matches(k, l.keymap.Down):
		l.FocusDown()
	}
	return false
}

// FocusUp moves focus one item up, stopping at the first item.
func (l *List[T]) FocusUp() {
	if l.focus > 0 {
		l.focus--
		l.log.Info("focus changed", "focus", l.focus)
		return
	}
	l.log.Debug("focus at top limit", "focus", l.focus)
}

// FocusDown moves focus one item down, stopping at the last item.
func (l *List[T]) FocusDown() {
	if l.focus+1 < len(l.items) {
		l.focus++
		l.log.Info("focus changed", "focus", l.focus)
		return
	}
	l.log.Debug("focus at bottom limit", "focus", l.focus)
}

// OnKeyPressed reads one key and applies it.
func (l *List[T]) OnKeyPressed(w *Window) (bool, error) {
	k, err := w.ReadKey()
	if err != nil {
		return false, err
	}
	return l.HandleKey(k), nil
}
