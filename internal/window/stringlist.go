package window

import "github.com/kmacinski/harvest/internal/ui"

var _ Handler = (*StringList[string])(nil)

// StringList renders one line per item, highlighting the focused one
type StringList[T any] struct {
	*List[T]

	// FocusPair styles the focused row.
	FocusPair ui.PairID

	display func(T) string
}

// NewStringList creates a list window handler for plain strings
func NewStringList(env *Env, items []string) *StringList[string] {
	return NewProjectedList(env, items, func(s string) string { return s })
}

// NewProjectedList creates a list window handler whose rows are display(item)
func NewProjectedList[T any](env *Env, items []T, display func(T) string) *StringList[T] {
	return &StringList[T]{
		List:      NewList(env, items),
		FocusPair: ui.BlackOnWhite,
		display:   display,
	}
}

// Display returns the row text of item
func (s *StringList[T]) Display(item T) string {
	return s.display(item)
}

// BindData writes item i at column 1 of row i
func (s *StringList[T]) BindData(w *Window) error {
	for i, item := range s.items {
		txt := s.display(item)
		s.log.Debug("rendering item", "text", txt, "index", i)

		var err error
		if i == s.focus {
			err = w.WritePair(txt, 1, i, s.FocusPair)
		} else {
			err = w.Write(txt, 1, i)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
