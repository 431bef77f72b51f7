package ui

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
)

var (
	// ErrNotRegistered is returned by Resolve before RegisterDefaults ran.
	ErrNotRegistered = errors.New("color pairs not registered")
	// ErrAlreadyRegistered is returned by a second RegisterDefaults call.
	ErrAlreadyRegistered = errors.New("color pairs already registered")
	// ErrUnknownPair is returned for identifiers absent from the table.
	ErrUnknownPair = errors.New("unknown color pair")
)

// Registry maps pair identifiers to terminal styles. It is filled once by
// RegisterDefaults and read-only afterwards.
type Registry struct {
	palette Palette
	styles  map[PairID]tcell.Style
}

// NewRegistry creates a registry for the default pairs, with the colors of
// palette applied on top of DefaultPalette.
func NewRegistry(palette Palette) *Registry {
	return &Registry{palette: DefaultPalette.Merge(palette)}
}

// RegisterDefaults installs every pair of the palette. A second call is
// rejected with ErrAlreadyRegistered and leaves the table untouched.
func (r *Registry) RegisterDefaults() error {
	if r.styles != nil {
		return ErrAlreadyRegistered
	}

	ids := make([]PairID, 0, len(r.palette))
	for id := range r.palette {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	styles := make(map[PairID]tcell.Style, len(ids))
	for _, id := range ids {
		if id <= NoPair {
			return fmt.Errorf("register %s: identifier must be positive", id)
		}
		style, err := r.palette[id].Style()
		if err != nil {
			return fmt.Errorf("register %s: %w", id, err)
		}
		styles[id] = style
	}
	r.styles = styles
	return nil
}

// Registered reports whether RegisterDefaults has completed.
func (r *Registry) Registered() bool {
	return r.styles != nil
}

// Resolve returns the style registered for id.
func (r *Registry) Resolve(id PairID) (tcell.Style, error) {
	if r.styles == nil {
		return tcell.StyleDefault, fmt.Errorf("resolve %s: %w", id, ErrNotRegistered)
	}
	style, ok := r.styles[id]
	if !ok {
		return tcell.StyleDefault, fmt.Errorf("resolve %s: %w", id, ErrUnknownPair)
	}
	return style, nil
}
