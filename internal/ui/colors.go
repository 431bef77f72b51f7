package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// PairID identifies a registered foreground/background color pair.
type PairID int

// Default color pairs. NoPair means no attribute override.
const (
	NoPair PairID = iota
	BlackOnWhite
	WhiteOnBlack
	WhiteOnGreen
)

func (p PairID) String() string {
	switch p {
	case NoPair:
		return "none"
	case BlackOnWhite:
		return "black_on_white"
	case WhiteOnBlack:
		return "white_on_black"
	case WhiteOnGreen:
		return "white_on_green"
	}
	return fmt.Sprintf("pair(%d)", int(p))
}

// ParsePairID accepts the names returned by PairID.String.
func ParsePairID(name string) (PairID, error) {
	for _, id := range []PairID{NoPair, BlackOnWhite, WhiteOnBlack, WhiteOnGreen} {
		if id.String() == name {
			return id, nil
		}
	}
	return NoPair, fmt.Errorf("%w: %q", ErrUnknownPair, name)
}

// Pair is a foreground/background color combination. Colors use lipgloss
// notation: an ANSI index ("0".."255"), a hex value ("#rrggbb"), or a
// color name understood by tcell.
type Pair struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
}

// Palette maps pair identifiers to their colors
type Palette map[PairID]Pair

// DefaultPalette returns the default color pairs
var DefaultPalette = Palette{
	BlackOnWhite: {Foreground: lipgloss.Color("0"), Background: lipgloss.Color("7")},
	WhiteOnBlack: {Foreground: lipgloss.Color("7"), Background: lipgloss.Color("0")},
	WhiteOnGreen: {Foreground: lipgloss.Color("7"), Background: lipgloss.Color("2")},
}

// Merge returns a copy of p with the entries of overrides applied on top.
// Empty colors in an override keep the value from p.
func (p Palette) Merge(overrides Palette) Palette {
	out := make(Palette, len(p)+len(overrides))
	for id, pair := range p {
		out[id] = pair
	}
	for id, pair := range overrides {
		cur := out[id]
		if pair.Foreground != "" {
			cur.Foreground = pair.Foreground
		}
		if pair.Background != "" {
			cur.Background = pair.Background
		}
		out[id] = cur
	}
	return out
}

// Style converts the pair into a tcell style.
func (p Pair) Style() (tcell.Style, error) {
	fg, err := toTCell(p.Foreground)
	if err != nil {
		return tcell.StyleDefault, err
	}
	bg, err := toTCell(p.Background)
	if err != nil {
		return tcell.StyleDefault, err
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg), nil
}

func toTCell(c lipgloss.Color) (tcell.Color, error) {
	s := strings.TrimSpace(string(c))
	if s == "" || s == "default" {
		return tcell.ColorDefault, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return tcell.ColorDefault, fmt.Errorf("ansi color %d out of range", n)
		}
		return tcell.PaletteColor(n), nil
	}
	color := tcell.GetColor(strings.ToLower(s))
	if color == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
	}
	return color, nil
}
