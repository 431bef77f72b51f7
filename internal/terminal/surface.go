// Package terminal adapts a tcell screen into rectangular drawing surfaces
// with blocking key reads.
package terminal

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/kmacinski/harvest/internal/keys"
	"github.com/mattn/go-runewidth"
)

var (
	// ErrOutOfBounds is returned for positions or rectangles outside a surface.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInputClosed is returned by ReadKey once the screen stops delivering events.
	ErrInputClosed = errors.New("terminal input closed")
	// ErrControlRune is returned for text containing tabs, newlines or other
	// control characters, which have no cell representation.
	ErrControlRune = errors.New("control character in text")
)

// Surface is a rectangular region of a screen with its own origin and
// background style.
type Surface struct {
	screen tcell.Screen
	y, x   int
	height int
	width  int
	bg     tcell.Style
}

// NewSurface creates a surface of the given size at (originY, originX).
// When height and width are both zero the surface covers the whole screen
// as measured now.
func NewSurface(screen tcell.Screen, height, width, originY, originX int) (*Surface, error) {
	sw, sh := screen.Size()
	if height == 0 && width == 0 {
		height, width = sh, sw
	}
	if height <= 0 || width <= 0 || originY < 0 || originX < 0 ||
		originY+height > sh || originX+width > sw {
		return nil, fmt.Errorf("surface %dx%d at (%d,%d) on %dx%d screen: %w",
			height, width, originY, originX, sh, sw, ErrOutOfBounds)
	}
	return &Surface{
		screen: screen,
		y:      originY,
		x:      originX,
		height: height,
		width:  width,
		bg:     tcell.StyleDefault,
	}, nil
}

// Size returns the surface height and width.
func (s *Surface) Size() (height, width int) {
	return s.height, s.width
}

// Write puts text at column x, row y using the background style.
func (s *Surface) Write(text string, x, y int) error {
	return s.WriteStyled(text, x, y, s.bg)
}

// WriteStyled puts text at column x, row y. Nothing is written when the
// position is outside the surface, the text runs past the right edge or it
// contains a control character. Zero-width runes such as combining marks
// take no cell and are dropped.
func (s *Surface) WriteStyled(text string, x, y int, style tcell.Style) error {
	if i := strings.IndexFunc(text, unicode.IsControl); i >= 0 {
		return fmt.Errorf("write %q at (%d,%d): rune %U: %w", text, x, y, []rune(text[i:])[0], ErrControlRune)
	}
	if x < 0 || y < 0 || x >= s.width || y >= s.height ||
		x+runewidth.StringWidth(text) > s.width {
		return fmt.Errorf("write %q at (%d,%d) on %dx%d surface: %w",
			text, x, y, s.height, s.width, ErrOutOfBounds)
	}
	col := s.x + x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.screen.SetContent(col, s.y+y, r, nil, style)
		col += w
	}
	return nil
}

// Clear blanks the surface with the background style.
func (s *Surface) Clear() {
	s.fill(s.bg)
}

// SetBackground fills the surface with spaces in style and makes it the
// default for later clears and unstyled writes.
func (s *Surface) SetBackground(style tcell.Style) {
	s.bg = style
	s.fill(style)
}

// DrawBorder outlines the surface edges with the given characters and
// '+' corners.
func (s *Surface) DrawBorder(vertical, horizontal rune) {
	top, bottom := s.y, s.y+s.height-1
	left, right := s.x, s.x+s.width-1
	for col := left; col <= right; col++ {
		s.screen.SetContent(col, top, horizontal, nil, s.bg)
		s.screen.SetContent(col, bottom, horizontal, nil, s.bg)
	}
	for row := top; row <= bottom; row++ {
		s.screen.SetContent(left, row, vertical, nil, s.bg)
		s.screen.SetContent(right, row, vertical, nil, s.bg)
	}
	for _, c := range [][2]int{{left, top}, {right, top}, {left, bottom}, {right, bottom}} {
		s.screen.SetContent(c[0], c[1], '+', nil, s.bg)
	}
}

// Refresh flushes pending content to the display.
func (s *Surface) Refresh() {
	s.screen.Show()
}

// ReadKey blocks until a key is pressed. Resize events redraw the screen
// and are otherwise ignored.
func (s *Surface) ReadKey() (keys.Key, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return 0, ErrInputClosed
		case *tcell.EventKey:
			return keys.FromEvent(ev), nil
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

func (s *Surface) fill(style tcell.Style) {
	for row := s.y; row < s.y+s.height; row++ {
		for col := s.x; col < s.x+s.width; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}
