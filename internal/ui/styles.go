package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Styles holds the lipgloss styles used for plain-text output
type Styles struct {
	Border lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Muted  lipgloss.Style
}

// NewStyles creates a new Styles instance from the palette
func NewStyles(p Palette) Styles {
	p = DefaultPalette.Merge(p)
	header := p[WhiteOnGreen]
	return Styles{
		Border: lipgloss.NewStyle().
			Foreground(header.Background),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(header.Background).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Padding(0, 1),
		Muted: lipgloss.NewStyle().
			Faint(true),
	}
}

// DefaultStyles returns styles with the default color palette
var DefaultStyles = NewStyles(nil)

// RenderTable lays out rows under headers inside a rounded border.
func (s Styles) RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return s.Muted.Render("no entries")
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Border).
		BorderRow(true).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			return s.Cell
		})
	return t.String()
}
