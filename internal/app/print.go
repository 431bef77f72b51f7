package app

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/kmacinski/harvest/internal/harvest"
	"github.com/kmacinski/harvest/internal/ui"
)

var tableHeaders = []string{"ID", "Date", "Project", "Task", "Hours", "Notes"}

// Print writes the entries of r as a table, without touching the terminal
// mode.
func Print(ctx context.Context, out io.Writer, src harvest.Source, r harvest.Range, styles ui.Styles) error {
	entries, err := src.TimeEntries(ctx, r)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(entries))
	var total float64
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.SpentDate,
			e.Project.Name,
			e.Task.Name,
			strconv.FormatFloat(e.Hours, 'f', 2, 64),
			e.Notes,
		})
		total += e.Hours
	}

	_, err = fmt.Fprintf(out, "%s\n%s\ntotal %.2fh\n", r.Label, styles.RenderTable(tableHeaders, rows), total)
	return err
}
