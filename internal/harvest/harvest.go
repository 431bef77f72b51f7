package harvest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// DateLayout is the API's date format
const DateLayout = "2006-01-02"

// ErrMissingCredentials is returned when the token or account id is empty
var ErrMissingCredentials = errors.New("missing harvest credentials")

// Ref is a named reference to another record
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TimeEntry represents one tracked time entry
type TimeEntry struct {
	ID        int64   `json:"id"`
	SpentDate string  `json:"spent_date"`
	Hours     float64 `json:"hours"`
	Notes     string  `json:"notes"`
	IsRunning bool    `json:"is_running"`
	Project   Ref     `json:"project"`
	Task      Ref     `json:"task"`
	Client    Ref     `json:"client"`
}

// Credentials identify a personal access token and its account
type Credentials struct {
	AccountID string
	Token     string
}

// Validate reports missing fields
func (c Credentials) Validate() error {
	if c.AccountID == "" || c.Token == "" {
		return ErrMissingCredentials
	}
	return nil
}

// Range is an inclusive span of days
type Range struct {
	Label string
	From  time.Time
	To    time.Time
}

// Day returns the range covering the day of t
func Day(t time.Time) Range {
	d := truncateDay(t)
	return Range{Label: d.Format(DateLayout), From: d, To: d}
}

// Week returns the Monday-to-Sunday range containing t
func Week(t time.Time) Range {
	d := truncateDay(t)
	offset := (int(d.Weekday()) + 6) % 7
	from := d.AddDate(0, 0, -offset)
	to := from.AddDate(0, 0, 6)
	return Range{
		Label: fmt.Sprintf("%s – %s", from.Format(DateLayout), to.Format(DateLayout)),
		From:  from,
		To:    to,
	}
}

// Month returns the range covering a calendar month
func Month(year int, month time.Month) Range {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return Range{Label: from.Format("January 2006"), From: from, To: to}
}

// Contains reports whether date (YYYY-MM-DD) falls in the range
func (r Range) Contains(date string) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return !d.Before(truncateDay(r.From)) && !d.After(truncateDay(r.To))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Source provides time entries
type Source interface {
	TimeEntries(ctx context.Context, r Range) ([]TimeEntry, error)
}

// Static serves entries held in memory
type Static []TimeEntry

// TimeEntries returns the entries spent within r, in order
func (s Static) TimeEntries(_ context.Context, r Range) ([]TimeEntry, error) {
	var out []TimeEntry
	for _, e := range s {
		if r.Contains(e.SpentDate) {
			out = append(out, e)
		}
	}
	return out, nil
}

// LoadFile reads entries from a JSON file shaped like an API page
func LoadFile(path string) (Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	var page timeEntriesPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("parse entries %s: %w", path, err)
	}
	return Static(page.TimeEntries), nil
}
