package app

import (
	"time"

	"github.com/kmacinski/harvest/internal/harvest"
)

// RangeKind selects which span of entries the main window loads
type RangeKind int

const (
	RangeToday RangeKind = iota
	RangeWeek
	RangeMonth
)

func (k RangeKind) String() string {
	switch k {
	case RangeToday:
		return "today"
	case RangeWeek:
		return "week"
	case RangeMonth:
		return "month"
	}
	return "unknown"
}

// ParseRangeKind accepts the names returned by RangeKind.String
func ParseRangeKind(s string) (RangeKind, bool) {
	for _, k := range []RangeKind{RangeToday, RangeWeek, RangeMonth} {
		if k.String() == s {
			return k, true
		}
	}
	return RangeToday, false
}

// State holds the main window selection
type State struct {
	// Selection
	Range RangeKind
	Month time.Time // first day of the selected month

	// Last load
	Message string
	Loaded  int
}

// NewState creates a new state with defaults
func NewState(now time.Time) *State {
	return &State{
		Range: RangeToday,
		Month: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
}

// SelectRange changes the selected range
func (s *State) SelectRange(k RangeKind) {
	s.Range = k
}

// SelectMonth selects the month range for year and month
func (s *State) SelectMonth(year int, month time.Month) {
	s.Month = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	s.Range = RangeMonth
}

// ShiftMonth moves the selected month and selects the month range
func (s *State) ShiftMonth(delta int) {
	s.Month = s.Month.AddDate(0, delta, 0)
	s.Range = RangeMonth
}

// CurrentRange returns the range to load, relative to now
func (s *State) CurrentRange(now time.Time) harvest.Range {
	switch s.Range {
	case RangeWeek:
		return harvest.Week(now)
	case RangeMonth:
		return harvest.Month(s.Month.Year(), s.Month.Month())
	}
	return harvest.Day(now)
}
