// Package models defines the maintenance logbook data types shared by the
// log store, the export format and the terminal front end.
package models

import (
	"errors"
	"strings"
	"time"
)

// DayLayout is the calendar date layout used for date and nextDue.
const DayLayout = "2006-01-02"

// DisplayDayLayout renders dates the way the statistics panel shows them.
const DisplayDayLayout = "Jan 2, 2006"

var ErrInvalidDate = errors.New("invalid date")

// MaintenanceEntry is one serviced, repaired or inspected event.
//
// Optional fields are pointers so that a missing value round-trips as JSON
// null. Mileage and cost are kept as text exactly as the user typed them.
type MaintenanceEntry struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Type        MaintenanceType `json:"type"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Notes       *string         `json:"notes"`
	Mileage     *string         `json:"mileage"`
	Cost        *string         `json:"cost"`
	NextDue     *string         `json:"nextDue"`
}

// DueAt reports the parsed nextDue instant. The second result is false when
// nextDue is unset or cannot be parsed.
func (e MaintenanceEntry) DueAt() (time.Time, bool) {
	if e.NextDue == nil || *e.NextDue == "" {
		return time.Time{}, false
	}
	t, err := ParseDay(*e.NextDue)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Matches reports whether term occurs, case-insensitively, in the
// description, notes or type. A missing field never matches.
func (e MaintenanceEntry) Matches(term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(e.Description), term) {
		return true
	}
	if e.Notes != nil && strings.Contains(strings.ToLower(*e.Notes), term) {
		return true
	}
	return strings.Contains(strings.ToLower(string(e.Type)), term)
}

// ParseDay parses a calendar date (YYYY-MM-DD, read as UTC midnight) or a
// full RFC 3339 instant.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DayLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

// FormatDay renders s with DisplayDayLayout. Unparseable input yields
// "Invalid Date".
func FormatDay(s string) string {
	t, err := ParseDay(s)
	if err != nil {
		return "Invalid Date"
	}
	return t.UTC().Format(DisplayDayLayout)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value behind p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
