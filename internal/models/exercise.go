package models

import (
	"fmt"
	"strings"
	"time"
)

// CalendarLayout renders a date as "Mon Jan 02 2006".
const CalendarLayout = "Mon Jan 02 2006"

// Exercise is a single logged activity belonging to a user.
type Exercise struct {
	ID          string    `json:"-"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"` // minutes
	Date        time.Time `json:"date"`
}

// ExerciseFilter narrows a log query. Zero values mean "unbounded".
type ExerciseFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// Matches reports whether t lies within the filter's inclusive date range.
func (f ExerciseFilter) Matches(t time.Time) bool {
	if f.From != nil && t.Before(*f.From) {
		return false
	}
	if f.To != nil && t.After(*f.To) {
		return false
	}
	return true
}

// CalendarDate formats t in UTC as a calendar string.
func CalendarDate(t time.Time) string {
	return t.UTC().Format(CalendarLayout)
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// ParseDate accepts a date-only string (UTC midnight) or an RFC 3339 style
// timestamp. Timestamps without a zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or an RFC 3339 timestamp", s)
}
