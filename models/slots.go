package models

import (
	"fmt"
	"strings"
	"time"
)

// TimeSlot is an offerable appointment start time as shown to the customer.
type TimeSlot struct {
	Start time.Time `json:"start"`
	Label string    `json:"label"` // e.g. "9:30 AM"
}

// NewTimeSlot builds a TimeSlot with its display label.
func NewTimeSlot(start time.Time) TimeSlot {
	return TimeSlot{Start: start, Label: start.Format("3:04 PM")}
}

// TimeOfDay is an hour/minute pair picked on the selected date.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParseTimeOfDay parses "HH:MM" (24h).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// On returns the instant of the time of day on the given date's calendar day.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
