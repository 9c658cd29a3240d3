package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// WindowDays is the number of dates shown at once.
const WindowDays = 7

// DateWindow is a page of consecutive candidate dates, today first on creation.
type DateWindow [WindowDays]time.Time

// Direction pages a DateWindow.
type Direction int

const (
	Forward Direction = iota + 1
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection accepts the names the booking UI sends for its arrows.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "next", "right":
		return Forward, nil
	case "backward", "back", "prev", "previous", "left":
		return Backward, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// NormalizeDay returns midnight of t's calendar day in t's location.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day, compared in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// NewDateWindow returns the WindowDays dates starting at reference's day.
func NewDateWindow(reference time.Time) DateWindow {
	var w DateWindow
	day := NormalizeDay(reference)
	for i := range w {
		w[i] = day.AddDate(0, 0, i)
	}
	return w
}

// Shift returns a new window with every date moved by WindowDays in the given direction.
// The input window is not modified.
func Shift(w DateWindow, dir Direction) DateWindow {
	offset := WindowDays
	if dir == Backward {
		offset = -WindowDays
	}
	var out DateWindow
	for i, d := range w {
		out[i] = d.AddDate(0, 0, offset)
	}
	return out
}

// Start is the first date of the window.
func (w DateWindow) Start() time.Time {
	return w[0]
}

// Contains reports whether t's day is one of the window's dates.
func (w DateWindow) Contains(t time.Time) bool {
	for _, d := range w {
		if SameDay(d, t) {
			return true
		}
	}
	return false
}

// Dates returns the window as a slice for rendering.
func (w DateWindow) Dates() []time.Time {
	out := make([]time.Time, len(w))
	copy(out, w[:])
	return out
}
