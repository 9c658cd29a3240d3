package scheduling

import (
	"time"

	"garagat/models"
)

const (
	DefaultInterval = 30 * time.Minute
	DefaultLeadTime = time.Hour
)

// DefaultHours is used when a provider does not publish its own hours.
var DefaultHours = models.OperatingHours{StartHour: 8, EndHour: 22}

// Policy holds everything slot generation depends on apart from the date and the clock.
type Policy struct {
	Hours    models.OperatingHours
	Interval time.Duration
	// LeadTime is the minimum gap between now and a same-day slot.
	LeadTime time.Duration
}

// ValidateHours checks the OperatingHours invariant.
func ValidateHours(h models.OperatingHours) error {
	if h.StartHour < 0 || h.StartHour > 23 {
		return newConfigurationError("startHour", "must be within [0,23], got %d", h.StartHour)
	}
	if h.EndHour < 0 || h.EndHour > 23 {
		return newConfigurationError("endHour", "must be within [0,23], got %d", h.EndHour)
	}
	if h.StartHour >= h.EndHour {
		return newConfigurationError("operatingHours", "start hour %d must be before end hour %d", h.StartHour, h.EndHour)
	}
	return nil
}

// NewPolicy validates the configuration once so Slots never has to.
func NewPolicy(hours models.OperatingHours, interval, leadTime time.Duration) (Policy, error) {
	if err := ValidateHours(hours); err != nil {
		return Policy{}, err
	}
	if interval <= 0 {
		return Policy{}, newConfigurationError("interval", "must be positive, got %s", interval)
	}
	if time.Hour%interval != 0 {
		return Policy{}, newConfigurationError("interval", "must divide an hour evenly, got %s", interval)
	}
	if interval%DefaultInterval != 0 {
		return Policy{}, newConfigurationError("interval", "must be a multiple of %s, got %s", DefaultInterval, interval)
	}
	if leadTime < 0 {
		return Policy{}, newConfigurationError("leadTime", "must not be negative, got %s", leadTime)
	}
	return Policy{Hours: hours, Interval: interval, LeadTime: leadTime}, nil
}

// DefaultPolicy is 30 minute slots with a one hour same-day lead time.
func DefaultPolicy(hours models.OperatingHours) (Policy, error) {
	return NewPolicy(hours, DefaultInterval, DefaultLeadTime)
}

// WithHours returns a copy of p using another provider's hours.
func (p Policy) WithHours(hours models.OperatingHours) (Policy, error) {
	return NewPolicy(hours, p.Interval, p.LeadTime)
}

// Slots returns the offerable start times for date, ascending.
//
// On the same calendar day as now only slots strictly later than now+LeadTime are
// offered. Later days offer the whole window and earlier days offer nothing.
// An empty result is a normal outcome.
func (p Policy) Slots(date, now time.Time) []time.Time {
	if p.Interval <= 0 {
		return nil
	}
	day := NormalizeDay(date)
	today := NormalizeDay(now.In(day.Location()))
	if day.Before(today) {
		return nil
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), p.Hours.StartHour, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), p.Hours.EndHour, 0, 0, 0, day.Location())
	sameDay := day.Equal(today)
	minimum := now.Add(p.LeadTime)

	slots := make([]time.Time, 0, int(end.Sub(start)/p.Interval))
	for t := start; t.Before(end); t = t.Add(p.Interval) {
		if sameDay && !t.After(minimum) {
			continue
		}
		slots = append(slots, t)
	}
	return slots
}

// Offers reports whether slot is one of Slots(date, now). The list is rebuilt on every
// call so a slot picked for another date, or one that has since become too close, is rejected.
func (p Policy) Offers(date, slot, now time.Time) bool {
	for _, s := range p.Slots(date, now) {
		if s.Equal(slot) {
			return true
		}
	}
	return false
}

// GenerateSlots uses the default interval and lead time.
func GenerateSlots(date time.Time, hours models.OperatingHours, now time.Time) []time.Time {
	return Policy{Hours: hours, Interval: DefaultInterval, LeadTime: DefaultLeadTime}.Slots(date, now)
}

// TimeSlots wraps slot instants for rendering.
func TimeSlots(instants []time.Time) []models.TimeSlot {
	out := make([]models.TimeSlot, 0, len(instants))
	for _, t := range instants {
		out = append(out, models.NewTimeSlot(t))
	}
	return out
}
