package models

import "time"

// StepProgress drives the numbered progress indicator.
type StepProgress struct {
	Step    WizardStep `json:"step"`
	Number  int        `json:"number"`
	Title   string     `json:"title"`
	Reached bool       `json:"reached"`
}

// BookingSummary is shown on the payment step.
type BookingSummary struct {
	Service           string  `json:"service"`
	Vehicle           string  `json:"vehicle,omitempty"`
	DateTime          string  `json:"dateTime,omitempty"` // e.g. "Jun 8, 2024 at 9:30 PM"
	Price             float64 `json:"price"`
	Currency          string  `json:"currency"`
	InstallmentAmount float64 `json:"installmentAmount,omitempty"`
}

// BookingResponse is the rendering snapshot of a session.
type BookingResponse struct {
	SessionID string          `json:"sessionId"`
	Step      WizardStep      `json:"step"`
	Progress  []StepProgress  `json:"progress"`
	Draft     BookingDraft    `json:"draft"`
	Window    []time.Time     `json:"window"`
	Slots     []TimeSlot      `json:"slots"`
	Hours     OperatingHours  `json:"hours"`
	Summary   *BookingSummary `json:"summary,omitempty"`
	Booking   *Booking        `json:"booking,omitempty"`
}
