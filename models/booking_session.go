package models

import "time"

// BookingSession holds one wizard between requests.
type BookingSession struct {
	SessionID     string          `json:"sessionId"`
	UserID        string          `json:"userId"`
	ProviderID    string          `json:"providerId"`
	ServiceID     string          `json:"serviceId"`
	Service       ServiceOffering `json:"service"` // catalogue entry at initiation
	Step          WizardStep      `json:"step"`
	Draft         BookingDraft    `json:"draft"`
	WindowStart   time.Time       `json:"windowStart"`
	Hours         OperatingHours  `json:"hours"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Version       int64           `json:"version"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
