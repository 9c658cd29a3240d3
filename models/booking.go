package models

import "time"

const (
	BookingStatusConfirmed      = "confirmed"
	BookingStatusPendingPayment = "pending_payment"
)

// Booking is the persisted record created after the wizard completes.
type Booking struct {
	ID         string         `bson:"id" json:"id"`
	SessionID  string         `bson:"sessionId" json:"sessionId"`
	UserID     string         `bson:"userId" json:"userId"`
	ProviderID string         `bson:"providerId" json:"providerId"`
	ServiceID  string         `bson:"serviceId" json:"serviceId"`
	Service    string         `bson:"service" json:"service"`
	Request    BookingRequest `bson:"request" json:"request"`
	Price      float64        `bson:"price" json:"price"`
	Currency   string         `bson:"currency" json:"currency"`
	Payment    Payment        `bson:"payment" json:"payment"`
	Status     string         `bson:"status" json:"status"`
	CreatedAt  time.Time      `bson:"createdAt" json:"createdAt"`
}
