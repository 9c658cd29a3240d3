package booking

import (
	"context"
	"time"

	customerRepo "garagat/database/repository/customer"
	providerRepo "garagat/database/repository/provider"
	"garagat/models"
	"garagat/services/scheduling"

	"go.uber.org/zap"
)

// BookingSessionService hosts booking wizards between HTTP requests. Every call
// after InitiateSession names the customer; a session owned by someone else
// reads as ErrSessionNotFound.
type BookingSessionService interface {
	InitiateSession(ctx context.Context, userID, providerID, serviceID string) (*models.BookingResponse, error)
	GetSession(ctx context.Context, userID, sessionID string) (*models.BookingResponse, error)
	UpdateDraft(ctx context.Context, userID, sessionID string, patch models.DraftPatch) (*models.BookingResponse, error)
	ShiftWindow(ctx context.Context, userID, sessionID string, dir scheduling.Direction) (*models.BookingResponse, error)
	GetSlots(ctx context.Context, userID, sessionID string, date time.Time) ([]models.TimeSlot, error)
	Advance(ctx context.Context, userID, sessionID string) (*models.BookingResponse, error)
	Retreat(ctx context.Context, userID, sessionID string) (*models.BookingResponse, error)
	ConfirmBooking(ctx context.Context, userID, sessionID, paymentMethod string) (*models.BookingResponse, error)
	CancelSession(ctx context.Context, userID, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Store     SessionStore
	Customers customerRepo.CustomerRepository
	Providers providerRepo.ProviderRepository
	// Policy carries the interval, lead time and fallback hours; each session
	// swaps in its provider's hours.
	Policy               scheduling.Policy
	Now                  func() time.Time
	Notifier             Notifier
	Completion           CompletionHandler
	DefaultPaymentMethod string
	Logger               *zap.Logger
}
