package booking

import (
	"context"
	"fmt"

	bookingRepo "garagat/database/repository/booking"
	"garagat/models"
	"garagat/services/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CompletionHandler turns a completed wizard into a persisted booking.
type CompletionHandler interface {
	HandleCompletion(ctx context.Context, session *models.BookingSession, req models.BookingRequest) (*models.Booking, error)
}

// PushDispatcher schedules the confirmation push for a stored booking.
type PushDispatcher interface {
	DispatchBookingPush(ctx context.Context, booking *models.Booking) error
}

// DefaultCompletionHandler starts the payment, stores the booking and queues a
// confirmation push. The push is best-effort.
type DefaultCompletionHandler struct {
	Bookings bookingRepo.BookingRepository
	Payments payment.Handler
	// Pushes may be nil when FCM is not configured.
	Pushes PushDispatcher
	Logger *zap.Logger
}

// BookingID is stable per session, so a retried completion reuses the same ID
// and the same payment idempotency key.
func BookingID(sessionID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("garagat:booking:"+sessionID)).String()
}

func (h *DefaultCompletionHandler) HandleCompletion(ctx context.Context, session *models.BookingSession, req models.BookingRequest) (*models.Booking, error) {
	logger := h.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	b := &models.Booking{
		ID:         BookingID(session.SessionID),
		SessionID:  session.SessionID,
		UserID:     session.UserID,
		ProviderID: session.ProviderID,
		ServiceID:  session.ServiceID,
		Service:    session.Service.Name,
		Request:    req,
		Price:      session.Service.Price,
		Currency:   session.Service.Currency,
		CreatedAt:  req.CompletedAt,
	}

	pay, err := h.Payments.StartPayment(models.PaymentRequest{
		BookingID:      b.ID,
		UserID:         b.UserID,
		Method:         session.PaymentMethod,
		Amount:         b.Price,
		Currency:       b.Currency,
		Description:    fmt.Sprintf("%s on %s", b.Service, req.Slot.Format("Jan 2, 2006 3:04 PM")),
		IdempotencyKey: "booking-" + session.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start payment: %w", err)
	}
	b.Payment = *pay
	b.Status = models.BookingStatusConfirmed
	if pay.Method == models.PaymentMethodCard {
		b.Status = models.BookingStatusPendingPayment
	}

	if err := h.Bookings.Create(b); err != nil {
		return nil, err
	}
	logger.Info("Booking created",
		zap.String("bookingId", b.ID),
		zap.String("sessionId", b.SessionID),
		zap.String("method", b.Payment.Method),
		zap.Time("slot", req.Slot),
	)

	if h.Pushes != nil {
		if err := h.Pushes.DispatchBookingPush(ctx, b); err != nil {
			logger.Warn("Booking push not queued", zap.String("bookingId", b.ID), zap.Error(err))
		}
	}
	return b, nil
}
