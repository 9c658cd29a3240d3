package notification

import (
	"context"
	"fmt"

	"garagat/models"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultNotificationService is the FCM implementation.
type DefaultNotificationService struct {
	sender Sender
	logger *zap.Logger
}

func NewDefaultNotificationService(sender Sender, logger *zap.Logger) (*DefaultNotificationService, error) {
	if sender == nil {
		return nil, fmt.Errorf("notification service initialization error: sender is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultNotificationService{sender: sender, logger: logger}, nil
}

func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, customer *models.Customer, booking *models.Booking) error {
	if customer == nil || customer.FCMToken == "" {
		return ErrNoDeviceToken
	}

	msg := &messaging.Message{
		Token: customer.FCMToken,
		Notification: &messaging.Notification{
			Title: "Booking received",
			Body:  fmt.Sprintf("%s on %s", booking.Service, booking.Request.Slot.Format("Jan 2 at 3:04 PM")),
		},
		Data: map[string]string{
			"type":      "booking_confirmation",
			"bookingId": booking.ID,
			"status":    booking.Status,
		},
	}

	id, err := s.sender.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	s.logger.Debug("Booking push sent", zap.String("bookingId", booking.ID), zap.String("messageId", id))
	return nil
}
