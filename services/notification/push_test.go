package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"garagat/models"

	"firebase.google.com/go/v4/messaging"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, m *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, m)
	return "projects/x/messages/1", nil
}

func testBooking() *models.Booking {
	return &models.Booking{
		ID:      "b1",
		Service: "Oil change",
		Status:  models.BookingStatusConfirmed,
		Request: models.BookingRequest{Slot: time.Date(2024, 6, 9, 9, 30, 0, 0, time.UTC)},
	}
}

func TestSendBookingConfirmation(t *testing.T) {
	sender := &fakeSender{}
	svc, err := NewDefaultNotificationService(sender, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if err := svc.SendBookingConfirmation(context.Background(), &models.Customer{FCMToken: "tok"}, testBooking()); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}
	m := sender.sent[0]
	if m.Token != "tok" || m.Data["bookingId"] != "b1" {
		t.Fatalf("unexpected message: %+v", m)
	}
	if m.Notification.Body != "Oil change on Jun 9 at 9:30 AM" {
		t.Fatalf("body = %q", m.Notification.Body)
	}
}

func TestSendBookingConfirmationNoToken(t *testing.T) {
	sender := &fakeSender{}
	svc, _ := NewDefaultNotificationService(sender, nil)
	err := svc.SendBookingConfirmation(context.Background(), &models.Customer{}, testBooking())
	if !errors.Is(err, ErrNoDeviceToken) {
		t.Fatalf("expected ErrNoDeviceToken, got %v", err)
	}
	if len(sender.sent) != 0 {
		t.Fatalf("nothing should be sent")
	}
}

func TestSendBookingConfirmationSenderError(t *testing.T) {
	fcmErr := errors.New("unavailable")
	svc, _ := NewDefaultNotificationService(&fakeSender{err: fcmErr}, nil)
	err := svc.SendBookingConfirmation(context.Background(), &models.Customer{FCMToken: "tok"}, testBooking())
	if !errors.Is(err, fcmErr) {
		t.Fatalf("expected wrapped sender error, got %v", err)
	}
}

func TestNewServiceRequiresSender(t *testing.T) {
	if _, err := NewDefaultNotificationService(nil, nil); err == nil {
		t.Fatalf("expected error for nil sender")
	}
}
