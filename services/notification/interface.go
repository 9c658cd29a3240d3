package notification

import (
	"context"
	"errors"
	"fmt"

	"garagat/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// ErrNoDeviceToken is returned when the customer never registered a device.
var ErrNoDeviceToken = errors.New("customer has no FCM token")

// Sender delivers one FCM message. *messaging.Client satisfies it.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// NotificationService sends booking pushes to customers.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, customer *models.Customer, booking *models.Booking) error
}

// NewFCMClient initializes the Firebase App and Messaging client from a service account file.
func NewFCMClient(ctx context.Context, credentialsPath string) (*messaging.Client, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Messaging client: %w", err)
	}
	return client, nil
}
