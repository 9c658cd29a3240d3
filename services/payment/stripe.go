package payment

import (
	"fmt"
	"math"
	"strings"

	"garagat/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// IntentCreator creates a Stripe PaymentIntent. paymentintent.New in production.
type IntentCreator func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

// DefaultPaymentHandler charges cards through Stripe and records instalment
// plans for tabby and tamara; those partners settle out of band.
type DefaultPaymentHandler struct {
	newIntent IntentCreator
}

// NewDefaultPaymentHandler uses the global stripe.Key set at startup.
func NewDefaultPaymentHandler() *DefaultPaymentHandler {
	return &DefaultPaymentHandler{newIntent: paymentintent.New}
}

// NewPaymentHandlerWithCreator swaps the Stripe call, used by tests.
func NewPaymentHandlerWithCreator(fn IntentCreator) *DefaultPaymentHandler {
	return &DefaultPaymentHandler{newIntent: fn}
}

func (h *DefaultPaymentHandler) StartPayment(req models.PaymentRequest) (*models.Payment, error) {
	switch req.Method {
	case models.PaymentMethodCard:
		return h.startCard(req)
	case models.PaymentMethodTabby, models.PaymentMethodTamara:
		n := InstallmentCount(req.Method)
		return &models.Payment{
			Method:            req.Method,
			Status:            models.PaymentStatusPending,
			Amount:            req.Amount,
			Currency:          req.Currency,
			Installments:      n,
			InstallmentAmount: InstallmentAmount(req.Amount, n),
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, req.Method)
}

func (h *DefaultPaymentHandler) startCard(req models.PaymentRequest) (*models.Payment, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(toMinorUnits(req.Amount)),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_id", req.BookingID)
	params.AddMetadata("user_id", req.UserID)
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	pi, err := h.newIntent(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &models.Payment{
		Method:          models.PaymentMethodCard,
		Status:          models.PaymentStatusRequiresPayment,
		Amount:          req.Amount,
		Currency:        req.Currency,
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
	}, nil
}

// toMinorUnits converts a two-decimal currency amount to cents/halalas.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
