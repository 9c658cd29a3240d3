package payment

import (
	"errors"

	"garagat/models"
)

// ErrUnsupportedMethod is returned for payment methods the shop does not accept.
var ErrUnsupportedMethod = errors.New("unsupported payment method")

// Installment plans offered by the buy-now-pay-later partners.
const (
	TabbyInstallments  = 4
	TamaraInstallments = 3
)

// Handler starts the payment for a freshly completed booking.
type Handler interface {
	StartPayment(req models.PaymentRequest) (*models.Payment, error)
}

// Supported reports whether method is one of card, tabby or tamara.
func Supported(method string) bool {
	switch method {
	case models.PaymentMethodCard, models.PaymentMethodTabby, models.PaymentMethodTamara:
		return true
	}
	return false
}
