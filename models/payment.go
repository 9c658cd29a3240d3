package models

const (
	PaymentMethodCard   = "card"
	PaymentMethodTabby  = "tabby"
	PaymentMethodTamara = "tamara"
)

const (
	PaymentStatusRequiresPayment = "requires_payment"
	PaymentStatusPending         = "pending"
)

// PaymentRequest asks the payment collaborator to start charging for a booking.
// Requests with the same IdempotencyKey start at most one charge.
type PaymentRequest struct {
	BookingID      string
	UserID         string
	Method         string
	Amount         float64
	Currency       string
	Description    string
	IdempotencyKey string
}

// Payment is the state of a booking's payment right after it was started.
type Payment struct {
	Method            string  `bson:"method" json:"method"`
	Status            string  `bson:"status" json:"status"`
	Amount            float64 `bson:"amount" json:"amount"`
	Currency          string  `bson:"currency" json:"currency"`
	PaymentIntentID   string  `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	ClientSecret      string  `bson:"-" json:"clientSecret,omitempty"`
	Installments      int     `bson:"installments,omitempty" json:"installments,omitempty"`
	InstallmentAmount float64 `bson:"installmentAmount,omitempty" json:"installmentAmount,omitempty"`
}
