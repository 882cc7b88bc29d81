package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle of a recorded payment.
//
// Payments are recorded facts: nothing here talks to a payment provider.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Payment is a payment recorded against an order. An order may have several.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
type Payment struct {
	ID                 string          `json:"id"`
	OrderID            string          `json:"order_id"`
	PhotographerID     string          `json:"photographer_id,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	TravelFee          decimal.Decimal `json:"travel_fee"`
	Status             PaymentStatus   `json:"status"`
	PaidToPhotographer bool            `json:"paid_to_photographer"`
	Method             string          `json:"method,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
