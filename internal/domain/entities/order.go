package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the invoicing lifecycle of an order.
//
// It is independent from PaymentStatus: an order may be paid while its payment
// record is still processing. No cross invariant is enforced.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCompleted OrderStatus = "completed"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusPending, OrderStatusPaid, OrderStatusCompleted:
		return true
	}
	return false
}

// TravelFee is the flat charge of one photographer, billed once per order.
type TravelFee struct {
	PhotographerID string          `json:"photographer_id"`
	Fee            decimal.Decimal `json:"fee"`
}

// Order is an invoice snapshot of the scheduled services of a property.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (property_id-index): property_id
//
// Invariant: TotalAmount == ServicesTotal + TravelTotal, where ServicesTotal
// is the sum of line-item prices and TravelTotal the sum of TravelFees.
type Order struct {
	ID            string             `json:"id"`
	PropertyID    string             `json:"property_id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	Services      []ScheduledService `json:"services"`
	ServicesTotal decimal.Decimal    `json:"services_total"`
	TravelFees    []TravelFee        `json:"travel_fees"`
	TravelTotal   decimal.Decimal    `json:"travel_total"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Status        OrderStatus        `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	DueDate       *time.Time         `json:"due_date,omitempty"`
}
