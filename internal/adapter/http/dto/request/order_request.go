package request

import (
	"strings"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase"

	"github.com/shopspring/decimal"
)

type CheckoutRequest struct {
	CustomerID string `json:"customer_id"`
	DueDate    string `json:"due_date"`
}

func (r CheckoutRequest) ToInput(propertyID string) (usecase.CheckoutInput, error) {
	in := usecase.CheckoutInput{PropertyID: propertyID, CustomerID: r.CustomerID}
	if strings.TrimSpace(r.DueDate) != "" {
		d, err := ParseDate(r.DueDate)
		if err != nil {
			return usecase.CheckoutInput{}, err
		}
		in.DueDate = &d
	}
	return in, nil
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r OrderStatusRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

// RecordPaymentRequest accepts amounts as JSON numbers or strings
// ("375.50"); both decode exactly.
type RecordPaymentRequest struct {
	PhotographerID string          `json:"photographer_id"`
	Amount         decimal.Decimal `json:"amount"`
	TravelFee      decimal.Decimal `json:"travel_fee"`
	Status         string          `json:"status"`
	Method         string          `json:"method"`
	Notes          string          `json:"notes"`
}

func (r RecordPaymentRequest) ToInput(orderID string) usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		OrderID:        orderID,
		PhotographerID: r.PhotographerID,
		Amount:         r.Amount,
		TravelFee:      r.TravelFee,
		Status:         entities.PaymentStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		Method:         r.Method,
		Notes:          r.Notes,
	}
}

type PaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r PaymentStatusRequest) ResolveStatus() entities.PaymentStatus {
	return entities.PaymentStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

type PaidToPhotographerRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}
