package response

import (
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

type PaymentResponse struct {
	ID                 string    `json:"id"`
	OrderID            string    `json:"order_id"`
	PhotographerID     string    `json:"photographer_id,omitempty"`
	Amount             string    `json:"amount"`
	TravelFee          string    `json:"travel_fee"`
	Status             string    `json:"status"`
	PaidToPhotographer bool      `json:"paid_to_photographer"`
	Method             string    `json:"method,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		OrderID:            p.OrderID,
		PhotographerID:     p.PhotographerID,
		Amount:             Money(p.Amount),
		TravelFee:          Money(p.TravelFee),
		Status:             string(p.Status),
		PaidToPhotographer: p.PaidToPhotographer,
		Method:             p.Method,
		Notes:              p.Notes,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}
