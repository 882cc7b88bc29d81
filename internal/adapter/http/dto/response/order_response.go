package response

import (
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/booking"
	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

type TravelFeeResponse struct {
	PhotographerID string `json:"photographer_id"`
	Fee            string `json:"fee"`
}

type OrderResponse struct {
	ID            string                     `json:"id"`
	PropertyID    string                     `json:"property_id"`
	CustomerID    string                     `json:"customer_id,omitempty"`
	Services      []ScheduledServiceResponse `json:"services"`
	ServicesTotal string                     `json:"services_total"`
	TravelFees    []TravelFeeResponse        `json:"travel_fees"`
	TravelTotal   string                     `json:"travel_total"`
	TotalAmount   string                     `json:"total_amount"`
	Status        string                     `json:"status"`
	CreatedAt     time.Time                  `json:"created_at"`
	DueDate       string                     `json:"due_date,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	fees := make([]TravelFeeResponse, 0, len(o.TravelFees))
	for _, f := range o.TravelFees {
		fees = append(fees, TravelFeeResponse{PhotographerID: f.PhotographerID, Fee: Money(f.Fee)})
	}
	return OrderResponse{
		ID:            o.ID,
		PropertyID:    o.PropertyID,
		CustomerID:    o.CustomerID,
		Services:      FromScheduledServices(o.Services),
		ServicesTotal: Money(o.ServicesTotal),
		TravelFees:    fees,
		TravelTotal:   Money(o.TravelTotal),
		TotalAmount:   Money(o.TotalAmount),
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		DueDate:       datePtr(o.DueDate),
	}
}

func FromOrders(list []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrder(o))
	}
	return out
}

// WarningResponse tells the client that some services were not invoiced.
type WarningResponse struct {
	Code               string   `json:"code"`
	Message            string   `json:"message"`
	ExcludedServiceIDs []string `json:"excluded_service_ids"`
}

type CheckoutResponse struct {
	Order   OrderResponse    `json:"order"`
	Warning *WarningResponse `json:"warning,omitempty"`
}

func FromCheckout(o entities.Order, w *booking.StaleAvailabilityWarning) CheckoutResponse {
	res := CheckoutResponse{Order: FromOrder(o)}
	if w != nil {
		res.Warning = &WarningResponse{
			Code:               "STALE_AVAILABILITY",
			Message:            "Some services are not fully scheduled and were left out of this order",
			ExcludedServiceIDs: w.ExcludedServiceIDs,
		}
	}
	return res
}
