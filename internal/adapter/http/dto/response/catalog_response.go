package response

import (
	"github.com/heaponte4/aerea-sub000/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Money is rendered with two decimals ("250.00").
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type ServiceResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	BasePrice        string   `json:"base_price"`
	EligibleAddonIDs []string `json:"eligible_addon_ids"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		BasePrice:        Money(s.BasePrice),
		EligibleAddonIDs: nonNil(s.EligibleAddonIDs),
	}
}

func FromServices(list []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromService(s))
	}
	return out
}

type AddonResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Price                string   `json:"price"`
	ApplicableServiceIDs []string `json:"applicable_service_ids"`
}

func FromAddons(list []entities.AddonService) []AddonResponse {
	out := make([]AddonResponse, 0, len(list))
	for _, a := range list {
		out = append(out, AddonResponse{
			ID:                   a.ID,
			Name:                 a.Name,
			Price:                Money(a.Price),
			ApplicableServiceIDs: nonNil(a.ApplicableServiceIDs),
		})
	}
	return out
}

type PriceQuoteResponse struct {
	ServiceID string   `json:"service_id"`
	AddonIDs  []string `json:"addon_ids"`
	Price     string   `json:"price"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
