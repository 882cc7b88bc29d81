package entities

import "github.com/shopspring/decimal"

// Service is a media-production service offered on a property (photos, video,
// drone, floor plan...). Catalog records are immutable once loaded.
type Service struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	BasePrice        decimal.Decimal `json:"base_price"`
	EligibleAddonIDs []string        `json:"eligible_addon_ids"`
}

// AllowsAddon reports whether addonID may be attached to this service.
func (s Service) AllowsAddon(addonID string) bool {
	for _, id := range s.EligibleAddonIDs {
		if id == addonID {
			return true
		}
	}
	return false
}

// AddonService is an optional extra priced separately from its service.
type AddonService struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Price                decimal.Decimal `json:"price"`
	ApplicableServiceIDs []string        `json:"applicable_service_ids"`
}

// AppliesTo reports whether the add-on can be attached to serviceID.
func (a AddonService) AppliesTo(serviceID string) bool {
	for _, id := range a.ApplicableServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
