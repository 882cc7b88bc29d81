package booking

import (
	"github.com/heaponte4/aerea-sub000/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PriceService returns the base price of svc plus the selected add-ons.
//
// Every add-on must be eligible for the service on both sides of the relation
// (service.EligibleAddonIDs and addon.ApplicableServiceIDs). Unknown,
// ineligible or repeated add-ons are rejected, never dropped.
func (c *Catalog) PriceService(svc entities.Service, addonIDs []string) (decimal.Decimal, error) {
	total := svc.BasePrice
	seen := make(map[string]struct{}, len(addonIDs))
	for _, id := range addonIDs {
		if _, dup := seen[id]; dup {
			return decimal.Zero, invalid("addon_ids", "addon %q selected more than once", id)
		}
		seen[id] = struct{}{}

		if !svc.AllowsAddon(id) {
			return decimal.Zero, invalid("addon_ids", "addon %q is not eligible for service %q", id, svc.ID)
		}
		addon, ok := c.Addon(id)
		if !ok {
			return decimal.Zero, invalid("addon_ids", "unknown addon %q", id)
		}
		if !addon.AppliesTo(svc.ID) {
			return decimal.Zero, invalid("addon_ids", "addon %q does not apply to service %q", id, svc.ID)
		}
		total = total.Add(addon.Price)
	}
	return total, nil
}

// PriceScheduled prices a scheduled service against the catalog.
func (c *Catalog) PriceScheduled(s entities.ScheduledService) (decimal.Decimal, error) {
	svc, ok := c.Service(s.ServiceID)
	if !ok {
		return decimal.Zero, invalid("service_id", "unknown service %q", s.ServiceID)
	}
	return c.PriceService(svc, s.AddonIDs)
}
