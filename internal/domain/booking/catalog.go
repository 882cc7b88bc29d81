package booking

import (
	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

// Catalog is the read-only price list: services and their add-ons.
type Catalog struct {
	services  []entities.Service
	addons    []entities.AddonService
	serviceBy map[string]entities.Service
	addonBy   map[string]entities.AddonService
}

func NewCatalog(services []entities.Service, addons []entities.AddonService) *Catalog {
	c := &Catalog{
		services:  append([]entities.Service(nil), services...),
		addons:    append([]entities.AddonService(nil), addons...),
		serviceBy: make(map[string]entities.Service, len(services)),
		addonBy:   make(map[string]entities.AddonService, len(addons)),
	}
	for _, s := range services {
		c.serviceBy[s.ID] = s
	}
	for _, a := range addons {
		c.addonBy[a.ID] = a
	}
	return c
}

func (c *Catalog) ListServices() []entities.Service {
	return append([]entities.Service(nil), c.services...)
}

// ListAddons returns the add-ons applicable to serviceID. Unknown ids yield an
// empty list.
func (c *Catalog) ListAddons(serviceID string) []entities.AddonService {
	out := []entities.AddonService{}
	for _, a := range c.addons {
		if a.AppliesTo(serviceID) {
			out = append(out, a)
		}
	}
	return out
}

func (c *Catalog) Service(id string) (entities.Service, bool) {
	s, ok := c.serviceBy[id]
	return s, ok
}

func (c *Catalog) Addon(id string) (entities.AddonService, bool) {
	a, ok := c.addonBy[id]
	return a, ok
}
