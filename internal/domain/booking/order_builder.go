package booking

import (
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderBuilder consolidates the scheduled services of a property into an
// order. NewID and Now are swappable for tests.
type OrderBuilder struct {
	Catalog       *Catalog
	Photographers PhotographerLookup
	NewID         func() string
	Now           func() time.Time
}

func NewOrderBuilder(catalog *Catalog, photographers PhotographerLookup) *OrderBuilder {
	return &OrderBuilder{
		Catalog:       catalog,
		Photographers: photographers,
		NewID:         uuid.NewString,
		Now:           func() time.Time { return time.Now().UTC() },
	}
}

// BuildResult carries the new order and, when services were left out, the
// warning the caller must surface.
type BuildResult struct {
	Order   entities.Order
	Warning *StaleAvailabilityWarning
}

// IsEligible reports whether s can be invoiced: scheduled, with photographer,
// date and time all set.
func IsEligible(s entities.ScheduledService) bool {
	return s.Status == entities.ScheduledServiceStatusScheduled &&
		s.PhotographerID != "" &&
		s.ScheduledDate != nil &&
		s.ScheduledTime != ""
}

// Build creates a new order from the eligible services of propertyID.
//
// Every call returns a distinct order id; repeated checkouts are not
// deduplicated here.
func (b *OrderBuilder) Build(propertyID string, services []entities.ScheduledService) (BuildResult, error) {
	var eligible []entities.ScheduledService
	var excluded []string
	for _, s := range services {
		if s.PropertyID == propertyID && IsEligible(s) {
			eligible = append(eligible, s.Clone())
			continue
		}
		excluded = append(excluded, s.ServiceID)
	}
	if len(eligible) == 0 {
		return BuildResult{}, ErrNoEligibleServices
	}

	servicesTotal := decimal.Zero
	for _, s := range eligible {
		price, err := b.Catalog.PriceScheduled(s)
		if err != nil {
			return BuildResult{}, err
		}
		servicesTotal = servicesTotal.Add(price)
	}

	fees, err := ConsolidateTravelFees(eligible, b.Photographers)
	if err != nil {
		return BuildResult{}, err
	}
	travelTotal := TravelTotal(fees)

	res := BuildResult{
		Order: entities.Order{
			ID:            b.NewID(),
			PropertyID:    propertyID,
			Services:      eligible,
			ServicesTotal: servicesTotal,
			TravelFees:    fees,
			TravelTotal:   travelTotal,
			TotalAmount:   servicesTotal.Add(travelTotal),
			Status:        entities.OrderStatusPending,
			CreatedAt:     b.Now(),
		},
	}
	if len(excluded) > 0 {
		res.Warning = &StaleAvailabilityWarning{ExcludedServiceIDs: excluded}
	}
	return res, nil
}
