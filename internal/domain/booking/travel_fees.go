package booking

import (
	"github.com/heaponte4/aerea-sub000/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PhotographerLookup resolves photographers by id.
type PhotographerLookup interface {
	Photographer(id string) (entities.Photographer, bool)
}

// Directory is an in-memory PhotographerLookup.
type Directory map[string]entities.Photographer

func NewDirectory(photographers []entities.Photographer) Directory {
	d := make(Directory, len(photographers))
	for _, p := range photographers {
		d[p.ID] = p
	}
	return d
}

func (d Directory) Photographer(id string) (entities.Photographer, bool) {
	p, ok := d[id]
	return p, ok
}

// ConsolidateTravelFees emits one fee per distinct photographer, in order of
// first appearance. Services without a photographer are skipped.
func ConsolidateTravelFees(services []entities.ScheduledService, photographers PhotographerLookup) ([]entities.TravelFee, error) {
	fees := []entities.TravelFee{}
	seen := make(map[string]struct{})
	for _, s := range services {
		if s.PhotographerID == "" {
			continue
		}
		if _, ok := seen[s.PhotographerID]; ok {
			continue
		}
		p, ok := photographers.Photographer(s.PhotographerID)
		if !ok {
			return nil, invalid("photographer_id", "unknown photographer %q", s.PhotographerID)
		}
		seen[s.PhotographerID] = struct{}{}
		fees = append(fees, entities.TravelFee{PhotographerID: p.ID, Fee: p.TravelFee})
	}
	return fees, nil
}

// TravelTotal sums consolidated fees.
func TravelTotal(fees []entities.TravelFee) decimal.Decimal {
	total := decimal.Zero
	for _, f := range fees {
		total = total.Add(f.Fee)
	}
	return total
}
