package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Photographer is a member of the photographer directory.
//
// AvailableDates is owned by the photographer: it only changes through explicit
// add/remove calls. A booking never removes a date; booked dates are filtered
// out at read time instead.
//
// Storage model (DynamoDB):
//   - PK: id
type Photographer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Specialties    []string        `json:"specialties"`
	AvailableDates []time.Time     `json:"available_dates"`
	TravelFee      decimal.Decimal `json:"travel_fee"`
	Rating         float64         `json:"rating"`
	CompletedJobs  int             `json:"completed_jobs"`
}

// HasSpecialty reports whether the photographer lists name as a specialty.
func (p Photographer) HasSpecialty(name string) bool {
	for _, s := range p.Specialties {
		if s == name {
			return true
		}
	}
	return false
}

// IsAvailableOn reports whether date is in the photographer's declared set.
func (p Photographer) IsAvailableOn(date time.Time) bool {
	key := DateKey(date)
	for _, d := range p.AvailableDates {
		if DateKey(d) == key {
			return true
		}
	}
	return false
}
