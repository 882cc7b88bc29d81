package response

import (
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

type PhotographerResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialties    []string `json:"specialties"`
	AvailableDates []string `json:"available_dates"`
	TravelFee      string   `json:"travel_fee"`
	Rating         float64  `json:"rating"`
	CompletedJobs  int      `json:"completed_jobs"`
}

func FromPhotographer(p entities.Photographer) PhotographerResponse {
	return PhotographerResponse{
		ID:             p.ID,
		Name:           p.Name,
		Specialties:    nonNil(p.Specialties),
		AvailableDates: Dates(p.AvailableDates),
		TravelFee:      Money(p.TravelFee),
		Rating:         p.Rating,
		CompletedJobs:  p.CompletedJobs,
	}
}

func FromPhotographers(list []entities.Photographer) []PhotographerResponse {
	out := make([]PhotographerResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPhotographer(p))
	}
	return out
}

type AvailableDatesResponse struct {
	PhotographerID string   `json:"photographer_id"`
	Dates          []string `json:"dates"`
}

type TimeSlotsResponse struct {
	Slots []string `json:"slots"`
}

// Dates renders calendar dates as YYYY-MM-DD.
func Dates(list []time.Time) []string {
	out := make([]string, 0, len(list))
	for _, d := range list {
		out = append(out, entities.DateKey(d))
	}
	return out
}
