package booking

import (
	"sort"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

const (
	firstSlotHour = 8
	lastSlotHour  = 17
)

// FindEligiblePhotographers keeps the photographers whose specialties cover
// every requested service name. Input order is preserved.
func FindEligiblePhotographers(photographers []entities.Photographer, serviceNames []string) []entities.Photographer {
	out := []entities.Photographer{}
	for _, p := range photographers {
		if coversAll(p, serviceNames) {
			out = append(out, p)
		}
	}
	return out
}

func coversAll(p entities.Photographer, names []string) bool {
	for _, n := range names {
		if !p.HasSpecialty(n) {
			return false
		}
	}
	return true
}

// BookedDates returns the dates on which photographerID already has a
// scheduled or completed service.
func BookedDates(photographerID string, services []entities.ScheduledService) []time.Time {
	var out []time.Time
	for _, s := range services {
		if s.PhotographerID != photographerID || s.ScheduledDate == nil {
			continue
		}
		if s.Status == entities.ScheduledServiceStatusScheduled || s.Status == entities.ScheduledServiceStatusCompleted {
			out = append(out, entities.DateOnly(*s.ScheduledDate))
		}
	}
	return out
}

// AvailableDatesFor returns the declared dates of p minus booked, compared by
// calendar date, sorted ascending without duplicates.
//
// This is a read-time check only. Nothing is reserved, so two callers can
// still pick the same date.
func AvailableDatesFor(p entities.Photographer, booked []time.Time) []time.Time {
	excluded := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		excluded[entities.DateKey(b)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(p.AvailableDates))
	out := []time.Time{}
	for _, d := range p.AvailableDates {
		key := entities.DateKey(d)
		if _, ok := excluded[key]; ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, entities.DateOnly(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// TimeSlots is the fixed hourly slot list offered once a date is chosen.
// Slots are not checked for overlap.
func TimeSlots() []string {
	slots := make([]string, 0, lastSlotHour-firstSlotHour+1)
	for h := firstSlotHour; h <= lastSlotHour; h++ {
		slots = append(slots, time.Date(2000, 1, 1, h, 0, 0, 0, time.UTC).Format(entities.TimeLayout))
	}
	return slots
}

// IsTimeSlot reports whether s is one of TimeSlots.
func IsTimeSlot(s string) bool {
	for _, slot := range TimeSlots() {
		if slot == s {
			return true
		}
	}
	return false
}
