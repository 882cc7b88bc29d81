package booking

import (
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func day(s string) time.Time {
	d, err := entities.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

func testCatalog() *Catalog {
	return NewCatalog(
		[]entities.Service{
			{ID: "photo", Name: "Photography", BasePrice: money(250), EligibleAddonIDs: []string{"twilight", "rush"}},
			{ID: "video", Name: "Videography", BasePrice: money(400), EligibleAddonIDs: []string{"rush"}},
			{ID: "drone", Name: "Drone", BasePrice: money(150)},
		},
		[]entities.AddonService{
			{ID: "twilight", Name: "Twilight shots", Price: money(125), ApplicableServiceIDs: []string{"photo"}},
			{ID: "rush", Name: "Rush delivery", Price: money(75), ApplicableServiceIDs: []string{"photo", "video"}},
		},
	)
}

func testPhotographers() []entities.Photographer {
	return []entities.Photographer{
		{ID: "p1", Name: "Ana", Specialties: []string{"Photography", "Videography"}, TravelFee: money(50),
			AvailableDates: []time.Time{day("2026-11-03"), day("2026-11-02"), day("2026-11-04")}},
		{ID: "p2", Name: "Bo", Specialties: []string{"Photography"}, TravelFee: money(35),
			AvailableDates: []time.Time{day("2026-11-02")}},
		{ID: "p3", Name: "Cy", Specialties: []string{"Drone", "Photography", "Videography"}, TravelFee: money(80)},
	}
}

func scheduled(property, service, photographer string, addons ...string) entities.ScheduledService {
	d := day("2026-11-02")
	return entities.ScheduledService{
		PropertyID:     property,
		ServiceID:      service,
		PhotographerID: photographer,
		ScheduledDate:  &d,
		ScheduledTime:  "9:00 AM",
		AddonIDs:       addons,
		Status:         entities.ScheduledServiceStatusScheduled,
	}
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
