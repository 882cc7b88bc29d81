package usecase

import (
	"io"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	mock_interfaces "github.com/heaponte4/aerea-sub000/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func day(s string) time.Time {
	d, err := entities.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

func testServices() []entities.Service {
	return []entities.Service{
		{ID: "photo", Name: "Photography", BasePrice: decimal.NewFromInt(250), EligibleAddonIDs: []string{"twilight", "rush"}},
		{ID: "video", Name: "Videography", BasePrice: decimal.NewFromInt(400), EligibleAddonIDs: []string{"rush"}},
	}
}

func testAddons() []entities.AddonService {
	return []entities.AddonService{
		{ID: "twilight", Name: "Twilight shots", Price: decimal.NewFromInt(125), ApplicableServiceIDs: []string{"photo"}},
		{ID: "rush", Name: "Rush delivery", Price: decimal.NewFromInt(75), ApplicableServiceIDs: []string{"photo", "video"}},
	}
}

// expectCatalog wires the catalog mock with the test price list for any
// number of reads.
func expectCatalog(repo *mock_interfaces.MockICatalogRepository) {
	repo.EXPECT().ListServices(gomock.Any()).Return(testServices(), nil).AnyTimes()
	repo.EXPECT().ListAddons(gomock.Any()).Return(testAddons(), nil).AnyTimes()
}

func testPhotographer() entities.Photographer {
	return entities.Photographer{
		ID:             "p1",
		Name:           "Ana",
		Specialties:    []string{"Photography", "Videography"},
		TravelFee:      decimal.NewFromInt(50),
		AvailableDates: []time.Time{day("2026-11-02"), day("2026-11-03")},
	}
}

func scheduledService(property, service, photographer, date string) entities.ScheduledService {
	d := day(date)
	return entities.ScheduledService{
		PropertyID:     property,
		ServiceID:      service,
		PhotographerID: photographer,
		ScheduledDate:  &d,
		ScheduledTime:  "9:00 AM",
		AddonIDs:       []string{},
		Status:         entities.ScheduledServiceStatusScheduled,
	}
}

func pendingService(property, service string) entities.ScheduledService {
	return entities.ScheduledService{
		PropertyID: property,
		ServiceID:  service,
		AddonIDs:   []string{},
		Status:     entities.ScheduledServiceStatusPending,
	}
}
