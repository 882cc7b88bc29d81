package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/booking"
	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	mock_interfaces "github.com/heaponte4/aerea-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type bookingMocks struct {
	services      *mock_interfaces.MockIScheduledServiceRepository
	catalog       *mock_interfaces.MockICatalogRepository
	photographers *mock_interfaces.MockIPhotographerRepository
}

func newBookingUseCase(t *testing.T) (*BookingUseCase, bookingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := bookingMocks{
		services:      mock_interfaces.NewMockIScheduledServiceRepository(ctrl),
		catalog:       mock_interfaces.NewMockICatalogRepository(ctrl),
		photographers: mock_interfaces.NewMockIPhotographerRepository(ctrl),
	}
	expectCatalog(m.catalog)
	uc := NewBookingUseCase(m.services, m.catalog, m.photographers, quietLogger())
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func echoSave(m bookingMocks) {
	m.services.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s entities.ScheduledService) (entities.ScheduledService, error) {
			return s, nil
		})
}

func TestBookingUseCase_AddService(t *testing.T) {
	t.Run("invalid keys", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil, quietLogger())
		if _, err := uc.AddService(context.Background(), "", "photo", nil, ""); !errors.Is(err, ErrInvalidPropertyID) {
			t.Fatalf("expected ErrInvalidPropertyID, got %v", err)
		}
		if _, err := uc.AddService(context.Background(), "prop-1", " ", nil, ""); !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		uc, _ := newBookingUseCase(t)
		_, err := uc.AddService(context.Background(), "prop-1", "nope", nil, "")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("ineligible addon", func(t *testing.T) {
		uc, _ := newBookingUseCase(t)
		_, err := uc.AddService(context.Background(), "prop-1", "video", []string{"twilight"}, "")
		if !errors.Is(err, booking.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").Return(pendingService("prop-1", "photo"), nil)

		_, err := uc.AddService(context.Background(), "prop-1", "photo", nil, "")
		if !errors.Is(err, ErrScheduledServiceAlreadyExists) {
			t.Fatalf("expected ErrScheduledServiceAlreadyExists, got %v", err)
		}
	})

	t.Run("creates pending service", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").Return(entities.ScheduledService{}, nil)
		m.services.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s entities.ScheduledService) (entities.ScheduledService, error) {
				return s, nil
			})

		got, err := uc.AddService(context.Background(), " prop-1 ", "photo", []string{"rush"}, " gate code 42 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ScheduledServiceStatusPending {
			t.Fatalf("expected pending, got %s", got.Status)
		}
		if got.PropertyID != "prop-1" || got.Notes != "gate code 42" {
			t.Fatalf("unexpected service %+v", got)
		}
		if !got.CreatedAt.Equal(fixedNow) {
			t.Fatalf("expected created at %v, got %v", fixedNow, got.CreatedAt)
		}
	})
}

func TestBookingUseCase_Assign(t *testing.T) {
	full := booking.Assignment{
		PhotographerID: ptr("p1"),
		Date:           ptr(day("2026-11-02")),
		Time:           ptr("9:00 AM"),
	}

	t.Run("not found", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").Return(entities.ScheduledService{}, nil)

		_, err := uc.Assign(context.Background(), "prop-1", "photo", full)
		if !errors.Is(err, ErrScheduledServiceNotFound) {
			t.Fatalf("expected ErrScheduledServiceNotFound, got %v", err)
		}
	})

	t.Run("full assignment schedules", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").Return(pendingService("prop-1", "photo"), nil)
		m.photographers.EXPECT().GetByID(gomock.Any(), "p1").Return(testPhotographer(), nil)
		m.services.EXPECT().ListByPhotographerID(gomock.Any(), "p1").Return([]entities.ScheduledService{
			scheduledService("prop-2", "photo", "p1", "2026-11-03"),
		}, nil)
		echoSave(m)

		got, err := uc.Assign(context.Background(), "prop-1", "photo", full)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ScheduledServiceStatusScheduled {
			t.Fatalf("expected scheduled, got %s", got.Status)
		}
	})

	t.Run("same property may share the date", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "video").Return(pendingService("prop-1", "video"), nil)
		m.photographers.EXPECT().GetByID(gomock.Any(), "p1").Return(testPhotographer(), nil)
		m.services.EXPECT().ListByPhotographerID(gomock.Any(), "p1").Return([]entities.ScheduledService{
			scheduledService("prop-1", "photo", "p1", "2026-11-02"),
		}, nil)
		echoSave(m)

		if _, err := uc.Assign(context.Background(), "prop-1", "video", full); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("date booked by another property", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").Return(pendingService("prop-1", "photo"), nil)
		m.photographers.EXPECT().GetByID(gomock.Any(), "p1").Return(testPhotographer(), nil)
		m.services.EXPECT().ListByPhotographerID(gomock.Any(), "p1").Return([]entities.ScheduledService{
			scheduledService("prop-2", "photo", "p1", "2026-11-02"),
		}, nil)

		_, err := uc.Assign(context.Background(), "prop-1", "photo", full)
		if !errors.Is(err, ErrPhotographerUnavailable) {
			t.Fatalf("expected ErrPhotographerUnavailable, got %v", err)
		}
	})

	t.Run("date not declared", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").Return(pendingService("prop-1", "photo"), nil)
		m.photographers.EXPECT().GetByID(gomock.Any(), "p1").Return(testPhotographer(), nil)
		m.services.EXPECT().ListByPhotographerID(gomock.Any(), "p1").Return(nil, nil)

		a := full
		a.Date = ptr(day("2026-12-25"))
		_, err := uc.Assign(context.Background(), "prop-1", "photo", a)
		if !errors.Is(err, ErrPhotographerUnavailable) {
			t.Fatalf("expected ErrPhotographerUnavailable, got %v", err)
		}
	})

	t.Run("photographer lacks specialty", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").Return(pendingService("prop-1", "photo"), nil)
		m.photographers.EXPECT().GetByID(gomock.Any(), "p1").
			Return(entities.Photographer{ID: "p1", Specialties: []string{"Videography"}}, nil)

		_, err := uc.Assign(context.Background(), "prop-1", "photo", full)
		if !errors.Is(err, ErrPhotographerNotQualified) {
			t.Fatalf("expected ErrPhotographerNotQualified, got %v", err)
		}
	})

	t.Run("unknown photographer", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").Return(pendingService("prop-1", "photo"), nil)
		m.photographers.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Photographer{}, nil)

		_, err := uc.Assign(context.Background(), "prop-1", "photo", full)
		if !errors.Is(err, ErrPhotographerNotFound) {
			t.Fatalf("expected ErrPhotographerNotFound, got %v", err)
		}
	})

	t.Run("time only keeps pending", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").Return(pendingService("prop-1", "photo"), nil)
		echoSave(m)

		got, err := uc.Assign(context.Background(), "prop-1", "photo", booking.Assignment{Time: ptr("10:00 AM")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ScheduledServiceStatusPending || got.ScheduledTime != "10:00 AM" {
			t.Fatalf("unexpected service %+v", got)
		}
	})

	t.Run("scheduled service cannot be assigned", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").
			Return(scheduledService("prop-1", "photo", "p1", "2026-11-02"), nil)

		_, err := uc.Assign(context.Background(), "prop-1", "photo", full)
		if !errors.Is(err, booking.ErrInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})
}

func TestBookingUseCase_Reschedule(t *testing.T) {
	t.Run("reason required", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").
			Return(scheduledService("prop-1", "photo", "p1", "2026-11-02"), nil)

		_, err := uc.Reschedule(context.Background(), "prop-1", "photo", booking.RescheduleRequest{
			Date: day("2026-11-03"), Time: "11:00 AM",
		})
		if !errors.Is(err, booking.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("moves the date and records history", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		current := scheduledService("prop-1", "photo", "p1", "2026-11-02")
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").Return(current, nil)
		m.photographers.EXPECT().GetByID(gomock.Any(), "p1").Return(testPhotographer(), nil)
		m.services.EXPECT().ListByPhotographerID(gomock.Any(), "p1").Return([]entities.ScheduledService{current}, nil)
		echoSave(m)

		got, err := uc.Reschedule(context.Background(), "prop-1", "photo", booking.RescheduleRequest{
			Date: day("2026-11-03"), Time: "11:00 AM", Reason: "rain",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entities.DateKey(*got.ScheduledDate) != "2026-11-03" || got.ScheduledTime != "11:00 AM" {
			t.Fatalf("unexpected schedule %+v", got)
		}
		if len(got.History) != 1 || got.History[0].Reason != "rain" {
			t.Fatalf("expected one history entry, got %+v", got.History)
		}
	})
}

func TestBookingUseCase_CompleteAndCancel(t *testing.T) {
	t.Run("complete scheduled", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").
			Return(scheduledService("prop-1", "photo", "p1", "2026-11-02"), nil)
		echoSave(m)

		got, err := uc.Complete(context.Background(), "prop-1", "photo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ScheduledServiceStatusCompleted {
			t.Fatalf("expected completed, got %s", got.Status)
		}
	})

	t.Run("complete pending is rejected", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").Return(pendingService("prop-1", "photo"), nil)

		_, err := uc.Complete(context.Background(), "prop-1", "photo")
		if !errors.Is(err, booking.ErrInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("cancel returns to pending", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").
			Return(scheduledService("prop-1", "photo", "p1", "2026-11-02"), nil)
		echoSave(m)

		got, err := uc.Cancel(context.Background(), "prop-1", "photo", "seller withdrew")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ScheduledServiceStatusPending || got.PhotographerID != "" {
			t.Fatalf("unexpected service %+v", got)
		}
	})

	t.Run("save error surfaces", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").
			Return(scheduledService("prop-1", "photo", "p1", "2026-11-02"), nil)
		m.services.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.ScheduledService{}, errors.New("db"))

		_, err := uc.Complete(context.Background(), "prop-1", "photo")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBookingUseCase_UpdateAddons(t *testing.T) {
	t.Run("ineligible addon leaves service untouched", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "video").Return(pendingService("prop-1", "video"), nil)

		_, err := uc.UpdateAddons(context.Background(), "prop-1", "video", []string{"twilight"})
		if !errors.Is(err, booking.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("completed service is frozen", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		s := scheduledService("prop-1", "photo", "p1", "2026-11-02")
		s.Status = entities.ScheduledServiceStatusCompleted
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").Return(s, nil)

		_, err := uc.UpdateAddons(context.Background(), "prop-1", "photo", []string{"rush"})
		if !errors.Is(err, booking.ErrInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("replaces selection", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.services.EXPECT().Get(gomock.Any(), "prop-1", "photo").
			Return(scheduledService("prop-1", "photo", "p1", "2026-11-02"), nil)
		echoSave(m)

		got, err := uc.UpdateAddons(context.Background(), "prop-1", "photo", []string{"twilight"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.AddonIDs) != 1 || got.AddonIDs[0] != "twilight" {
			t.Fatalf("unexpected addons %v", got.AddonIDs)
		}
	})
}
