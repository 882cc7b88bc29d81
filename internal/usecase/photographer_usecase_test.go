package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	mock_interfaces "github.com/heaponte4/aerea-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPhotographerUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewPhotographerUseCase(nil, nil, nil, quietLogger())
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidPhotographerID) {
			t.Fatalf("expected ErrInvalidPhotographerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPhotographerRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "p9").Return(entities.Photographer{}, nil)

		_, err := NewPhotographerUseCase(repo, nil, nil, quietLogger()).GetByID(context.Background(), "p9")
		if !errors.Is(err, ErrPhotographerNotFound) {
			t.Fatalf("expected ErrPhotographerNotFound, got %v", err)
		}
	})
}

func TestPhotographerUseCase_FindEligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIPhotographerRepository(ctrl)
	catalogRepo := mock_interfaces.NewMockICatalogRepository(ctrl)
	expectCatalog(catalogRepo)

	videoOnly := entities.Photographer{ID: "p2", Specialties: []string{"Videography"}}
	repo.EXPECT().List(gomock.Any()).Return([]entities.Photographer{testPhotographer(), videoOnly}, nil).AnyTimes()

	uc := NewPhotographerUseCase(repo, nil, catalogRepo, quietLogger())

	t.Run("all services required", func(t *testing.T) {
		got, err := uc.FindEligible(context.Background(), []string{"photo", "video"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p1" {
			t.Fatalf("expected only p1, got %+v", got)
		}
	})

	t.Run("no filter returns everyone", func(t *testing.T) {
		got, err := uc.FindEligible(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 photographers, got %d", len(got))
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		_, err := uc.FindEligible(context.Background(), []string{"nope"})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestPhotographerUseCase_AvailableDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIPhotographerRepository(ctrl)
	serviceRepo := mock_interfaces.NewMockIScheduledServiceRepository(ctrl)

	repo.EXPECT().GetByID(gomock.Any(), "p1").Return(testPhotographer(), nil)
	serviceRepo.EXPECT().ListByPhotographerID(gomock.Any(), "p1").
		Return([]entities.ScheduledService{scheduledService("prop-2", "photo", "p1", "2026-11-02")}, nil)

	got, err := NewPhotographerUseCase(repo, serviceRepo, nil, quietLogger()).AvailableDates(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || entities.DateKey(got[0]) != "2026-11-03" {
		t.Fatalf("expected only 2026-11-03, got %v", got)
	}
}

func TestPhotographerUseCase_AddAvailableDate(t *testing.T) {
	t.Run("zero date", func(t *testing.T) {
		uc := NewPhotographerUseCase(nil, nil, nil, quietLogger())
		_, err := uc.AddAvailableDate(context.Background(), "p1", time.Time{})
		if !errors.Is(err, ErrInvalidAvailableDate) {
			t.Fatalf("expected ErrInvalidAvailableDate, got %v", err)
		}
	})

	t.Run("zero date on remove", func(t *testing.T) {
		uc := NewPhotographerUseCase(nil, nil, nil, quietLogger())
		_, err := uc.RemoveAvailableDate(context.Background(), "p1", time.Time{})
		if !errors.Is(err, ErrInvalidAvailableDate) {
			t.Fatalf("expected ErrInvalidAvailableDate, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc := NewPhotographerUseCase(nil, nil, nil, quietLogger())
		_, err := uc.AddAvailableDate(context.Background(), " ", day("2026-11-05"))
		if !errors.Is(err, ErrInvalidPhotographerID) {
			t.Fatalf("expected ErrInvalidPhotographerID, got %v", err)
		}
	})

	t.Run("normalises to calendar date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPhotographerRepository(ctrl)
		repo.EXPECT().AddAvailableDate(gomock.Any(), "p1", day("2026-11-05")).Return(testPhotographer(), nil)

		uc := NewPhotographerUseCase(repo, nil, nil, quietLogger())
		_, err := uc.AddAvailableDate(context.Background(), "p1", time.Date(2026, 11, 5, 15, 30, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown photographer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPhotographerRepository(ctrl)
		repo.EXPECT().RemoveAvailableDate(gomock.Any(), "p9", gomock.Any()).Return(entities.Photographer{}, nil)

		uc := NewPhotographerUseCase(repo, nil, nil, quietLogger())
		_, err := uc.RemoveAvailableDate(context.Background(), "p9", day("2026-11-05"))
		if !errors.Is(err, ErrPhotographerNotFound) {
			t.Fatalf("expected ErrPhotographerNotFound, got %v", err)
		}
	})
}

func TestPhotographerUseCase_TimeSlots(t *testing.T) {
	slots := NewPhotographerUseCase(nil, nil, nil, nil).TimeSlots()
	if len(slots) == 0 || slots[0] != "8:00 AM" || slots[len(slots)-1] != "5:00 PM" {
		t.Fatalf("unexpected slots %v", slots)
	}
}
