package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/heaponte4/aerea-sub000/internal/domain/booking"
	mock_interfaces "github.com/heaponte4/aerea-sub000/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_ListAddons(t *testing.T) {
	t.Run("empty service id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.ListAddons(context.Background(), " ")
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("filters by applicable service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		expectCatalog(repo)

		addons, err := NewCatalogUseCase(repo).ListAddons(context.Background(), "video")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(addons) != 1 || addons[0].ID != "rush" {
			t.Fatalf("expected only rush, got %+v", addons)
		}
	})

	t.Run("unknown service yields empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		expectCatalog(repo)

		addons, err := NewCatalogUseCase(repo).ListAddons(context.Background(), "nope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(addons) != 0 {
			t.Fatalf("expected no addons, got %+v", addons)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		repo.EXPECT().ListServices(gomock.Any()).Return(nil, errors.New("db"))

		_, err := NewCatalogUseCase(repo).ListAddons(context.Background(), "photo")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCatalogUseCase_QuotePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICatalogRepository(ctrl)
	expectCatalog(repo)
	uc := NewCatalogUseCase(repo)

	t.Run("base plus addons", func(t *testing.T) {
		got, err := uc.QuotePrice(context.Background(), "photo", []string{"twilight", "rush"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(decimal.NewFromInt(450)) {
			t.Fatalf("expected 450, got %s", got)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		_, err := uc.QuotePrice(context.Background(), "nope", nil)
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("ineligible addon", func(t *testing.T) {
		_, err := uc.QuotePrice(context.Background(), "video", []string{"twilight"})
		if !errors.Is(err, booking.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
