package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/booking"
	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	mock_interfaces "github.com/heaponte4/aerea-sub000/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type orderMocks struct {
	orders        *mock_interfaces.MockIOrderRepository
	services      *mock_interfaces.MockIScheduledServiceRepository
	catalog       *mock_interfaces.MockICatalogRepository
	photographers *mock_interfaces.MockIPhotographerRepository
}

func newOrderUseCase(t *testing.T) (*OrderUseCase, orderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := orderMocks{
		orders:        mock_interfaces.NewMockIOrderRepository(ctrl),
		services:      mock_interfaces.NewMockIScheduledServiceRepository(ctrl),
		catalog:       mock_interfaces.NewMockICatalogRepository(ctrl),
		photographers: mock_interfaces.NewMockIPhotographerRepository(ctrl),
	}
	expectCatalog(m.catalog)
	uc := NewOrderUseCase(m.orders, m.services, m.catalog, m.photographers, quietLogger())
	uc.newID = func() string { return "order-1" }
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func TestOrderUseCase_Checkout(t *testing.T) {
	t.Run("empty property id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, quietLogger())
		_, err := uc.Checkout(context.Background(), CheckoutInput{})
		if !errors.Is(err, ErrInvalidPropertyID) {
			t.Fatalf("expected ErrInvalidPropertyID, got %v", err)
		}
	})

	t.Run("nothing scheduled", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.services.EXPECT().ListByPropertyID(gomock.Any(), "prop-1").
			Return([]entities.ScheduledService{pendingService("prop-1", "photo")}, nil)
		m.photographers.EXPECT().List(gomock.Any()).Return([]entities.Photographer{testPhotographer()}, nil)

		_, err := uc.Checkout(context.Background(), CheckoutInput{PropertyID: "prop-1"})
		if !errors.Is(err, booking.ErrNoEligibleServices) {
			t.Fatalf("expected ErrNoEligibleServices, got %v", err)
		}
	})

	t.Run("consolidates scheduled services", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		photo := scheduledService("prop-1", "photo", "p1", "2026-11-02")
		photo.AddonIDs = []string{"twilight"}
		video := scheduledService("prop-1", "video", "p1", "2026-11-02")
		m.services.EXPECT().ListByPropertyID(gomock.Any(), "prop-1").
			Return([]entities.ScheduledService{photo, video, pendingService("prop-1", "drone")}, nil)
		m.photographers.EXPECT().List(gomock.Any()).Return([]entities.Photographer{testPhotographer()}, nil)

		var stored entities.Order
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
				stored = o
				return o, nil
			})

		due := time.Date(2026, 11, 30, 18, 0, 0, 0, time.UTC)
		res, err := uc.Checkout(context.Background(), CheckoutInput{PropertyID: "prop-1", CustomerID: "cust-1", DueDate: &due})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// photo 250 + twilight 125 + video 400, one travel fee of 50.
		if !res.Order.ServicesTotal.Equal(decimal.NewFromInt(775)) {
			t.Fatalf("expected services total 775, got %s", res.Order.ServicesTotal)
		}
		if !res.Order.TotalAmount.Equal(decimal.NewFromInt(825)) {
			t.Fatalf("expected total 825, got %s", res.Order.TotalAmount)
		}
		if len(res.Order.TravelFees) != 1 {
			t.Fatalf("expected one travel fee, got %+v", res.Order.TravelFees)
		}
		if res.Order.ID != "order-1" || res.Order.CustomerID != "cust-1" {
			t.Fatalf("unexpected order %+v", res.Order)
		}
		if res.Order.DueDate == nil || entities.DateKey(*res.Order.DueDate) != "2026-11-30" {
			t.Fatalf("unexpected due date %v", res.Order.DueDate)
		}
		if res.Warning == nil || len(res.Warning.ExcludedServiceIDs) != 1 || res.Warning.ExcludedServiceIDs[0] != "drone" {
			t.Fatalf("expected warning for drone, got %+v", res.Warning)
		}
		if stored.ID != res.Order.ID {
			t.Fatalf("expected persisted order, got %+v", stored)
		}
	})

	t.Run("persist error", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.services.EXPECT().ListByPropertyID(gomock.Any(), "prop-1").
			Return([]entities.ScheduledService{scheduledService("prop-1", "photo", "p1", "2026-11-02")}, nil)
		m.photographers.EXPECT().List(gomock.Any()).Return([]entities.Photographer{testPhotographer()}, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.Checkout(context.Background(), CheckoutInput{PropertyID: "prop-1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		_, err := NewOrderUseCase(nil, nil, nil, nil, nil).GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "o-9").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "o-9")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newOrderUseCase(t)
		_, err := uc.UpdateStatus(context.Background(), "o-1", entities.OrderStatus("shipped"))
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("updated", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusPaid).
			Return(entities.Order{ID: "o-1", Status: entities.OrderStatusPaid}, nil)

		got, err := uc.UpdateStatus(context.Background(), "o-1", entities.OrderStatusPaid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusPaid {
			t.Fatalf("expected paid, got %s", got.Status)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "o-9", entities.OrderStatusPaid).Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "o-9", entities.OrderStatusPaid)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
