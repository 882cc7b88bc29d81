package interfaces

import (
	"context"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_mock.go -package=mock_interfaces

// IOrderRepository persists order snapshots.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByPropertyID(ctx context.Context, propertyID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
