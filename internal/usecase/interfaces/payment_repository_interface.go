package interfaces

import (
	"context"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_mock.go -package=mock_interfaces

// IPaymentRepository persists recorded payments.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error)
	SetPaidToPhotographer(ctx context.Context, id string, paid bool) (entities.Payment, error)
}
