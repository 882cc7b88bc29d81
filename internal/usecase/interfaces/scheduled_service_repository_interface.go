package interfaces

import (
	"context"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

//go:generate mockgen -source=scheduled_service_repository_interface.go -destination=mocks/scheduled_service_repository_mock.go -package=mock_interfaces

// IScheduledServiceRepository persists the services booked on properties,
// keyed by (property_id, service_id).
type IScheduledServiceRepository interface {
	Get(ctx context.Context, propertyID, serviceID string) (entities.ScheduledService, error)
	ListByPropertyID(ctx context.Context, propertyID string) ([]entities.ScheduledService, error)
	ListByPhotographerID(ctx context.Context, photographerID string) ([]entities.ScheduledService, error)
	Create(ctx context.Context, s entities.ScheduledService) (entities.ScheduledService, error)
	Save(ctx context.Context, s entities.ScheduledService) (entities.ScheduledService, error)
}
