package interfaces

import (
	"context"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

//go:generate mockgen -source=photographer_repository_interface.go -destination=mocks/photographer_repository_mock.go -package=mock_interfaces

// IPhotographerRepository persists the photographer directory.
//
// Lookups return a zero Photographer (empty ID) when nothing matches.
// Available dates are only changed through Add/RemoveAvailableDate.
type IPhotographerRepository interface {
	List(ctx context.Context) ([]entities.Photographer, error)
	GetByID(ctx context.Context, id string) (entities.Photographer, error)
	CreateIfAbsent(ctx context.Context, p entities.Photographer) (bool, error)
	AddAvailableDate(ctx context.Context, id string, date time.Time) (entities.Photographer, error)
	RemoveAvailableDate(ctx context.Context, id string, date time.Time) (entities.Photographer, error)
}
