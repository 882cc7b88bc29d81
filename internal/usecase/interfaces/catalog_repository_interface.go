package interfaces

import (
	"context"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_mock.go -package=mock_interfaces

// ICatalogRepository exposes the static price list (services and add-ons).
type ICatalogRepository interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	ListAddons(ctx context.Context) ([]entities.AddonService, error)
}
