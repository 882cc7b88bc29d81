package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidServiceID = errors.New("invalid service id")
)

// ICatalogUseCase exposes the price list and line-item quotes.
type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	ListAddons(ctx context.Context, serviceID string) ([]entities.AddonService, error)
	QuotePrice(ctx context.Context, serviceID string, addonIDs []string) (decimal.Decimal, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	return u.repo.ListServices(ctx)
}

// ListAddons returns the add-ons applicable to serviceID; unknown services
// yield an empty list.
func (u *CatalogUseCase) ListAddons(ctx context.Context, serviceID string) ([]entities.AddonService, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidServiceID
	}
	catalog, err := loadCatalog(ctx, u.repo)
	if err != nil {
		return nil, err
	}
	return catalog.ListAddons(serviceID), nil
}

func (u *CatalogUseCase) QuotePrice(ctx context.Context, serviceID string, addonIDs []string) (decimal.Decimal, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return decimal.Zero, ErrInvalidServiceID
	}
	catalog, err := loadCatalog(ctx, u.repo)
	if err != nil {
		return decimal.Zero, err
	}
	svc, ok := catalog.Service(serviceID)
	if !ok {
		return decimal.Zero, ErrServiceNotFound
	}
	return catalog.PriceService(svc, addonIDs)
}
