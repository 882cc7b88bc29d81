package catalog

import (
	"context"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// Repository serves a loaded Catalog. The price list is static for the
// lifetime of the process.
type Repository struct {
	c *Catalog
}

var _ interfaces.ICatalogRepository = (*Repository)(nil)

func NewRepository(c *Catalog) *Repository {
	return &Repository{c: c}
}

func (r *Repository) ListServices(_ context.Context) ([]entities.Service, error) {
	return append([]entities.Service(nil), r.c.Services...), nil
}

func (r *Repository) ListAddons(_ context.Context) ([]entities.AddonService, error) {
	return append([]entities.AddonService(nil), r.c.Addons...), nil
}

// SeedPhotographers writes the photographers of the catalog that are not yet
// stored. Existing photographers keep their availability.
func SeedPhotographers(ctx context.Context, repo interfaces.IPhotographerRepository, c *Catalog, log *logrus.Logger) error {
	created := 0
	for _, p := range c.Photographers {
		ok, err := repo.CreateIfAbsent(ctx, p)
		if err != nil {
			return err
		}
		if ok {
			created++
		}
	}
	log.WithFields(logrus.Fields{"created": created, "total": len(c.Photographers)}).
		Info("[catalog] photographers seeded")
	return nil
}
