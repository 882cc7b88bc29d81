package usecase

import (
	"context"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/booking"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

func loggerOrDefault(l *logrus.Logger) *logrus.Logger {
	if l != nil {
		return l
	}
	return logrus.StandardLogger()
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func loadCatalog(ctx context.Context, repo interfaces.ICatalogRepository) (*booking.Catalog, error) {
	services, err := repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	addons, err := repo.ListAddons(ctx)
	if err != nil {
		return nil, err
	}
	return booking.NewCatalog(services, addons), nil
}
