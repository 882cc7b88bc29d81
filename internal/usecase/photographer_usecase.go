package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/booking"
	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrPhotographerNotFound  = errors.New("photographer not found")
	ErrInvalidPhotographerID = errors.New("invalid photographer id")
	ErrInvalidAvailableDate  = errors.New("invalid available date")
)

// IPhotographerUseCase covers the photographer directory and availability
// filter.
type IPhotographerUseCase interface {
	List(ctx context.Context) ([]entities.Photographer, error)
	GetByID(ctx context.Context, id string) (entities.Photographer, error)
	FindEligible(ctx context.Context, serviceIDs []string) ([]entities.Photographer, error)
	AvailableDates(ctx context.Context, id string) ([]time.Time, error)
	AddAvailableDate(ctx context.Context, id string, date time.Time) (entities.Photographer, error)
	RemoveAvailableDate(ctx context.Context, id string, date time.Time) (entities.Photographer, error)
	TimeSlots() []string
}

type PhotographerUseCase struct {
	repo        interfaces.IPhotographerRepository
	serviceRepo interfaces.IScheduledServiceRepository
	catalogRepo interfaces.ICatalogRepository
	log         *logrus.Logger
}

var _ IPhotographerUseCase = (*PhotographerUseCase)(nil)

func NewPhotographerUseCase(
	repo interfaces.IPhotographerRepository,
	serviceRepo interfaces.IScheduledServiceRepository,
	catalogRepo interfaces.ICatalogRepository,
	log *logrus.Logger,
) *PhotographerUseCase {
	return &PhotographerUseCase{repo: repo, serviceRepo: serviceRepo, catalogRepo: catalogRepo, log: loggerOrDefault(log)}
}

func (u *PhotographerUseCase) List(ctx context.Context) ([]entities.Photographer, error) {
	return u.repo.List(ctx)
}

func (u *PhotographerUseCase) GetByID(ctx context.Context, id string) (entities.Photographer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Photographer{}, ErrInvalidPhotographerID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Photographer{}, err
	}
	if p.ID == "" {
		return entities.Photographer{}, ErrPhotographerNotFound
	}
	return p, nil
}

// FindEligible returns the photographers able to perform every service in
// serviceIDs. Without ids the whole directory is returned.
func (u *PhotographerUseCase) FindEligible(ctx context.Context, serviceIDs []string) ([]entities.Photographer, error) {
	photographers, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(serviceIDs) == 0 {
		return photographers, nil
	}

	catalog, err := loadCatalog(ctx, u.catalogRepo)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, ok := catalog.Service(strings.TrimSpace(id))
		if !ok {
			return nil, ErrServiceNotFound
		}
		names = append(names, svc.Name)
	}
	return booking.FindEligiblePhotographers(photographers, names), nil
}

// AvailableDates returns the declared dates of the photographer that are not
// yet taken by a scheduled or completed service.
func (u *PhotographerUseCase) AvailableDates(ctx context.Context, id string) ([]time.Time, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	services, err := u.serviceRepo.ListByPhotographerID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return booking.AvailableDatesFor(p, booking.BookedDates(p.ID, services)), nil
}

func (u *PhotographerUseCase) AddAvailableDate(ctx context.Context, id string, date time.Time) (entities.Photographer, error) {
	return u.changeAvailability(ctx, id, date, "add")
}

func (u *PhotographerUseCase) RemoveAvailableDate(ctx context.Context, id string, date time.Time) (entities.Photographer, error) {
	return u.changeAvailability(ctx, id, date, "remove")
}

func (u *PhotographerUseCase) changeAvailability(
	ctx context.Context,
	id string,
	date time.Time,
	action string,
) (entities.Photographer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Photographer{}, ErrInvalidPhotographerID
	}
	if date.IsZero() {
		return entities.Photographer{}, ErrInvalidAvailableDate
	}
	date = entities.DateOnly(date)

	var updated entities.Photographer
	var err error
	if action == "add" {
		updated, err = u.repo.AddAvailableDate(ctx, id, date)
	} else {
		updated, err = u.repo.RemoveAvailableDate(ctx, id, date)
	}
	if err != nil {
		u.log.WithFields(logrus.Fields{"photographer_id": id, "date": entities.DateKey(date), "action": action}).
			WithError(err).Error("[photographer][usecase] availability update failed")
		return entities.Photographer{}, err
	}
	if updated.ID == "" {
		return entities.Photographer{}, ErrPhotographerNotFound
	}
	u.log.WithFields(logrus.Fields{"photographer_id": id, "date": entities.DateKey(date), "action": action}).
		Info("[photographer][usecase] availability updated")
	return updated, nil
}

func (u *PhotographerUseCase) TimeSlots() []string {
	return booking.TimeSlots()
}
