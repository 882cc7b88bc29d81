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
	ErrInvalidPropertyID             = errors.New("invalid property id")
	ErrScheduledServiceNotFound      = errors.New("scheduled service not found")
	ErrScheduledServiceAlreadyExists = errors.New("scheduled service already exists")
	ErrPhotographerNotQualified      = errors.New("photographer does not offer this service")
	ErrPhotographerUnavailable       = errors.New("photographer not available on this date")
)

// IBookingUseCase drives the lifecycle of services booked on a property.
//
// Status changes go through the booking state machine only:
//   - AddService creates a pending line
//   - Assign records photographer/date/time (scheduled once all three are set together)
//   - Reschedule / Cancel / Complete move a scheduled line
type IBookingUseCase interface {
	AddService(ctx context.Context, propertyID, serviceID string, addonIDs []string, notes string) (entities.ScheduledService, error)
	GetService(ctx context.Context, propertyID, serviceID string) (entities.ScheduledService, error)
	ListByPropertyID(ctx context.Context, propertyID string) ([]entities.ScheduledService, error)
	UpdateAddons(ctx context.Context, propertyID, serviceID string, addonIDs []string) (entities.ScheduledService, error)
	Assign(ctx context.Context, propertyID, serviceID string, a booking.Assignment) (entities.ScheduledService, error)
	Reschedule(ctx context.Context, propertyID, serviceID string, req booking.RescheduleRequest) (entities.ScheduledService, error)
	Complete(ctx context.Context, propertyID, serviceID string) (entities.ScheduledService, error)
	Cancel(ctx context.Context, propertyID, serviceID, reason string) (entities.ScheduledService, error)
}

type BookingUseCase struct {
	repo             interfaces.IScheduledServiceRepository
	catalogRepo      interfaces.ICatalogRepository
	photographerRepo interfaces.IPhotographerRepository
	log              *logrus.Logger
	now              func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	repo interfaces.IScheduledServiceRepository,
	catalogRepo interfaces.ICatalogRepository,
	photographerRepo interfaces.IPhotographerRepository,
	log *logrus.Logger,
) *BookingUseCase {
	return &BookingUseCase{
		repo:             repo,
		catalogRepo:      catalogRepo,
		photographerRepo: photographerRepo,
		log:              loggerOrDefault(log),
		now:              utcNow,
	}
}

func (u *BookingUseCase) AddService(ctx context.Context, propertyID, serviceID string, addonIDs []string, notes string) (entities.ScheduledService, error) {
	propertyID, serviceID, err := normalizeKey(propertyID, serviceID)
	if err != nil {
		return entities.ScheduledService{}, err
	}

	catalog, err := loadCatalog(ctx, u.catalogRepo)
	if err != nil {
		return entities.ScheduledService{}, err
	}
	svc, ok := catalog.Service(serviceID)
	if !ok {
		return entities.ScheduledService{}, ErrServiceNotFound
	}
	if _, err := catalog.PriceService(svc, addonIDs); err != nil {
		return entities.ScheduledService{}, err
	}

	// Enforce: 1 scheduled service per (property, service).
	if existing, err := u.repo.Get(ctx, propertyID, serviceID); err != nil {
		return entities.ScheduledService{}, err
	} else if existing.ServiceID != "" {
		return entities.ScheduledService{}, ErrScheduledServiceAlreadyExists
	}

	s := booking.NewScheduledService(propertyID, serviceID, addonIDs, strings.TrimSpace(notes), u.now())
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.ScheduledService{}, ErrScheduledServiceAlreadyExists
		}
		return entities.ScheduledService{}, err
	}
	u.log.WithFields(logrus.Fields{"property_id": propertyID, "service_id": serviceID}).
		Info("[booking][usecase] service added")
	return created, nil
}

func (u *BookingUseCase) GetService(ctx context.Context, propertyID, serviceID string) (entities.ScheduledService, error) {
	propertyID, serviceID, err := normalizeKey(propertyID, serviceID)
	if err != nil {
		return entities.ScheduledService{}, err
	}
	return u.load(ctx, propertyID, serviceID)
}

func (u *BookingUseCase) ListByPropertyID(ctx context.Context, propertyID string) ([]entities.ScheduledService, error) {
	propertyID = strings.TrimSpace(propertyID)
	if propertyID == "" {
		return nil, ErrInvalidPropertyID
	}
	return u.repo.ListByPropertyID(ctx, propertyID)
}

func (u *BookingUseCase) UpdateAddons(ctx context.Context, propertyID, serviceID string, addonIDs []string) (entities.ScheduledService, error) {
	return u.transition(ctx, propertyID, serviceID, "update-addons", func(s entities.ScheduledService, catalog *booking.Catalog) (entities.ScheduledService, error) {
		out, err := booking.SetAddons(s, addonIDs, u.now())
		if err != nil {
			return s, err
		}
		if _, err := catalog.PriceScheduled(out); err != nil {
			return s, err
		}
		return out, nil
	})
}

func (u *BookingUseCase) Assign(ctx context.Context, propertyID, serviceID string, a booking.Assignment) (entities.ScheduledService, error) {
	return u.transition(ctx, propertyID, serviceID, "assign", func(s entities.ScheduledService, catalog *booking.Catalog) (entities.ScheduledService, error) {
		out, err := booking.ApplyAssignment(s, a, u.now())
		if err != nil {
			return s, err
		}
		if a.PhotographerID == nil && a.Date == nil {
			return out, nil
		}
		if err := u.checkPhotographer(ctx, catalog, out); err != nil {
			return s, err
		}
		return out, nil
	})
}

func (u *BookingUseCase) Reschedule(ctx context.Context, propertyID, serviceID string, req booking.RescheduleRequest) (entities.ScheduledService, error) {
	return u.transition(ctx, propertyID, serviceID, "reschedule", func(s entities.ScheduledService, catalog *booking.Catalog) (entities.ScheduledService, error) {
		out, err := booking.Reschedule(s, req, u.now())
		if err != nil {
			return s, err
		}
		if err := u.checkPhotographer(ctx, catalog, out); err != nil {
			return s, err
		}
		return out, nil
	})
}

func (u *BookingUseCase) Complete(ctx context.Context, propertyID, serviceID string) (entities.ScheduledService, error) {
	return u.transition(ctx, propertyID, serviceID, "complete", func(s entities.ScheduledService, _ *booking.Catalog) (entities.ScheduledService, error) {
		return booking.Complete(s, u.now())
	})
}

func (u *BookingUseCase) Cancel(ctx context.Context, propertyID, serviceID, reason string) (entities.ScheduledService, error) {
	return u.transition(ctx, propertyID, serviceID, "cancel", func(s entities.ScheduledService, _ *booking.Catalog) (entities.ScheduledService, error) {
		return booking.Cancel(s, reason, u.now())
	})
}

// transition loads the service, applies step and saves the result. Nothing is
// written when step fails.
func (u *BookingUseCase) transition(
	ctx context.Context,
	propertyID, serviceID, action string,
	step func(s entities.ScheduledService, catalog *booking.Catalog) (entities.ScheduledService, error),
) (entities.ScheduledService, error) {
	propertyID, serviceID, err := normalizeKey(propertyID, serviceID)
	if err != nil {
		return entities.ScheduledService{}, err
	}
	fields := logrus.Fields{"property_id": propertyID, "service_id": serviceID, "action": action}

	current, err := u.load(ctx, propertyID, serviceID)
	if err != nil {
		return entities.ScheduledService{}, err
	}
	catalog, err := loadCatalog(ctx, u.catalogRepo)
	if err != nil {
		return entities.ScheduledService{}, err
	}

	next, err := step(current, catalog)
	if err != nil {
		u.log.WithFields(fields).WithError(err).Warn("[booking][usecase] transition rejected")
		return entities.ScheduledService{}, err
	}

	saved, err := u.repo.Save(ctx, next)
	if err != nil {
		u.log.WithFields(fields).WithError(err).Error("[booking][usecase] save failed")
		return entities.ScheduledService{}, err
	}
	if saved.ServiceID == "" {
		return entities.ScheduledService{}, ErrScheduledServiceNotFound
	}
	fields["status"] = saved.Status
	u.log.WithFields(fields).Info("[booking][usecase] transition applied")
	return saved, nil
}

func (u *BookingUseCase) load(ctx context.Context, propertyID, serviceID string) (entities.ScheduledService, error) {
	s, err := u.repo.Get(ctx, propertyID, serviceID)
	if err != nil {
		return entities.ScheduledService{}, err
	}
	if s.ServiceID == "" {
		return entities.ScheduledService{}, ErrScheduledServiceNotFound
	}
	return s, nil
}

// checkPhotographer verifies that the photographer on s offers the service
// and, once a date is set, declared it and is not booked on it for another
// property. Several services of the same property may share a visit.
//
// This is a read-then-decide check; concurrent bookers are not serialised.
func (u *BookingUseCase) checkPhotographer(ctx context.Context, catalog *booking.Catalog, s entities.ScheduledService) error {
	if s.PhotographerID == "" {
		return nil
	}
	p, err := u.photographerRepo.GetByID(ctx, s.PhotographerID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPhotographerNotFound
	}
	svc, ok := catalog.Service(s.ServiceID)
	if !ok {
		return ErrServiceNotFound
	}
	if !p.HasSpecialty(svc.Name) {
		return ErrPhotographerNotQualified
	}
	if s.ScheduledDate == nil {
		return nil
	}

	booked, err := u.repo.ListByPhotographerID(ctx, p.ID)
	if err != nil {
		return err
	}
	others := make([]entities.ScheduledService, 0, len(booked))
	for _, b := range booked {
		if b.PropertyID != s.PropertyID {
			others = append(others, b)
		}
	}
	free := p
	free.AvailableDates = booking.AvailableDatesFor(p, booking.BookedDates(p.ID, others))
	if !free.IsAvailableOn(*s.ScheduledDate) {
		return ErrPhotographerUnavailable
	}
	return nil
}

func normalizeKey(propertyID, serviceID string) (string, string, error) {
	propertyID = strings.TrimSpace(propertyID)
	if propertyID == "" {
		return "", "", ErrInvalidPropertyID
	}
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return "", "", ErrInvalidServiceID
	}
	return propertyID, serviceID, nil
}
