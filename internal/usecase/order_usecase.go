package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/booking"
	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

type CheckoutInput struct {
	PropertyID string
	CustomerID string
	DueDate    *time.Time
}

// CheckoutResult is the persisted order plus the warning listing services
// that were left out because they were not fully scheduled.
type CheckoutResult struct {
	Order   entities.Order
	Warning *booking.StaleAvailabilityWarning
}

// IOrderUseCase consolidates scheduled services into orders.
//
// Requested behavior:
//   - Checkout invoices only fully scheduled services of the property.
//   - Each checkout creates a new order; nothing is deduplicated.
type IOrderUseCase interface {
	Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByPropertyID(ctx context.Context, propertyID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	repo             interfaces.IOrderRepository
	serviceRepo      interfaces.IScheduledServiceRepository
	catalogRepo      interfaces.ICatalogRepository
	photographerRepo interfaces.IPhotographerRepository
	log              *logrus.Logger
	newID            func() string
	now              func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	serviceRepo interfaces.IScheduledServiceRepository,
	catalogRepo interfaces.ICatalogRepository,
	photographerRepo interfaces.IPhotographerRepository,
	log *logrus.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		repo:             repo,
		serviceRepo:      serviceRepo,
		catalogRepo:      catalogRepo,
		photographerRepo: photographerRepo,
		log:              loggerOrDefault(log),
		newID:            uuid.NewString,
		now:              utcNow,
	}
}

func (u *OrderUseCase) Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	propertyID := strings.TrimSpace(in.PropertyID)
	if propertyID == "" {
		return CheckoutResult{}, ErrInvalidPropertyID
	}
	fields := logrus.Fields{"property_id": propertyID}
	u.log.WithFields(fields).Debug("[order][usecase] checkout start")

	services, err := u.serviceRepo.ListByPropertyID(ctx, propertyID)
	if err != nil {
		return CheckoutResult{}, err
	}
	catalog, err := loadCatalog(ctx, u.catalogRepo)
	if err != nil {
		return CheckoutResult{}, err
	}
	photographers, err := u.photographerRepo.List(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}

	builder := booking.NewOrderBuilder(catalog, booking.NewDirectory(photographers))
	builder.NewID = u.newID
	builder.Now = u.now

	res, err := builder.Build(propertyID, services)
	if err != nil {
		u.log.WithFields(fields).WithError(err).Warn("[order][usecase] checkout rejected")
		return CheckoutResult{}, err
	}

	order := res.Order
	order.CustomerID = strings.TrimSpace(in.CustomerID)
	if in.DueDate != nil {
		d := entities.DateOnly(*in.DueDate)
		order.DueDate = &d
	}

	created, err := u.repo.Create(ctx, order)
	if err != nil {
		u.log.WithFields(fields).WithError(err).Error("[order][usecase] persist failed")
		return CheckoutResult{}, err
	}

	fields["order_id"] = created.ID
	fields["total"] = created.TotalAmount.StringFixed(2)
	if res.Warning != nil {
		u.log.WithFields(fields).WithField("excluded", res.Warning.ExcludedServiceIDs).
			Warn("[order][usecase] services left out of checkout")
	}
	u.log.WithFields(fields).Info("[order][usecase] checkout done")
	return CheckoutResult{Order: created, Warning: res.Warning}, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByPropertyID(ctx context.Context, propertyID string) ([]entities.Order, error) {
	propertyID = strings.TrimSpace(propertyID)
	if propertyID == "" {
		return nil, ErrInvalidPropertyID
	}
	return u.repo.ListByPropertyID(ctx, propertyID)
}

// UpdateStatus sets the order status. Order and payment statuses are
// tracked independently.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}
	o, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.log.WithFields(logrus.Fields{"order_id": id, "status": status}).Info("[order][usecase] status updated")
	return o, nil
}
