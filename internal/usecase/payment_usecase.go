package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInvalidPaymentID      = errors.New("invalid payment id")
	ErrInvalidPaymentOrderID = errors.New("invalid order id")
	ErrInvalidPaymentAmount  = errors.New("invalid payment amount")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
)

// RecordPaymentInput describes a payment that already happened outside the
// system. Status defaults to pending.
type RecordPaymentInput struct {
	OrderID        string
	PhotographerID string
	Amount         decimal.Decimal
	TravelFee      decimal.Decimal
	Status         entities.PaymentStatus
	Method         string
	Notes          string
}

// IPaymentUseCase records payments against orders.
//
// Requested behavior:
//   - Payments are recorded facts, no provider is called.
//   - Payment status never changes the order status (and vice versa).
type IPaymentUseCase interface {
	Record(ctx context.Context, in RecordPaymentInput) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error)
	SetPaidToPhotographer(ctx context.Context, id string, paid bool) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	orderRepo interfaces.IOrderRepository
	log       *logrus.Logger
	newID     func() string
	now       func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orderRepo interfaces.IOrderRepository, log *logrus.Logger) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo, log: loggerOrDefault(log), newID: uuid.NewString, now: utcNow}
}

func (u *PaymentUseCase) Record(ctx context.Context, in RecordPaymentInput) (entities.Payment, error) {
	orderID := strings.TrimSpace(in.OrderID)
	if orderID == "" {
		return entities.Payment{}, ErrInvalidPaymentOrderID
	}
	if !in.Amount.IsPositive() || in.TravelFee.IsNegative() {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}
	status := in.Status
	if status == "" {
		status = entities.PaymentStatusPending
	}
	if !status.Valid() {
		return entities.Payment{}, ErrInvalidPaymentStatus
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if order.ID == "" {
		return entities.Payment{}, ErrOrderNotFound
	}

	now := u.now()
	p := entities.Payment{
		ID:             u.newID(),
		OrderID:        orderID,
		PhotographerID: strings.TrimSpace(in.PhotographerID),
		Amount:         in.Amount,
		TravelFee:      in.TravelFee,
		Status:         status,
		Method:         strings.TrimSpace(in.Method),
		Notes:          strings.TrimSpace(in.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.WithField("order_id", orderID).WithError(err).Error("[payment][usecase] persist failed")
		return entities.Payment{}, err
	}
	u.log.WithFields(logrus.Fields{
		"payment_id": created.ID,
		"order_id":   orderID,
		"amount":     created.Amount.StringFixed(2),
		"status":     created.Status,
	}).Info("[payment][usecase] payment recorded")
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidPaymentOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

func (u *PaymentUseCase) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if !status.Valid() {
		return entities.Payment{}, ErrInvalidPaymentStatus
	}
	p, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	u.log.WithFields(logrus.Fields{"payment_id": id, "status": status}).Info("[payment][usecase] status updated")
	return p, nil
}

func (u *PaymentUseCase) SetPaidToPhotographer(ctx context.Context, id string, paid bool) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.SetPaidToPhotographer(ctx, id, paid)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	u.log.WithFields(logrus.Fields{"payment_id": id, "paid": paid}).Info("[payment][usecase] photographer payout flag set")
	return p, nil
}
