package memory

import (
	"context"
	"sort"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"
)

type PaymentRepository struct {
	s *Store
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func (r *PaymentRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.payments[p.ID]; ok {
		return entities.Payment{}, interfaces.ErrAlreadyExists
	}
	r.s.payments[p.ID] = p
	return p, nil
}

func (r *PaymentRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.payments[id], nil
}

func (r *PaymentRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.Payment, 0)
	for _, p := range r.s.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *PaymentRepository) UpdateStatus(_ context.Context, id string, status entities.PaymentStatus) (entities.Payment, error) {
	return r.update(id, func(p *entities.Payment) { p.Status = status })
}

func (r *PaymentRepository) SetPaidToPhotographer(_ context.Context, id string, paid bool) (entities.Payment, error) {
	return r.update(id, func(p *entities.Payment) { p.PaidToPhotographer = paid })
}

func (r *PaymentRepository) update(id string, fn func(p *entities.Payment)) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.payments[id]
	if !ok {
		return entities.Payment{}, nil
	}
	fn(&p)
	p.UpdatedAt = time.Now().UTC()
	r.s.payments[id] = p
	return p, nil
}
