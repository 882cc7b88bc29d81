package memory

import (
	"context"
	"sort"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"
)

type OrderRepository struct {
	s *Store
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.orders[o.ID]; ok {
		return entities.Order{}, interfaces.ErrAlreadyExists
	}
	r.s.orders[o.ID] = cloneOrder(o)
	return cloneOrder(o), nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return cloneOrder(o), nil
}

func (r *OrderRepository) ListByPropertyID(_ context.Context, propertyID string) ([]entities.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.Order, 0)
	for _, o := range r.s.orders {
		if o.PropertyID == propertyID {
			out = append(out, cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	o.Status = status
	r.s.orders[id] = o
	return cloneOrder(o), nil
}
