package memory

import (
	"context"
	"sort"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"
)

type ScheduledServiceRepository struct {
	s *Store
}

var _ interfaces.IScheduledServiceRepository = (*ScheduledServiceRepository)(nil)

func (r *ScheduledServiceRepository) Get(_ context.Context, propertyID, serviceID string) (entities.ScheduledService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	svc, ok := r.s.services[serviceKey{propertyID, serviceID}]
	if !ok {
		return entities.ScheduledService{}, nil
	}
	return svc.Clone(), nil
}

func (r *ScheduledServiceRepository) ListByPropertyID(_ context.Context, propertyID string) ([]entities.ScheduledService, error) {
	return r.filter(func(s entities.ScheduledService) bool { return s.PropertyID == propertyID }), nil
}

func (r *ScheduledServiceRepository) ListByPhotographerID(_ context.Context, photographerID string) ([]entities.ScheduledService, error) {
	return r.filter(func(s entities.ScheduledService) bool {
		return photographerID != "" && s.PhotographerID == photographerID
	}), nil
}

func (r *ScheduledServiceRepository) filter(keep func(entities.ScheduledService) bool) []entities.ScheduledService {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.ScheduledService, 0)
	for _, svc := range r.s.services {
		if keep(svc) {
			out = append(out, svc.Clone())
		}
	}
	// Same order as a DynamoDB query on (property_id, service_id).
	sort.Slice(out, func(i, j int) bool {
		if out[i].PropertyID != out[j].PropertyID {
			return out[i].PropertyID < out[j].PropertyID
		}
		return out[i].ServiceID < out[j].ServiceID
	})
	return out
}

func (r *ScheduledServiceRepository) Create(_ context.Context, svc entities.ScheduledService) (entities.ScheduledService, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := serviceKey{svc.PropertyID, svc.ServiceID}
	if _, ok := r.s.services[k]; ok {
		return entities.ScheduledService{}, interfaces.ErrAlreadyExists
	}
	r.s.services[k] = svc.Clone()
	return svc.Clone(), nil
}

func (r *ScheduledServiceRepository) Save(_ context.Context, svc entities.ScheduledService) (entities.ScheduledService, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := serviceKey{svc.PropertyID, svc.ServiceID}
	if _, ok := r.s.services[k]; !ok {
		return entities.ScheduledService{}, nil
	}
	r.s.services[k] = svc.Clone()
	return svc.Clone(), nil
}
