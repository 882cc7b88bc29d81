package memory

import (
	"context"
	"sort"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"
)

type PhotographerRepository struct {
	s *Store
}

var _ interfaces.IPhotographerRepository = (*PhotographerRepository)(nil)

func (r *PhotographerRepository) List(_ context.Context) ([]entities.Photographer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.Photographer, 0, len(r.s.photographers))
	for _, p := range r.s.photographers {
		out = append(out, clonePhotographer(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PhotographerRepository) GetByID(_ context.Context, id string) (entities.Photographer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.photographers[id]
	if !ok {
		return entities.Photographer{}, nil
	}
	return clonePhotographer(p), nil
}

func (r *PhotographerRepository) CreateIfAbsent(_ context.Context, p entities.Photographer) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.photographers[p.ID]; ok {
		return false, nil
	}
	p = clonePhotographer(p)
	p.AvailableDates = normaliseDates(p.AvailableDates)
	r.s.photographers[p.ID] = p
	return true, nil
}

func (r *PhotographerRepository) AddAvailableDate(_ context.Context, id string, date time.Time) (entities.Photographer, error) {
	return r.change(id, func(dates []time.Time) []time.Time {
		return normaliseDates(append(dates, date))
	})
}

func (r *PhotographerRepository) RemoveAvailableDate(_ context.Context, id string, date time.Time) (entities.Photographer, error) {
	key := entities.DateKey(date)
	return r.change(id, func(dates []time.Time) []time.Time {
		out := dates[:0]
		for _, d := range dates {
			if entities.DateKey(d) != key {
				out = append(out, d)
			}
		}
		return out
	})
}

func (r *PhotographerRepository) change(id string, fn func([]time.Time) []time.Time) (entities.Photographer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.photographers[id]
	if !ok {
		return entities.Photographer{}, nil
	}
	p = clonePhotographer(p)
	p.AvailableDates = fn(p.AvailableDates)
	r.s.photographers[id] = p
	return clonePhotographer(p), nil
}

// normaliseDates mirrors the string-set semantics of the DynamoDB table:
// unique calendar dates in ascending order.
func normaliseDates(dates []time.Time) []time.Time {
	seen := make(map[string]struct{}, len(dates))
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		d = entities.DateOnly(d)
		k := entities.DateKey(d)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
