// Package memory is an in-process implementation of the repository
// interfaces, used for local runs (STORE_BACKEND=memory) and end-to-end tests.
//
// It follows the same contract as the DynamoDB repositories: lookups return a
// zero value when nothing matches and values are copied in and out.
package memory

import (
	"sync"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

type serviceKey struct {
	propertyID string
	serviceID  string
}

// Store holds every table behind one mutex.
type Store struct {
	mu            sync.RWMutex
	photographers map[string]entities.Photographer
	services      map[serviceKey]entities.ScheduledService
	orders        map[string]entities.Order
	payments      map[string]entities.Payment
}

func NewStore() *Store {
	return &Store{
		photographers: map[string]entities.Photographer{},
		services:      map[serviceKey]entities.ScheduledService{},
		orders:        map[string]entities.Order{},
		payments:      map[string]entities.Payment{},
	}
}

func (s *Store) Photographers() *PhotographerRepository {
	return &PhotographerRepository{s: s}
}

func (s *Store) ScheduledServices() *ScheduledServiceRepository {
	return &ScheduledServiceRepository{s: s}
}

func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{s: s}
}

func (s *Store) Payments() *PaymentRepository {
	return &PaymentRepository{s: s}
}

func clonePhotographer(p entities.Photographer) entities.Photographer {
	out := p
	out.Specialties = append([]string{}, p.Specialties...)
	out.AvailableDates = append([]time.Time{}, p.AvailableDates...)
	return out
}

func cloneOrder(o entities.Order) entities.Order {
	out := o
	out.Services = make([]entities.ScheduledService, len(o.Services))
	for i, s := range o.Services {
		out.Services[i] = s.Clone()
	}
	out.TravelFees = append([]entities.TravelFee{}, o.TravelFees...)
	if o.DueDate != nil {
		d := *o.DueDate
		out.DueDate = &d
	}
	return out
}
