package response

import (
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

type ScheduleChangeResponse struct {
	Action            string    `json:"action"`
	OldPhotographerID string    `json:"old_photographer_id,omitempty"`
	NewPhotographerID string    `json:"new_photographer_id,omitempty"`
	OldDate           string    `json:"old_date,omitempty"`
	OldTime           string    `json:"old_time,omitempty"`
	NewDate           string    `json:"new_date,omitempty"`
	NewTime           string    `json:"new_time,omitempty"`
	Reason            string    `json:"reason"`
	ChangedAt         time.Time `json:"changed_at"`
}

type ScheduledServiceResponse struct {
	PropertyID     string                   `json:"property_id"`
	ServiceID      string                   `json:"service_id"`
	PhotographerID string                   `json:"photographer_id,omitempty"`
	ScheduledDate  string                   `json:"scheduled_date,omitempty"`
	ScheduledTime  string                   `json:"scheduled_time,omitempty"`
	AddonIDs       []string                 `json:"addon_ids"`
	Status         string                   `json:"status"`
	Notes          string                   `json:"notes,omitempty"`
	History        []ScheduleChangeResponse `json:"history"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

func FromScheduledService(s entities.ScheduledService) ScheduledServiceResponse {
	history := make([]ScheduleChangeResponse, 0, len(s.History))
	for _, h := range s.History {
		history = append(history, ScheduleChangeResponse{
			Action:            string(h.Action),
			OldPhotographerID: h.OldPhotographerID,
			NewPhotographerID: h.NewPhotographerID,
			OldDate:           datePtr(h.OldDate),
			OldTime:           h.OldTime,
			NewDate:           datePtr(h.NewDate),
			NewTime:           h.NewTime,
			Reason:            h.Reason,
			ChangedAt:         h.ChangedAt,
		})
	}
	return ScheduledServiceResponse{
		PropertyID:     s.PropertyID,
		ServiceID:      s.ServiceID,
		PhotographerID: s.PhotographerID,
		ScheduledDate:  datePtr(s.ScheduledDate),
		ScheduledTime:  s.ScheduledTime,
		AddonIDs:       nonNil(s.AddonIDs),
		Status:         string(s.Status),
		Notes:          s.Notes,
		History:        history,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromScheduledServices(list []entities.ScheduledService) []ScheduledServiceResponse {
	out := make([]ScheduledServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromScheduledService(s))
	}
	return out
}

func datePtr(d *time.Time) string {
	if d == nil {
		return ""
	}
	return entities.DateKey(*d)
}
