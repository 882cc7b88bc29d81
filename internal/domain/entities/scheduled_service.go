package entities

import "time"

// ScheduledServiceStatus is the booking lifecycle of a service on a property.
//
// Transitions are owned by the booking state machine; nothing else writes it.
type ScheduledServiceStatus string

const (
	ScheduledServiceStatusPending   ScheduledServiceStatus = "pending"
	ScheduledServiceStatusScheduled ScheduledServiceStatus = "scheduled"
	ScheduledServiceStatusCompleted ScheduledServiceStatus = "completed"
)

// HistoryAction identifies what produced a schedule history entry.
type HistoryAction string

const (
	HistoryActionRescheduled HistoryAction = "rescheduled"
	HistoryActionCancelled   HistoryAction = "cancelled"
)

// ScheduleChange records one reschedule or cancellation.
type ScheduleChange struct {
	Action            HistoryAction `json:"action"`
	OldPhotographerID string        `json:"old_photographer_id,omitempty"`
	NewPhotographerID string        `json:"new_photographer_id,omitempty"`
	OldDate           *time.Time    `json:"old_date,omitempty"`
	OldTime           string        `json:"old_time,omitempty"`
	NewDate           *time.Time    `json:"new_date,omitempty"`
	NewTime           string        `json:"new_time,omitempty"`
	Reason            string        `json:"reason"`
	ChangedAt         time.Time     `json:"changed_at"`
}

// ScheduledService is one service line on a property.
//
// Storage model (DynamoDB):
//   - PK: property_id, SK: service_id (one instance per service per property)
//   - GSI1 (photographer_id-index): photographer_id
type ScheduledService struct {
	PropertyID     string                 `json:"property_id"`
	ServiceID      string                 `json:"service_id"`
	PhotographerID string                 `json:"photographer_id,omitempty"`
	ScheduledDate  *time.Time             `json:"scheduled_date,omitempty"`
	ScheduledTime  string                 `json:"scheduled_time,omitempty"`
	AddonIDs       []string               `json:"addon_ids"`
	Status         ScheduledServiceStatus `json:"status"`
	Notes          string                 `json:"notes,omitempty"`
	History        []ScheduleChange       `json:"history,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// Clone returns a deep copy so snapshots never share slices or pointers with
// the live record.
func (s ScheduledService) Clone() ScheduledService {
	out := s
	if s.ScheduledDate != nil {
		d := *s.ScheduledDate
		out.ScheduledDate = &d
	}
	if s.AddonIDs != nil {
		out.AddonIDs = append([]string(nil), s.AddonIDs...)
	}
	if s.History != nil {
		out.History = make([]ScheduleChange, len(s.History))
		for i, h := range s.History {
			out.History[i] = h.clone()
		}
	}
	return out
}

func (c ScheduleChange) clone() ScheduleChange {
	out := c
	if c.OldDate != nil {
		d := *c.OldDate
		out.OldDate = &d
	}
	if c.NewDate != nil {
		d := *c.NewDate
		out.NewDate = &d
	}
	return out
}
