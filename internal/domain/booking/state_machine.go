package booking

import (
	"strings"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

// NewScheduledService creates a pending service line on a property.
func NewScheduledService(propertyID, serviceID string, addonIDs []string, notes string, now time.Time) entities.ScheduledService {
	return entities.ScheduledService{
		PropertyID: propertyID,
		ServiceID:  serviceID,
		AddonIDs:   append([]string{}, addonIDs...),
		Status:     entities.ScheduledServiceStatusPending,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Assignment is one update of photographer, date and time. Nil fields are
// left unchanged.
type Assignment struct {
	PhotographerID *string
	Date           *time.Time
	Time           *string
}

func (a Assignment) isComplete() bool {
	return a.PhotographerID != nil && a.Date != nil && a.Time != nil
}

func (a Assignment) isEmpty() bool {
	return a.PhotographerID == nil && a.Date == nil && a.Time == nil
}

func (a Assignment) validate() error {
	if a.isEmpty() {
		return invalid("assignment", "photographer, date or time is required")
	}
	if a.PhotographerID != nil && strings.TrimSpace(*a.PhotographerID) == "" {
		return invalid("photographer_id", "must not be empty")
	}
	if a.Time != nil {
		if _, err := canonicalTime(*a.Time); err != nil {
			return err
		}
	}
	return nil
}

// canonicalTime parses v and returns it in slot form ("09:00 AM" becomes
// "9:00 AM"). Only offered slots are accepted.
func canonicalTime(v string) (string, error) {
	t, err := time.Parse(entities.TimeLayout, strings.TrimSpace(v))
	if err != nil {
		return "", invalid("scheduled_time", "%q is not a time like 9:00 AM", v)
	}
	slot := t.Format(entities.TimeLayout)
	if !IsTimeSlot(slot) {
		return "", invalid("scheduled_time", "%s is not an offered slot", slot)
	}
	return slot, nil
}

// ApplyAssignment records an assignment on a pending service.
//
// Only an update carrying photographer, date and time together moves the
// service to scheduled; partial updates are stored but keep it pending.
// Scheduled services change through Reschedule, completed ones never change.
func ApplyAssignment(s entities.ScheduledService, a Assignment, now time.Time) (entities.ScheduledService, error) {
	if s.Status != entities.ScheduledServiceStatusPending {
		return s, &InvalidStateTransitionError{From: s.Status, Action: "assign"}
	}
	if err := a.validate(); err != nil {
		return s, err
	}

	out := s.Clone()
	if a.PhotographerID != nil {
		out.PhotographerID = strings.TrimSpace(*a.PhotographerID)
	}
	if a.Date != nil {
		d := entities.DateOnly(*a.Date)
		out.ScheduledDate = &d
	}
	if a.Time != nil {
		out.ScheduledTime, _ = canonicalTime(*a.Time)
	}
	if a.isComplete() {
		out.Status = entities.ScheduledServiceStatusScheduled
	}
	out.UpdatedAt = now
	return out, nil
}

// RescheduleRequest moves a scheduled service. An empty PhotographerID keeps
// the current photographer.
type RescheduleRequest struct {
	PhotographerID string
	Date           time.Time
	Time           string
	Reason         string
}

// Reschedule changes the date, time and optionally the photographer of a
// scheduled service, keeping it scheduled and appending a history entry.
func Reschedule(s entities.ScheduledService, req RescheduleRequest, now time.Time) (entities.ScheduledService, error) {
	if s.Status != entities.ScheduledServiceStatusScheduled {
		return s, &InvalidStateTransitionError{From: s.Status, Action: "reschedule"}
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return s, invalid("reason", "must not be empty")
	}
	if req.Date.IsZero() {
		return s, invalid("scheduled_date", "is required")
	}
	slot, err := canonicalTime(req.Time)
	if err != nil {
		return s, err
	}

	out := s.Clone()
	newDate := entities.DateOnly(req.Date)
	change := entities.ScheduleChange{
		Action:            entities.HistoryActionRescheduled,
		OldPhotographerID: s.PhotographerID,
		NewPhotographerID: s.PhotographerID,
		OldDate:           out.ScheduledDate,
		OldTime:           s.ScheduledTime,
		NewDate:           &newDate,
		NewTime:           slot,
		Reason:            reason,
		ChangedAt:         now,
	}
	if p := strings.TrimSpace(req.PhotographerID); p != "" {
		out.PhotographerID = p
		change.NewPhotographerID = p
	}
	d := newDate
	out.ScheduledDate = &d
	out.ScheduledTime = slot
	out.History = append(out.History, change)
	out.UpdatedAt = now
	return out, nil
}

// Complete marks a scheduled service as delivered. It never happens
// automatically when the scheduled date passes.
func Complete(s entities.ScheduledService, now time.Time) (entities.ScheduledService, error) {
	if s.Status != entities.ScheduledServiceStatusScheduled {
		return s, &InvalidStateTransitionError{From: s.Status, Action: "complete"}
	}
	out := s.Clone()
	out.Status = entities.ScheduledServiceStatusCompleted
	out.UpdatedAt = now
	return out, nil
}

// Cancel releases the booking of a scheduled service and returns it to
// pending. The photographer's declared dates are not touched: the date simply
// stops counting as booked.
func Cancel(s entities.ScheduledService, reason string, now time.Time) (entities.ScheduledService, error) {
	if s.Status != entities.ScheduledServiceStatusScheduled {
		return s, &InvalidStateTransitionError{From: s.Status, Action: "cancel"}
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return s, invalid("reason", "must not be empty")
	}

	out := s.Clone()
	out.History = append(out.History, entities.ScheduleChange{
		Action:            entities.HistoryActionCancelled,
		OldPhotographerID: s.PhotographerID,
		OldDate:           out.ScheduledDate,
		OldTime:           s.ScheduledTime,
		Reason:            reason,
		ChangedAt:         now,
	})
	out.PhotographerID = ""
	out.ScheduledDate = nil
	out.ScheduledTime = ""
	out.Status = entities.ScheduledServiceStatusPending
	out.UpdatedAt = now
	return out, nil
}

// SetAddons replaces the add-on selection of a service that is not completed.
// Pricing validity is checked by the caller through Catalog.PriceService.
func SetAddons(s entities.ScheduledService, addonIDs []string, now time.Time) (entities.ScheduledService, error) {
	if s.Status == entities.ScheduledServiceStatusCompleted {
		return s, &InvalidStateTransitionError{From: s.Status, Action: "edit add-ons of"}
	}
	out := s.Clone()
	out.AddonIDs = append([]string{}, addonIDs...)
	out.UpdatedAt = now
	return out, nil
}
