package request

import (
	"errors"
	"strings"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/booking"
	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

type AddServiceRequest struct {
	ServiceID string   `json:"service_id" binding:"required"`
	AddonIDs  []string `json:"addon_ids"`
	Notes     string   `json:"notes"`
}

type UpdateAddonsRequest struct {
	AddonIDs []string `json:"addon_ids"`
}

// ScheduleRequest assigns photographer, date and time. Omitted fields are left
// unchanged; sending all three schedules the service.
type ScheduleRequest struct {
	PhotographerID *string `json:"photographer_id"`
	ScheduledDate  *string `json:"scheduled_date"`
	ScheduledTime  *string `json:"scheduled_time"`
}

func (r ScheduleRequest) ToAssignment() (booking.Assignment, error) {
	a := booking.Assignment{PhotographerID: r.PhotographerID}
	if r.ScheduledDate != nil {
		d, err := ParseDate(*r.ScheduledDate)
		if err != nil {
			return booking.Assignment{}, err
		}
		a.Date = &d
	}
	if r.ScheduledTime != nil {
		t := strings.TrimSpace(*r.ScheduledTime)
		a.Time = &t
	}
	return a, nil
}

type RescheduleRequest struct {
	PhotographerID string `json:"photographer_id"`
	ScheduledDate  string `json:"scheduled_date" binding:"required"`
	ScheduledTime  string `json:"scheduled_time" binding:"required"`
	Reason         string `json:"reason"`
}

func (r RescheduleRequest) ToReschedule() (booking.RescheduleRequest, error) {
	d, err := ParseDate(r.ScheduledDate)
	if err != nil {
		return booking.RescheduleRequest{}, err
	}
	return booking.RescheduleRequest{
		PhotographerID: r.PhotographerID,
		Date:           d,
		Time:           strings.TrimSpace(r.ScheduledTime),
		Reason:         r.Reason,
	}, nil
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type AvailableDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// ParseDate parses a wire date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	d, err := entities.ParseDate(s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}
