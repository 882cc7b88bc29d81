package booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

var (
	ErrValidation             = errors.New("validation failed")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrNoEligibleServices     = errors.New("no eligible services")
)

// ValidationError rejects an input before any state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InvalidStateTransitionError rejects an action not allowed from the current
// status. The service is left untouched.
type InvalidStateTransitionError struct {
	From   entities.ScheduledServiceStatus
	Action string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: cannot %s a %s service", e.Action, e.From)
}

func (e *InvalidStateTransitionError) Is(target error) bool {
	return target == ErrInvalidStateTransition
}

// StaleAvailabilityWarning lists the services left out of an order because
// they were not fully scheduled. It is not an error: the caller decides
// whether to keep the order.
type StaleAvailabilityWarning struct {
	ExcludedServiceIDs []string
}

func (w *StaleAvailabilityWarning) String() string {
	return "excluded services: " + strings.Join(w.ExcludedServiceIDs, ",")
}
