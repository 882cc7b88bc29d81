package handlers

import (
	"errors"
	"net/http"

	request "github.com/heaponte4/aerea-sub000/internal/adapter/http/dto/request"
	"github.com/heaponte4/aerea-sub000/internal/domain/booking"
	"github.com/heaponte4/aerea-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// respond writes appErr as the JSON body. Server errors are also attached to
// the gin context so the access log records them.
func respond(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError && appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapBookingError maps the errors raised by the booking engine. It returns nil
// for anything else so callers can fall through to their own mapping.
func mapBookingError(err error) *pkg.AppError {
	var ve *booking.ValidationError
	var te *booking.InvalidStateTransitionError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("VALIDATION_ERROR", ve.Field+" "+ve.Reason, err, http.StatusBadRequest).WithDetail("field", ve.Field)
	case errors.As(err, &te):
		return pkg.NewDomainError("INVALID_STATE_TRANSITION", "Cannot "+te.Action+" a service that is "+string(te.From), err, http.StatusConflict).
			WithDetail("status", string(te.From))
	case errors.Is(err, booking.ErrNoEligibleServices):
		return pkg.NewDomainError("NO_ELIGIBLE_SERVICES", "No fully scheduled services to invoice", err, http.StatusUnprocessableEntity)
	case errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainError("INVALID_DATE", "Invalid date, expected YYYY-MM-DD", err, http.StatusBadRequest)
	}
	return nil
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
