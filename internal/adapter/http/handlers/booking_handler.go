package handlers

import (
	"errors"
	"net/http"

	request "github.com/heaponte4/aerea-sub000/internal/adapter/http/dto/request"
	response "github.com/heaponte4/aerea-sub000/internal/adapter/http/dto/response"
	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase"
	"github.com/heaponte4/aerea-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles the services booked on a property.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// ListServices godoc
// @Summary  List the services booked on a property
// @Tags     bookings
// @Produce  json
// @Param    property_id path string true "Property ID"
// @Success  200 {array} response.ScheduledServiceResponse
// @Router   /properties/{property_id}/services [get]
func (h *BookingHandler) ListServices(c *gin.Context) {
	list, err := h.usecase.ListByPropertyID(c.Request.Context(), c.Param("property_id"))
	if err != nil {
		respond(c, mapBookingUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromScheduledServices(list))
}

// AddService godoc
// @Summary  Add a service to a property (pending until scheduled)
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    property_id path string true "Property ID"
// @Param    body body request.AddServiceRequest true "Service and add-ons"
// @Success  201 {object} response.ScheduledServiceResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /properties/{property_id}/services [post]
func (h *BookingHandler) AddService(c *gin.Context) {
	var payload request.AddServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, errInvalidPayload)
		return
	}
	s, err := h.usecase.AddService(c.Request.Context(), c.Param("property_id"), payload.ServiceID, payload.AddonIDs, payload.Notes)
	if err != nil {
		respond(c, mapBookingUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromScheduledService(s))
}

// GetService godoc
// @Summary  Get one booked service
// @Tags     bookings
// @Produce  json
// @Param    property_id path string true "Property ID"
// @Param    service_id path string true "Service ID"
// @Success  200 {object} response.ScheduledServiceResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /properties/{property_id}/services/{service_id} [get]
func (h *BookingHandler) GetService(c *gin.Context) {
	s, err := h.usecase.GetService(c.Request.Context(), c.Param("property_id"), c.Param("service_id"))
	h.write(c, s, err)
}

// UpdateAddons godoc
// @Summary  Replace the add-on selection
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    property_id path string true "Property ID"
// @Param    service_id path string true "Service ID"
// @Param    body body request.UpdateAddonsRequest true "Add-ons"
// @Success  200 {object} response.ScheduledServiceResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /properties/{property_id}/services/{service_id}/addons [put]
func (h *BookingHandler) UpdateAddons(c *gin.Context) {
	var payload request.UpdateAddonsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, errInvalidPayload)
		return
	}
	s, err := h.usecase.UpdateAddons(c.Request.Context(), c.Param("property_id"), c.Param("service_id"), payload.AddonIDs)
	h.write(c, s, err)
}

// Schedule godoc
// @Summary      Assign photographer, date and time
// @Description  Fields may be sent separately; the service becomes scheduled only when all three arrive in one request.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        property_id path string true "Property ID"
// @Param        service_id path string true "Service ID"
// @Param        body body request.ScheduleRequest true "Assignment"
// @Success      200 {object} response.ScheduledServiceResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /properties/{property_id}/services/{service_id}/schedule [patch]
func (h *BookingHandler) Schedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, errInvalidPayload)
		return
	}
	a, err := payload.ToAssignment()
	if err != nil {
		respond(c, mapBookingUseCaseError(err))
		return
	}
	s, err := h.usecase.Assign(c.Request.Context(), c.Param("property_id"), c.Param("service_id"), a)
	h.write(c, s, err)
}

// Reschedule godoc
// @Summary  Move a scheduled service (reason required)
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    property_id path string true "Property ID"
// @Param    service_id path string true "Service ID"
// @Param    body body request.RescheduleRequest true "New schedule"
// @Success  200 {object} response.ScheduledServiceResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /properties/{property_id}/services/{service_id}/reschedule [patch]
func (h *BookingHandler) Reschedule(c *gin.Context) {
	var payload request.RescheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, errInvalidPayload)
		return
	}
	req, err := payload.ToReschedule()
	if err != nil {
		respond(c, mapBookingUseCaseError(err))
		return
	}
	s, err := h.usecase.Reschedule(c.Request.Context(), c.Param("property_id"), c.Param("service_id"), req)
	h.write(c, s, err)
}

// Complete godoc
// @Summary  Mark a scheduled service as delivered
// @Tags     bookings
// @Produce  json
// @Param    property_id path string true "Property ID"
// @Param    service_id path string true "Service ID"
// @Success  200 {object} response.ScheduledServiceResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /properties/{property_id}/services/{service_id}/complete [patch]
func (h *BookingHandler) Complete(c *gin.Context) {
	s, err := h.usecase.Complete(c.Request.Context(), c.Param("property_id"), c.Param("service_id"))
	h.write(c, s, err)
}

// Cancel godoc
// @Summary  Release a booking back to pending (reason required)
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    property_id path string true "Property ID"
// @Param    service_id path string true "Service ID"
// @Param    body body request.CancelRequest true "Reason"
// @Success  200 {object} response.ScheduledServiceResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /properties/{property_id}/services/{service_id}/cancel [patch]
func (h *BookingHandler) Cancel(c *gin.Context) {
	var payload request.CancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, errInvalidPayload)
		return
	}
	s, err := h.usecase.Cancel(c.Request.Context(), c.Param("property_id"), c.Param("service_id"), payload.Reason)
	h.write(c, s, err)
}

func (h *BookingHandler) write(c *gin.Context, s entities.ScheduledService, err error) {
	if err != nil {
		respond(c, mapBookingUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromScheduledService(s))
}

func mapBookingUseCaseError(err error) *pkg.AppError {
	if appErr := mapBookingError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPropertyID), errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrScheduledServiceNotFound):
		return pkg.NewDomainErrorSimple("SCHEDULED_SERVICE_NOT_FOUND", "Service not booked on this property", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPhotographerNotFound):
		return pkg.NewDomainErrorSimple("PHOTOGRAPHER_NOT_FOUND", "Photographer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrScheduledServiceAlreadyExists):
		return pkg.NewDomainErrorSimple("SCHEDULED_SERVICE_ALREADY_EXISTS", "Service already booked on this property", http.StatusConflict)
	case errors.Is(err, usecase.ErrPhotographerUnavailable):
		return pkg.NewDomainErrorSimple("PHOTOGRAPHER_UNAVAILABLE", "Photographer is not available on this date", http.StatusConflict)
	case errors.Is(err, usecase.ErrPhotographerNotQualified):
		return pkg.NewDomainErrorSimple("PHOTOGRAPHER_NOT_QUALIFIED", "Photographer does not offer this service", http.StatusConflict)
	default:
		return internalError(err)
	}
}
