package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	request "github.com/heaponte4/aerea-sub000/internal/adapter/http/dto/request"
	response "github.com/heaponte4/aerea-sub000/internal/adapter/http/dto/response"
	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
	"github.com/heaponte4/aerea-sub000/internal/usecase"
	"github.com/heaponte4/aerea-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// PhotographerHandler serves the photographer directory and availability.
type PhotographerHandler struct {
	usecase usecase.IPhotographerUseCase
}

func NewPhotographerHandler(uc usecase.IPhotographerUseCase) *PhotographerHandler {
	return &PhotographerHandler{usecase: uc}
}

// ListPhotographers godoc
// @Summary      List photographers
// @Description  With service_id (repeatable or comma separated) only photographers offering every listed service are returned.
// @Tags         photographers
// @Produce      json
// @Param        service_id query []string false "Service IDs" collectionFormat(multi)
// @Success      200 {array} response.PhotographerResponse
// @Router       /photographers [get]
func (h *PhotographerHandler) ListPhotographers(c *gin.Context) {
	var ids []string
	for _, raw := range c.QueryArray("service_id") {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	list, err := h.usecase.FindEligible(c.Request.Context(), ids)
	if err != nil {
		respond(c, mapPhotographerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPhotographers(list))
}

// GetPhotographer godoc
// @Summary  Get a photographer
// @Tags     photographers
// @Produce  json
// @Param    photographer_id path string true "Photographer ID"
// @Success  200 {object} response.PhotographerResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /photographers/{photographer_id} [get]
func (h *PhotographerHandler) GetPhotographer(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("photographer_id"))
	if err != nil {
		respond(c, mapPhotographerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPhotographer(p))
}

// GetAvailableDates godoc
// @Summary  Dates the photographer can still be booked on
// @Tags     photographers
// @Produce  json
// @Param    photographer_id path string true "Photographer ID"
// @Success  200 {object} response.AvailableDatesResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /photographers/{photographer_id}/available-dates [get]
func (h *PhotographerHandler) GetAvailableDates(c *gin.Context) {
	id := c.Param("photographer_id")
	dates, err := h.usecase.AvailableDates(c.Request.Context(), id)
	if err != nil {
		respond(c, mapPhotographerError(err))
		return
	}
	c.JSON(http.StatusOK, response.AvailableDatesResponse{PhotographerID: id, Dates: response.Dates(dates)})
}

// AddAvailableDate godoc
// @Summary  Declare a date the photographer can work
// @Tags     photographers
// @Accept   json
// @Produce  json
// @Param    photographer_id path string true "Photographer ID"
// @Param    body body request.AvailableDateRequest true "Date"
// @Success  200 {object} response.PhotographerResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /photographers/{photographer_id}/available-dates [post]
func (h *PhotographerHandler) AddAvailableDate(c *gin.Context) {
	var payload request.AvailableDateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, errInvalidPayload)
		return
	}
	h.changeAvailability(c, payload.Date, h.usecase.AddAvailableDate)
}

// RemoveAvailableDate godoc
// @Summary  Withdraw a declared date
// @Tags     photographers
// @Produce  json
// @Param    photographer_id path string true "Photographer ID"
// @Param    date path string true "Date (YYYY-MM-DD)"
// @Success  200 {object} response.PhotographerResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /photographers/{photographer_id}/available-dates/{date} [delete]
func (h *PhotographerHandler) RemoveAvailableDate(c *gin.Context) {
	h.changeAvailability(c, c.Param("date"), h.usecase.RemoveAvailableDate)
}

func (h *PhotographerHandler) changeAvailability(
	c *gin.Context,
	rawDate string,
	apply func(ctx context.Context, id string, date time.Time) (entities.Photographer, error),
) {
	date, err := request.ParseDate(rawDate)
	if err != nil {
		respond(c, mapPhotographerError(err))
		return
	}
	p, err := apply(c.Request.Context(), c.Param("photographer_id"), date)
	if err != nil {
		respond(c, mapPhotographerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPhotographer(p))
}

// TimeSlots godoc
// @Summary  Bookable time slots
// @Tags     photographers
// @Produce  json
// @Success  200 {object} response.TimeSlotsResponse
// @Router   /time-slots [get]
func (h *PhotographerHandler) TimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, response.TimeSlotsResponse{Slots: h.usecase.TimeSlots()})
}

func mapPhotographerError(err error) *pkg.AppError {
	if appErr := mapBookingError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPhotographerID), errors.Is(err, usecase.ErrInvalidAvailableDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPhotographerNotFound):
		return pkg.NewDomainErrorSimple("PHOTOGRAPHER_NOT_FOUND", "Photographer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
