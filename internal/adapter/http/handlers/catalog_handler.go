package handlers

import (
	"errors"
	"net/http"

	request "github.com/heaponte4/aerea-sub000/internal/adapter/http/dto/request"
	response "github.com/heaponte4/aerea-sub000/internal/adapter/http/dto/response"
	"github.com/heaponte4/aerea-sub000/internal/usecase"
	"github.com/heaponte4/aerea-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the price list.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices godoc
// @Summary  List bookable services
// @Tags     catalog
// @Produce  json
// @Success  200 {array} response.ServiceResponse
// @Router   /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		respond(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

// ListAddons godoc
// @Summary  List the add-ons applicable to a service
// @Tags     catalog
// @Produce  json
// @Param    service_id path string true "Service ID"
// @Success  200 {array} response.AddonResponse
// @Router   /services/{service_id}/addons [get]
func (h *CatalogHandler) ListAddons(c *gin.Context) {
	addons, err := h.usecase.ListAddons(c.Request.Context(), c.Param("service_id"))
	if err != nil {
		respond(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAddons(addons))
}

// QuotePrice godoc
// @Summary  Price one service with a selection of add-ons
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    service_id path string true "Service ID"
// @Param    body body request.PriceQuoteRequest true "Selected add-ons"
// @Success  200 {object} response.PriceQuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /services/{service_id}/price [post]
func (h *CatalogHandler) QuotePrice(c *gin.Context) {
	var payload request.PriceQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, errInvalidPayload)
		return
	}
	serviceID := c.Param("service_id")
	price, err := h.usecase.QuotePrice(c.Request.Context(), serviceID, payload.AddonIDs)
	if err != nil {
		respond(c, mapCatalogError(err))
		return
	}
	addons := payload.AddonIDs
	if addons == nil {
		addons = []string{}
	}
	c.JSON(http.StatusOK, response.PriceQuoteResponse{ServiceID: serviceID, AddonIDs: addons, Price: response.Money(price)})
}

func mapCatalogError(err error) *pkg.AppError {
	if appErr := mapBookingError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid service id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
