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

// OrderHandler handles checkout and order tracking.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// Checkout godoc
// @Summary      Invoice the scheduled services of a property
// @Description  Services that are not fully scheduled are left out and listed in the warning.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        property_id path string true "Property ID"
// @Param        body body request.CheckoutRequest false "Customer and due date"
// @Success      201 {object} response.CheckoutResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /properties/{property_id}/orders [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respond(c, errInvalidPayload)
			return
		}
	}
	in, err := payload.ToInput(c.Param("property_id"))
	if err != nil {
		respond(c, mapOrderError(err))
		return
	}
	res, err := h.usecase.Checkout(c.Request.Context(), in)
	if err != nil {
		respond(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckout(res.Order, res.Warning))
}

// ListOrders godoc
// @Summary  List the orders of a property
// @Tags     orders
// @Produce  json
// @Param    property_id path string true "Property ID"
// @Success  200 {array} response.OrderResponse
// @Router   /properties/{property_id}/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	list, err := h.usecase.ListByPropertyID(c.Request.Context(), c.Param("property_id"))
	if err != nil {
		respond(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(list))
}

// GetOrder godoc
// @Summary  Get an order
// @Tags     orders
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Success  200 {object} response.OrderResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respond(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// UpdateStatus godoc
// @Summary  Set the order status (draft, pending, paid, completed)
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Param    body body request.OrderStatusRequest true "Status"
// @Success  200 {object} response.OrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, errInvalidPayload)
		return
	}
	o, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("order_id"), payload.ResolveStatus())
	if err != nil {
		respond(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func mapOrderError(err error) *pkg.AppError {
	if appErr := mapBookingError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPropertyID), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_STATUS", "Invalid order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
