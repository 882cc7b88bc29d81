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

// PaymentHandler records payments against orders.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RecordPayment godoc
// @Summary  Record a payment for an order
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Param    body body request.RecordPaymentRequest true "Payment"
// @Success  201 {object} response.PaymentResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{order_id}/payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, errInvalidPayload)
		return
	}
	p, err := h.usecase.Record(c.Request.Context(), payload.ToInput(c.Param("order_id")))
	if err != nil {
		respond(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPayment(p))
}

// ListPayments godoc
// @Summary  List the payments of an order
// @Tags     payments
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Success  200 {array} response.PaymentResponse
// @Router   /orders/{order_id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	list, err := h.usecase.ListByOrderID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respond(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(list))
}

// GetPayment godoc
// @Summary  Get a payment
// @Tags     payments
// @Produce  json
// @Param    payment_id path string true "Payment ID"
// @Success  200 {object} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		respond(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// UpdateStatus godoc
// @Summary  Set the payment status (pending, processing, paid, failed, refunded)
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    payment_id path string true "Payment ID"
// @Param    body body request.PaymentStatusRequest true "Status"
// @Success  200 {object} response.PaymentResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/{payment_id}/status [patch]
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	var payload request.PaymentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, errInvalidPayload)
		return
	}
	p, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("payment_id"), payload.ResolveStatus())
	if err != nil {
		respond(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// SetPaidToPhotographer godoc
// @Summary  Flag whether the photographer share was paid out
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    payment_id path string true "Payment ID"
// @Param    body body request.PaidToPhotographerRequest true "Flag"
// @Success  200 {object} response.PaymentResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/{payment_id}/paid-to-photographer [patch]
func (h *PaymentHandler) SetPaidToPhotographer(c *gin.Context) {
	var payload request.PaidToPhotographerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, errInvalidPayload)
		return
	}
	p, err := h.usecase.SetPaidToPhotographer(c.Request.Context(), c.Param("payment_id"), *payload.Paid)
	if err != nil {
		respond(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidPaymentOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_AMOUNT", "Amount must be positive and travel fee not negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_STATUS", "Invalid payment status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
