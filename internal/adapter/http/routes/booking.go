package routes

import (
	"github.com/heaponte4/aerea-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices      = "/services"
	PathTimeSlots     = "/time-slots"
	PathPhotographers = "/photographers"
	PathProperties    = "/properties/:property_id"
	PathOrders        = "/orders"
	PathPayments      = "/payments"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, photographerHandler *handlers.PhotographerHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", catalogHandler.ListServices)
		services.GET("/:service_id/addons", catalogHandler.ListAddons)
		services.POST("/:service_id/price", catalogHandler.QuotePrice)
	}
	rg.GET(PathTimeSlots, photographerHandler.TimeSlots)
}

func addPhotographerRoutes(rg *gin.RouterGroup, h *handlers.PhotographerHandler) {
	photographers := rg.Group(PathPhotographers)
	{
		photographers.GET("", h.ListPhotographers)
		photographers.GET("/:photographer_id", h.GetPhotographer)
		photographers.GET("/:photographer_id/available-dates", h.GetAvailableDates)
		photographers.POST("/:photographer_id/available-dates", h.AddAvailableDate)
		photographers.DELETE("/:photographer_id/available-dates/:date", h.RemoveAvailableDate)
	}
}

func addPropertyRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, orderHandler *handlers.OrderHandler) {
	property := rg.Group(PathProperties)
	{
		property.GET("/services", bookingHandler.ListServices)
		property.POST("/services", bookingHandler.AddService)
		property.GET("/services/:service_id", bookingHandler.GetService)
		property.PUT("/services/:service_id/addons", bookingHandler.UpdateAddons)
		property.PATCH("/services/:service_id/schedule", bookingHandler.Schedule)
		property.PATCH("/services/:service_id/reschedule", bookingHandler.Reschedule)
		property.PATCH("/services/:service_id/complete", bookingHandler.Complete)
		property.PATCH("/services/:service_id/cancel", bookingHandler.Cancel)

		property.POST("/orders", orderHandler.Checkout)
		property.GET("/orders", orderHandler.ListOrders)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id/status", orderHandler.UpdateStatus)
		orders.POST("/:order_id/payments", paymentHandler.RecordPayment)
		orders.GET("/:order_id/payments", paymentHandler.ListPayments)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", h.GetPayment)
		payments.PATCH("/:payment_id/status", h.UpdateStatus)
		payments.PATCH("/:payment_id/paid-to-photographer", h.SetPaidToPhotographer)
	}
}
