package router

import (
	"campusPrint/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler) {
	api.POST("/register", handler.Register)
	api.POST("/login", handler.Login)
	api.GET("/users", handler.GetAllUsers)
}

func SetupOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler) {
	api.GET("/orders", handler.GetOrders)
	api.POST("/orders", handler.CreateOrder)

	// The vendor dashboard calls both forms.
	api.PATCH("/orders/:id", handler.UpdateStatus)
	api.PATCH("/orders/:id/status", handler.UpdateStatus)
}

func SetupHealthRoutes(api *echo.Group, handler *rest.HealthHandler) {
	api.GET("/health", handler.Check)
}

func SetupMetricsRoute(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
