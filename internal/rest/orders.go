package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"campusPrint/domain"
	"campusPrint/pkg/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	OrdersService interface {
		CreateOrder(ctx context.Context, order *domain.Order) (domain.Order, error)
		GetOrders(ctx context.Context, userID string) ([]domain.Order, error)
		UpdateOrderStatus(ctx context.Context, id, status string) (domain.Order, error)
	}

	OrdersHandler struct {
		ordersService OrdersService
		timeout       time.Duration
	}

	CreateOrderRequest struct {
		UserID      string          `json:"userId"`
		UserEmail   string          `json:"userEmail"`
		Files       json.RawMessage `json:"files"`
		Settings    json.RawMessage `json:"settings"`
		TotalAmount *float64        `json:"totalAmount"`
	}

	UpdateStatusRequest struct {
		Status string `json:"status"`
	}

	UpdateStatusResponse struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
		Status  string `json:"status"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}

	// A JSON null for files or an absent totalAmount are both "missing";
	// an explicit 0 amount is allowed.
	if len(req.Files) == 0 || string(req.Files) == "null" || req.TotalAmount == nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Missing required fields"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.CreateOrder(ctx, &domain.Order{
		UserID:      req.UserID,
		UserEmail:   req.UserEmail,
		Files:       datatypes.JSON(req.Files),
		Settings:    datatypes.JSON(req.Settings),
		TotalAmount: *req.TotalAmount,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, ResponseError{Error: "Missing required fields"})
		}
		logger.Error("Failed to create order", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrdersHandler) GetOrders(c echo.Context) error {
	userID := c.QueryParam("userId")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.GetOrders(ctx, userID)
	if err != nil {
		logger.Error("Failed to get orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, orders)
}

// UpdateStatus serves both PATCH /api/orders/:id and /api/orders/:id/status;
// the vendor dashboard uses either form.
func (h *OrdersHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}

	if req.Status == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Status is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.UpdateOrderStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Error: "Order not found"})
		}
		logger.Error("Failed to update order status", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, UpdateStatusResponse{
		Success: true,
		ID:      id,
		Status:  order.Status,
	})
}
