package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const dbType = "PostgreSQL (GORM)"

type HealthHandler struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db:      db,
		timeout: 5 * time.Second,
	}
}

func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":    "error",
			"error":     err.Error(),
			"dbType":    dbType,
			"connected": false,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"time":      time.Now().Format(time.RFC3339),
		"dbType":    dbType,
		"connected": true,
	})
}
