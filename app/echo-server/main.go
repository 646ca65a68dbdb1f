package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusPrint/app/echo-server/router"
	"campusPrint/business/orders"
	userService "campusPrint/business/user"
	appmiddleware "campusPrint/internal/middleware"
	psqlRepo "campusPrint/internal/repository/postgres"
	"campusPrint/internal/rest"
	"campusPrint/pkg/config"
	"campusPrint/pkg/database"
	"campusPrint/pkg/logger"
	"campusPrint/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Campus Print", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)

	// Init service
	userService := userService.NewUserService(userRepo, validate, cfg.Vendor)
	ordersService := orders.NewOrdersService(ordersRepo)

	// Init handler
	userHandler := rest.NewUserHandler(userService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	healthHandler := rest.NewHealthHandler(db)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware. Uploads travel inline in the order payload, hence
	// the large body limit. Any origin may call the API.
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit("50M"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(appmiddleware.RequestLogger())

	// Setup routes
	api := e.Group("/api")
	router.SetupHealthRoutes(api, healthHandler)
	router.SetupUserRoutes(api, userHandler)
	router.SetupOrdersRoutes(api, ordersHandler)
	router.SetupMetricsRoute(e)

	// Serve the built frontend; unknown paths fall back to the SPA entry
	// document.
	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root:  cfg.App.StaticDir,
		HTML5: true,
	}))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server stopped")
}
