package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/leadsmanager/leads-api/internal/api/handler"
	"github.com/leadsmanager/leads-api/internal/api/middleware"
	"github.com/leadsmanager/leads-api/internal/core/service"
	"github.com/leadsmanager/leads-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, jwtSecret []byte, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("leads"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	leadRepo := postgres.NewLeadRepository(db)
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	leadService := service.NewLeadService(leadRepo, log)
	authHandler := handler.NewAuthHandler(authService)
	leadHandler := handler.NewLeadHandler(leadService)
	authMiddleware := middleware.Auth(authService)

	// --- Public routes ---
	e.GET("/api", handler.Root)
	e.POST("/api/users", authHandler.Register)
	e.POST("/api/token", authHandler.GenerateToken)

	// --- Protected routes ---
	e.GET("/api/users/me", authHandler.Me, authMiddleware)

	leads := e.Group("/api/leads", authMiddleware)
	leads.POST("", leadHandler.Create)
	leads.GET("", leadHandler.List)
	leads.GET("/:id", leadHandler.Get)
	leads.PUT("/:id", leadHandler.Update)
	leads.DELETE("/:id", leadHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(db)
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – is the database up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
