package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/userhub/auth-service/internal/api/handler"
	"github.com/userhub/auth-service/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(userService ports.UserService, store handler.StorePinger, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- User routes ---
	userHandler := handler.NewUserHandler(userService)

	e.GET("/", userHandler.Index)
	e.POST("/user", userHandler.Create)
	e.POST("/login", userHandler.Login)
	e.GET("/users", userHandler.Count)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store up?

	// --- Prometheus exposition ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
