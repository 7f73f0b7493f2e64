package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/userhub/auth-service/internal/api/metrics"
	"github.com/userhub/auth-service/internal/core/domain"
	"github.com/userhub/auth-service/internal/core/ports"
)

const banner = "Server running!\n" +
	"POST /user - Create user (with validation & password hashing)\n" +
	"POST /login - User login\n" +
	"GET /users - Get users count"

// UserHandler exposes the credential pipeline over HTTP. All success bodies
// are plain text; failures bubble up to the central error handler.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Index handles GET / with a capability banner.
func (h *UserHandler) Index(c echo.Context) error {
	return c.String(http.StatusOK, banner)
}

// Create handles POST /user.
func (h *UserHandler) Create(c echo.Context) error {
	start := time.Now()

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	metrics.RequestDuration.WithLabelValues("register").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.String(http.StatusOK, "User created successfully! ID: "+id)
}

// Login handles POST /login.
func (h *UserHandler) Login(c echo.Context) error {
	start := time.Now()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	name, err := h.service.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	metrics.RequestDuration.WithLabelValues("login").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.String(http.StatusOK, "Login successful! Welcome back, "+name)
}

// Count handles GET /users.
func (h *UserHandler) Count(c echo.Context) error {
	n, err := h.service.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, fmt.Sprintf("Total users: %d", n))
}

func registerResult(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return "validation_failed"
	case errors.Is(err, domain.ErrEmailTaken):
		return "duplicate_email"
	default:
		return "error"
	}
}

func loginResult(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return "validation_failed"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}
