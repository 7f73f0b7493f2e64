package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/auth-service/internal/core/domain"
)

func TestResolveError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/user", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			"echo http error",
			echo.NewHTTPError(http.StatusBadRequest, "invalid payload"),
			http.StatusBadRequest, "invalid payload",
		},
		{
			"validation error",
			&domain.ValidationError{Violations: []domain.FieldViolation{
				{Field: "email", Message: "must be a valid email address"},
			}},
			http.StatusBadRequest, "Validation errors: email: must be a valid email address",
		},
		{
			"duplicate email",
			domain.ErrEmailTaken,
			http.StatusBadRequest, "User with this email already exists",
		},
		{
			"wrapped duplicate email",
			errors.Join(errors.New("insert user"), domain.ErrEmailTaken),
			http.StatusBadRequest, "User with this email already exists",
		},
		{
			"invalid credentials",
			domain.ErrInvalidCredentials,
			http.StatusUnauthorized, "Invalid email or password",
		},
		{
			"unexpected error",
			errors.New("mongo: connection refused"),
			http.StatusInternalServerError, "Internal server error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := resolveError(tc.err, zerolog.Nop(), c)
			if code != tc.wantCode {
				t.Fatalf("expected code %d, got %d", tc.wantCode, code)
			}
			if msg != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}
