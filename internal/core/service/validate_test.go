package service

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/userhub/auth-service/internal/core/domain"
	"github.com/userhub/auth-service/internal/core/ports"
)

func TestCheckInput_Valid(t *testing.T) {
	v := validator.New()
	in := ports.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"}
	if err := checkInput(v, in); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestCheckInput_MessageFormat(t *testing.T) {
	v := validator.New()
	in := ports.RegisterInput{Name: "A", Email: "alice@example.com", Password: "secret1"}

	err := checkInput(v, in)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := "Validation errors: name: must be at least 2 characters"
	if ve.Error() != want {
		t.Fatalf("expected %q, got %q", want, ve.Error())
	}
}

func TestCheckInput_JoinsViolations(t *testing.T) {
	v := validator.New()
	in := ports.LoginInput{Email: "nope", Password: ""}

	err := checkInput(v, in)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := "Validation errors: email: must be a valid email address; password: is required"
	if ve.Error() != want {
		t.Fatalf("expected %q, got %q", want, ve.Error())
	}
}
