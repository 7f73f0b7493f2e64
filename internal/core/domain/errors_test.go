package domain

import "testing"

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Violations: []FieldViolation{
		{Field: "name", Message: "must be at least 2 characters"},
		{Field: "password", Message: "must be at least 6 characters"},
	}}

	want := "Validation errors: name: must be at least 2 characters; password: must be at least 6 characters"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
