package ports

import "context"

// RegisterInput is the payload accepted by Register. Validation tags mirror
// the account constraints: display name between 2 and 50 characters, a
// syntactically valid email, and a password of at least 6 characters. The
// upper bound is bcrypt's 72-byte input limit; rejecting longer passwords up
// front keeps them a field-level validation failure instead of a hash error.
type RegisterInput struct {
	Name     string `validate:"required,min=2,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=72"`
}

// LoginInput is the payload accepted by Login. The password carries no format
// constraint beyond being present.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type UserService interface {
	// Register validates the input, rejects duplicate emails, hashes the
	// password, and persists a new user. Returns the generated identifier.
	Register(ctx context.Context, in RegisterInput) (string, error)
	// Login verifies the credentials and returns the account's display name.
	// A missing account and a wrong password are indistinguishable: both fail
	// with domain.ErrInvalidCredentials.
	Login(ctx context.Context, in LoginInput) (string, error)
	// Count returns the total number of registered users.
	Count(ctx context.Context) (int64, error)
}
