package ports

import (
	"context"

	"github.com/userhub/auth-service/internal/core/domain"
)

// UserRepository defines the narrow store surface the credential pipeline
// needs. Connection pooling, indexes, and concurrency safety are the backing
// store's concern.
type UserRepository interface {
	// CountByEmail reports how many records exist for the given email.
	CountByEmail(ctx context.Context, email string) (int64, error)
	// FindByEmail returns the record for the email, or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Insert persists a new record and returns its generated identifier.
	// A unique-constraint violation surfaces as domain.ErrEmailTaken.
	Insert(ctx context.Context, user *domain.User) (string, error)
	// CountAll reports the total number of records in the store.
	CountAll(ctx context.Context) (int64, error)
}
