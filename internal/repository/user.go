package repository

import (
	"context"

	"github.com/moscow89er/mesto-api/internal/domain"
)

// Usecases depend on interfaces, not the pgx implementations, so storage can
// be swapped and tests can inject fakes.
type UserRepository interface {
	// Create persists a new user and returns it with the store-assigned id.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByID returns domain.ErrUserNotFound when absent. PasswordHash is
	// not populated.
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// FindByEmail is the login lookup; it populates PasswordHash.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	List(ctx context.Context) ([]*domain.User, error)

	// UpdateProfile and UpdateAvatar mutate an existing user only, never
	// upsert, and return the updated record.
	UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error)
}
