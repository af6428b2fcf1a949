package repository

import (
	"context"

	"github.com/Darlington6/safeboda/internal/domain"
)

// UserRepository defines the persistence operations for user identities.
type UserRepository interface {
	// Create adds a new user. Returns ErrDuplicate if the email or
	// phone number is already registered.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]*domain.User, error)
}
