package repository

import (
	"context"

	"github.com/Darlington6/safeboda/internal/domain"
)

// PassengerFilter narrows List results. Nil fields are ignored.
type PassengerFilter struct {
	PreferredPaymentMethod *domain.PaymentMethod
	PreferredCarType       *domain.CarType
	IsPhoneVerified        *bool
	IsProfileComplete      *bool
}

// PassengerRepository defines the persistence operations for passenger
// profiles. Profiles are keyed by the owning user's ID.
type PassengerRepository interface {
	// Create adds a new profile. Returns ErrDuplicate if the user
	// already owns one.
	Create(ctx context.Context, passenger *domain.Passenger) error

	// GetByUserID retrieves a profile by its owner's ID.
	GetByUserID(ctx context.Context, userID string) (*domain.Passenger, error)

	// Update overwrites an existing profile, including its derived
	// completion flag, in a single statement.
	Update(ctx context.Context, passenger *domain.Passenger) error

	// Delete removes a profile (account removal).
	Delete(ctx context.Context, userID string) error

	// List retrieves profiles matching the filter, newest first.
	List(ctx context.Context, filter PassengerFilter) ([]*domain.Passenger, error)
}
