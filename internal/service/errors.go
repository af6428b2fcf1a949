package service

import "errors"

var (
	// ErrInvalidUserID is returned when a user ID is empty.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidEmail is returned when an email address is missing or malformed.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidPhoneNumber is returned when a phone number does not match the accepted format.
	ErrInvalidPhoneNumber = errors.New("invalid phone number")

	// ErrInvalidUserType is returned when a user type is not passenger or rider.
	ErrInvalidUserType = errors.New("invalid user type")

	// ErrUserExists is returned when the email or phone number is already registered.
	ErrUserExists = errors.New("user already registered")

	// ErrEmergencyPhoneFormat is returned when emergency_contact_phone does not start with '+'.
	ErrEmergencyPhoneFormat = errors.New("emergency contact phone must start with '+'")

	// ErrEmergencyPhoneRequired is returned when emergency_contact_name is set
	// without emergency_contact_phone.
	ErrEmergencyPhoneRequired = errors.New("emergency contact phone is required when emergency contact name is set")

	// ErrNotPassenger is returned when a non-passenger user tries to create a profile.
	ErrNotPassenger = errors.New("only passenger-type users can create a passenger profile")

	// ErrProfileExists is returned when the user already owns a profile.
	ErrProfileExists = errors.New("passenger profile already exists")

	// ErrInvalidPaymentMethod is returned when a payment method is unknown.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidCarType is returned when a car type is unknown.
	ErrInvalidCarType = errors.New("invalid car type")

	// ErrInvalidRating is returned when a ride rating is outside [1, 5].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
