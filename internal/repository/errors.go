package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when a write violates a uniqueness
	// constraint (duplicate email, phone, or profile owner).
	ErrDuplicate = errors.New("entity already exists")
)
