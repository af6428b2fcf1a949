package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Darlington6/safeboda/internal/domain"
	"github.com/Darlington6/safeboda/internal/repository"
)

// UserService handles user identity operations.
type UserService struct {
	userRepo repository.UserRepository
	logger   *logrus.Logger
}

// NewUserService creates a new UserService. logger is optional.
func NewUserService(userRepo repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// RegisterUserRequest contains the parameters for registering a user.
type RegisterUserRequest struct {
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
	UserType    domain.UserType
}

// Register creates a new user identity. Email is normalized and must be
// unique, as must the phone number.
func (s *UserService) Register(ctx context.Context, req RegisterUserRequest) (*domain.User, error) {
	email := domain.NormalizeEmail(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if !domain.IsValidPhoneNumber(req.PhoneNumber) {
		return nil, ErrInvalidPhoneNumber
	}
	if !domain.IsValidUserType(req.UserType) {
		return nil, ErrInvalidUserType
	}

	user := &domain.User{
		ID:          uuid.New().String(),
		Email:       email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		UserType:    req.UserType,
		IsActive:    true,
		DateJoined:  time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"user_type": user.UserType,
		}).Info("user registered")
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, ErrInvalidUserID
	}
	return s.userRepo.GetByID(ctx, id)
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.GetAll(ctx)
}
