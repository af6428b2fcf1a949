package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/Darlington6/safeboda/internal/domain"
	"github.com/Darlington6/safeboda/internal/service"
)

func TestUserRegistration_ValidInput_Succeeds(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	svc := service.NewUserService(userRepo, nil)

	user, err := svc.Register(context.Background(), service.RegisterUserRequest{
		Email:       "ada@Example.COM",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		PhoneNumber: "+256700000001",
		UserType:    domain.UserTypePassenger,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if user.ID == "" {
		t.Error("expected user ID to be set")
	}
	if user.Email != "ada@example.com" {
		t.Errorf("expected normalized email, got %s", user.Email)
	}
	if !user.IsActive {
		t.Error("expected new user to be active")
	}
	if user.DateJoined.IsZero() {
		t.Error("expected date joined to be set")
	}
}

func TestUserRegistration_InvalidInput_Fails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		req     service.RegisterUserRequest
		wantErr error
	}{
		{
			name: "missing email",
			req: service.RegisterUserRequest{
				PhoneNumber: "+256700000001",
				UserType:    domain.UserTypePassenger,
			},
			wantErr: service.ErrInvalidEmail,
		},
		{
			name: "malformed phone",
			req: service.RegisterUserRequest{
				Email:       "ada@example.com",
				PhoneNumber: "not-a-phone",
				UserType:    domain.UserTypePassenger,
			},
			wantErr: service.ErrInvalidPhoneNumber,
		},
		{
			name: "phone too short",
			req: service.RegisterUserRequest{
				Email:       "ada@example.com",
				PhoneNumber: "+1234",
				UserType:    domain.UserTypePassenger,
			},
			wantErr: service.ErrInvalidPhoneNumber,
		},
		{
			name: "unknown user type",
			req: service.RegisterUserRequest{
				Email:       "ada@example.com",
				PhoneNumber: "+256700000001",
				UserType:    "driver",
			},
			wantErr: service.ErrInvalidUserType,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userRepo := NewMockUserRepository()
			svc := service.NewUserService(userRepo, nil)

			_, err := svc.Register(context.Background(), tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if userRepo.CreateCallCount != 0 {
				t.Error("expected repository create to never be called")
			}
		})
	}
}

func TestUserRegistration_DuplicateEmail_Conflicts(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	svc := service.NewUserService(userRepo, nil)

	req := service.RegisterUserRequest{
		Email:       "ada@example.com",
		PhoneNumber: "+256700000001",
		UserType:    domain.UserTypePassenger,
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, service.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
