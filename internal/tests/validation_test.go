package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/Darlington6/safeboda/internal/domain"
	"github.com/Darlington6/safeboda/internal/service"
)

func seedPassengerUser(repo *MockUserRepository, id string) *domain.User {
	user := &domain.User{
		ID:          id,
		Email:       id + "@example.com",
		PhoneNumber: "+256700000001",
		UserType:    domain.UserTypePassenger,
		IsActive:    true,
	}
	repo.AddUser(user)
	return user
}

func TestValidation_EmergencyPhoneFormat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		phone   string
		wantErr error
	}{
		{
			name:    "missing leading plus rejected",
			phone:   "1234567",
			wantErr: service.ErrEmergencyPhoneFormat,
		},
		{
			name:  "leading plus accepted",
			phone: "+1234567890",
		},
		{
			name:  "empty phone accepted",
			phone: "",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userRepo := NewMockUserRepository()
			passengerRepo := NewMockPassengerRepository()
			seedPassengerUser(userRepo, "user-1")
			svc := service.NewPassengerService(userRepo, passengerRepo, nil, nil)

			_, err := svc.CreateProfile(context.Background(), "user-1", service.CreateProfileRequest{
				EmergencyContactPhone: tc.phone,
			})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if passengerRepo.Count() != 0 {
					t.Error("expected no profile to be written on validation failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidation_EmergencyContactCrossField(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		ecName  string
		ecPhone string
		wantErr error
	}{
		{
			name:    "name without phone rejected",
			ecName:  "Jane",
			ecPhone: "",
			wantErr: service.ErrEmergencyPhoneRequired,
		},
		{
			name:    "both empty accepted",
			ecName:  "",
			ecPhone: "",
		},
		{
			// The rule is one-directional: a phone without a name is fine.
			name:    "phone without name accepted",
			ecName:  "",
			ecPhone: "+1234567890",
		},
		{
			name:    "both set accepted",
			ecName:  "Jane",
			ecPhone: "+1234567890",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userRepo := NewMockUserRepository()
			passengerRepo := NewMockPassengerRepository()
			seedPassengerUser(userRepo, "user-1")
			svc := service.NewPassengerService(userRepo, passengerRepo, nil, nil)

			_, err := svc.CreateProfile(context.Background(), "user-1", service.CreateProfileRequest{
				EmergencyContactName:  tc.ecName,
				EmergencyContactPhone: tc.ecPhone,
			})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

// An update may not leave the stored profile violating the cross-field
// rule, even when the offending field is not part of the update itself.
func TestValidation_UpdateValidatesMergedState(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	passengerRepo := NewMockPassengerRepository()
	seedPassengerUser(userRepo, "user-1")
	svc := service.NewPassengerService(userRepo, passengerRepo, nil, nil)

	_, err := svc.CreateProfile(context.Background(), "user-1", service.CreateProfileRequest{
		EmergencyContactName:  "Jane",
		EmergencyContactPhone: "+1234567890",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Clearing only the phone would orphan the contact name.
	empty := ""
	_, err = svc.UpdateProfile(context.Background(), "user-1", "user-1", service.UpdateProfileRequest{
		EmergencyContactPhone: &empty,
	})
	if !errors.Is(err, service.ErrEmergencyPhoneRequired) {
		t.Fatalf("expected %v, got %v", service.ErrEmergencyPhoneRequired, err)
	}

	// The stored record is untouched.
	stored := passengerRepo.GetPassenger("user-1")
	if stored.EmergencyContactPhone != "+1234567890" {
		t.Errorf("expected stored phone unchanged, got %q", stored.EmergencyContactPhone)
	}
}

func TestValidation_PreferenceEnums(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		req     service.CreateProfileRequest
		wantErr error
	}{
		{
			name:    "unknown payment method rejected",
			req:     service.CreateProfileRequest{PreferredPaymentMethod: "cheque"},
			wantErr: service.ErrInvalidPaymentMethod,
		},
		{
			name:    "unknown car type rejected",
			req:     service.CreateProfileRequest{PreferredCarType: "limousine"},
			wantErr: service.ErrInvalidCarType,
		},
		{
			name: "known values accepted",
			req: service.CreateProfileRequest{
				PreferredPaymentMethod: domain.PaymentMethodMobileMoney,
				PreferredCarType:       domain.CarTypePremium,
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userRepo := NewMockUserRepository()
			passengerRepo := NewMockPassengerRepository()
			seedPassengerUser(userRepo, "user-1")
			svc := service.NewPassengerService(userRepo, passengerRepo, nil, nil)

			_, err := svc.CreateProfile(context.Background(), "user-1", tc.req)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}
