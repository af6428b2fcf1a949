package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/Darlington6/safeboda/internal/domain"
	"github.com/Darlington6/safeboda/internal/repository"
	"github.com/Darlington6/safeboda/internal/service"
)

func seedStaffUser(repo *MockUserRepository, id string) *domain.User {
	user := &domain.User{
		ID:          id,
		Email:       id + "@example.com",
		PhoneNumber: "+256700000099",
		UserType:    domain.UserTypePassenger,
		IsStaff:     true,
		IsActive:    true,
	}
	repo.AddUser(user)
	return user
}

func TestAccess_NonStaffCannotSeeOthersProfile(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	passengerRepo := NewMockPassengerRepository()
	seedPassengerUser(userRepo, "owner")
	other := seedPassengerUser(userRepo, "other")
	other.PhoneNumber = "+256700000002"
	svc := service.NewPassengerService(userRepo, passengerRepo, nil, nil)

	if _, err := svc.CreateProfile(context.Background(), "owner", service.CreateProfileRequest{}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Another passenger cannot even observe that the profile exists.
	_, err := svc.GetProfile(context.Background(), "other", "owner")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = svc.UpdateProfile(context.Background(), "other", "owner", service.UpdateProfileRequest{})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}

	err = svc.DeleteProfile(context.Background(), "other", "owner")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestAccess_StaffCanSeeAnyProfile(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	passengerRepo := NewMockPassengerRepository()
	seedPassengerUser(userRepo, "owner")
	seedStaffUser(userRepo, "admin")
	svc := service.NewPassengerService(userRepo, passengerRepo, nil, nil)

	if _, err := svc.CreateProfile(context.Background(), "owner", service.CreateProfileRequest{}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	profile, err := svc.GetProfile(context.Background(), "admin", "owner")
	if err != nil {
		t.Fatalf("expected staff access, got %v", err)
	}
	if profile.Passenger.UserID != "owner" {
		t.Errorf("expected owner's profile, got %s", profile.Passenger.UserID)
	}
}

func TestList_NonStaffSeesOnlyOwnProfile(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	passengerRepo := NewMockPassengerRepository()
	a := seedPassengerUser(userRepo, "user-a")
	b := seedPassengerUser(userRepo, "user-b")
	a.PhoneNumber = "+256700000001"
	b.PhoneNumber = "+256700000002"
	svc := service.NewPassengerService(userRepo, passengerRepo, nil, nil)

	for _, id := range []string{"user-a", "user-b"} {
		if _, err := svc.CreateProfile(context.Background(), id, service.CreateProfileRequest{}); err != nil {
			t.Fatalf("create %s failed: %v", id, err)
		}
	}

	profiles, err := svc.ListProfiles(context.Background(), "user-a", repository.PassengerFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	if profiles[0].Passenger.UserID != "user-a" {
		t.Errorf("expected own profile, got %s", profiles[0].Passenger.UserID)
	}
}

func TestList_StaffFilters(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	passengerRepo := NewMockPassengerRepository()
	seedStaffUser(userRepo, "admin")
	a := seedPassengerUser(userRepo, "user-a")
	b := seedPassengerUser(userRepo, "user-b")
	a.PhoneNumber = "+256700000001"
	b.PhoneNumber = "+256700000002"
	svc := service.NewPassengerService(userRepo, passengerRepo, nil, nil)

	if _, err := svc.CreateProfile(context.Background(), "user-a", service.CreateProfileRequest{
		PreferredCarType: domain.CarTypePremium,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateProfile(context.Background(), "user-b", service.CreateProfileRequest{}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	all, err := svc.ListProfiles(context.Background(), "admin", repository.PassengerFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(all))
	}

	premium := domain.CarTypePremium
	filtered, err := svc.ListProfiles(context.Background(), "admin", repository.PassengerFilter{
		PreferredCarType: &premium,
	})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Passenger.UserID != "user-a" {
		t.Errorf("expected only user-a's premium profile, got %d results", len(filtered))
	}
}

func TestList_NonStaffFilterExcludesOwnProfile(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	passengerRepo := NewMockPassengerRepository()
	seedPassengerUser(userRepo, "user-a")
	svc := service.NewPassengerService(userRepo, passengerRepo, nil, nil)

	if _, err := svc.CreateProfile(context.Background(), "user-a", service.CreateProfileRequest{}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	verified := true
	profiles, err := svc.ListProfiles(context.Background(), "user-a", repository.PassengerFilter{
		IsPhoneVerified: &verified,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("expected empty result for non-matching filter, got %d", len(profiles))
	}
}
