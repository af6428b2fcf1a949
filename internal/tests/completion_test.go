package tests

import (
	"testing"

	"github.com/Darlington6/safeboda/internal/domain"
	"github.com/Darlington6/safeboda/internal/service"
)

// completeUser and completePassenger build inputs with every completion
// field filled. Individual tests blank out what they need.

func completeUser() *domain.User {
	return &domain.User{
		ID:          "user-1",
		Email:       "ada@example.com",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		PhoneNumber: "+15551234567",
		UserType:    domain.UserTypePassenger,
	}
}

func completePassenger() *domain.Passenger {
	return &domain.Passenger{
		UserID:                 "user-1",
		HomeAddress:            "1 Main St",
		EmergencyContactName:   "Grace",
		EmergencyContactPhone:  "+15557654321",
		PreferredPaymentMethod: domain.PaymentMethodCard,
		PreferredCarType:       domain.CarTypeEconomy,
		IsPhoneVerified:        true,
	}
}

func TestCompletion_AllFieldsPresent_FullyComplete(t *testing.T) {
	t.Parallel()

	result := service.EvaluateCompletion(completeUser(), completePassenger())

	if result.Percentage != 100 {
		t.Errorf("expected percentage 100, got %d", result.Percentage)
	}
	if !result.IsComplete {
		t.Error("expected profile to be complete")
	}
}

func TestCompletion_EmptyProfile_Zero(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: "user-1", Email: "ada@example.com"}
	passenger := &domain.Passenger{UserID: "user-1"}

	result := service.EvaluateCompletion(user, passenger)

	if result.Percentage != 0 {
		t.Errorf("expected percentage 0, got %d", result.Percentage)
	}
	if result.IsComplete {
		t.Error("expected profile to be incomplete")
	}
}

// TestCompletion_PercentageSteps verifies the truncated step values as
// predicates are filled one at a time: 0, 16, 33, 50, 66, 83, 100.
func TestCompletion_PercentageSteps(t *testing.T) {
	t.Parallel()

	// Setters fill one predicate each, in a fixed order.
	setters := []func(*domain.User, *domain.Passenger){
		func(u *domain.User, p *domain.Passenger) { u.FirstName = "Ada" },
		func(u *domain.User, p *domain.Passenger) { u.LastName = "Lovelace" },
		func(u *domain.User, p *domain.Passenger) { u.PhoneNumber = "+15551234567"; p.IsPhoneVerified = true },
		func(u *domain.User, p *domain.Passenger) { p.HomeAddress = "1 Main St" },
		func(u *domain.User, p *domain.Passenger) { p.EmergencyContactName = "Grace" },
		func(u *domain.User, p *domain.Passenger) { p.EmergencyContactPhone = "+15557654321" },
	}
	expected := []int{0, 16, 33, 50, 66, 83, 100}

	for count := 0; count <= len(setters); count++ {
		user := &domain.User{ID: "user-1", Email: "ada@example.com"}
		passenger := &domain.Passenger{UserID: "user-1"}
		for i := 0; i < count; i++ {
			setters[i](user, passenger)
		}

		result := service.EvaluateCompletion(user, passenger)
		if result.Percentage != expected[count] {
			t.Errorf("with %d fields filled: expected percentage %d, got %d", count, expected[count], result.Percentage)
		}
		if result.Percentage < 0 || result.Percentage > 100 {
			t.Errorf("percentage %d out of range", result.Percentage)
		}
	}
}

func TestCompletion_UnverifiedPhoneDoesNotCount(t *testing.T) {
	t.Parallel()

	user := completeUser()
	passenger := completePassenger()
	passenger.IsPhoneVerified = false

	result := service.EvaluateCompletion(user, passenger)

	if result.Percentage != 83 {
		t.Errorf("expected percentage 83 with unverified phone, got %d", result.Percentage)
	}
	if result.IsComplete {
		t.Error("expected profile to be incomplete with unverified phone")
	}
}

// TestCompletion_CompletenessIgnoresPhonePresence pins down the
// difference between the two computations: the percentage requires a
// phone number to be present, the completeness flag only requires the
// verified flag.
func TestCompletion_CompletenessIgnoresPhonePresence(t *testing.T) {
	t.Parallel()

	user := completeUser()
	user.PhoneNumber = ""
	passenger := completePassenger()

	result := service.EvaluateCompletion(user, passenger)

	if !result.IsComplete {
		t.Error("expected complete: the flag does not re-check phone presence")
	}
	if result.Percentage != 83 {
		t.Errorf("expected percentage 83 without a phone number, got %d", result.Percentage)
	}
}

func TestCompletion_PartialProfile_HalfComplete(t *testing.T) {
	t.Parallel()

	user := &domain.User{
		ID:          "user-1",
		Email:       "ada@example.com",
		FirstName:   "Ada",
		LastName:    "",
		PhoneNumber: "+15551234567",
	}
	passenger := &domain.Passenger{
		UserID:          "user-1",
		HomeAddress:     "1 Main St",
		IsPhoneVerified: true,
	}

	result := service.EvaluateCompletion(user, passenger)

	if result.Percentage != 50 {
		t.Errorf("expected percentage 50, got %d", result.Percentage)
	}
	if result.IsComplete {
		t.Error("expected profile to be incomplete")
	}
}

func TestCompletion_Idempotent(t *testing.T) {
	t.Parallel()

	user := completeUser()
	user.LastName = ""
	passenger := completePassenger()

	first := service.EvaluateCompletion(user, passenger)
	second := service.EvaluateCompletion(user, passenger)

	if first != second {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}

// Whitespace-only values count as present: completion checks emptiness,
// not content.
func TestCompletion_WhitespaceCountsAsPresent(t *testing.T) {
	t.Parallel()

	user := completeUser()
	passenger := completePassenger()
	passenger.HomeAddress = "   "

	result := service.EvaluateCompletion(user, passenger)

	if result.Percentage != 100 {
		t.Errorf("expected percentage 100 with whitespace address, got %d", result.Percentage)
	}
	if !result.IsComplete {
		t.Error("expected complete with whitespace address")
	}
}
