package service

import "github.com/Darlington6/safeboda/internal/domain"

// completionFieldCount is the number of fields that contribute to the
// completion percentage.
const completionFieldCount = 6

// CompletionResult is the outcome of evaluating a passenger profile.
type CompletionResult struct {
	Percentage int
	IsComplete bool
}

// EvaluateCompletion computes how complete a passenger profile is.
// It is a pure function over the given identity and profile; the caller
// decides what to do with the result.
//
// Percentage counts six presence predicates and truncates to an integer,
// so the possible values are 0, 16, 33, 50, 66, 83 and 100. The phone
// predicate requires both a phone number and a verified phone.
//
// IsComplete checks names, home address and both emergency contact
// fields plus the verified flag. It does not re-check phone number
// presence; the verified flag alone carries that predicate.
func EvaluateCompletion(user *domain.User, p *domain.Passenger) CompletionResult {
	completed := 0
	if user.FirstName != "" {
		completed++
	}
	if user.LastName != "" {
		completed++
	}
	if user.PhoneNumber != "" && p.IsPhoneVerified {
		completed++
	}
	if p.HomeAddress != "" {
		completed++
	}
	if p.EmergencyContactName != "" {
		completed++
	}
	if p.EmergencyContactPhone != "" {
		completed++
	}

	isComplete := user.FirstName != "" &&
		user.LastName != "" &&
		p.HomeAddress != "" &&
		p.EmergencyContactName != "" &&
		p.EmergencyContactPhone != "" &&
		p.IsPhoneVerified

	return CompletionResult{
		Percentage: completed * 100 / completionFieldCount,
		IsComplete: isComplete,
	}
}
