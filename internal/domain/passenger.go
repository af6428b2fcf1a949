package domain

import "time"

// PaymentMethod is a passenger's preferred way to pay for rides.
type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodCard        PaymentMethod = "card"
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
	PaymentMethodWallet      PaymentMethod = "wallet"
)

// CarType is a passenger's preferred vehicle class.
type CarType string

const (
	CarTypeEconomy CarType = "economy"
	CarTypeComfort CarType = "comfort"
	CarTypePremium CarType = "premium"
	CarTypeAny     CarType = "any"
)

// Defaults applied when a profile is created without explicit preferences.
const (
	DefaultPaymentMethod = PaymentMethodCard
	DefaultCarType       = CarTypeEconomy
	DefaultAverageRating = 5.0
)

// Passenger is the profile record owned 1:1 by a passenger-type User.
// UserID is the primary key; a user owns at most one profile.
type Passenger struct {
	UserID                 string
	HomeAddress            string
	WorkAddress            string
	EmergencyContactName   string
	EmergencyContactPhone  string
	PreferredPaymentMethod PaymentMethod
	PreferredCarType       CarType

	// AverageRating and TotalRides are written by the ride-completion
	// process, never by profile edits.
	AverageRating float64
	TotalRides    int

	// IsPhoneVerified is flipped by the phone verification process.
	IsPhoneVerified bool

	// IsProfileComplete is derived from profile and identity fields and
	// recomputed on every write that touches a contributing field.
	IsProfileComplete bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidPaymentMethod reports whether m is a known payment method.
func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobileMoney, PaymentMethodWallet:
		return true
	}
	return false
}

// IsValidCarType reports whether t is a known car type.
func IsValidCarType(t CarType) bool {
	switch t {
	case CarTypeEconomy, CarTypeComfort, CarTypePremium, CarTypeAny:
		return true
	}
	return false
}
