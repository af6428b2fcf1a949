package domain

import (
	"regexp"
	"strings"
	"time"
)

// UserType distinguishes the two account roles in the system.
type UserType string

const (
	UserTypePassenger UserType = "passenger"
	UserTypeRider     UserType = "rider"
)

// phonePattern matches an optional +, an optional leading 1, then 9-15 digits.
var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// User represents an account identity. Email is the unique identifier
// used for authentication instead of usernames.
type User struct {
	ID          string
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
	UserType    UserType
	IsStaff     bool
	IsActive    bool
	DateJoined  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName returns the user's display name, falling back to the local
// part of the email when names are not set.
func (u *User) FullName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if at := strings.IndexByte(u.Email, '@'); at > 0 {
		return u.Email[:at]
	}
	return u.Email
}

// NormalizeEmail lowercases the domain part of an email address.
func NormalizeEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// IsValidUserType reports whether t is a known user type.
func IsValidUserType(t UserType) bool {
	return t == UserTypePassenger || t == UserTypeRider
}

// IsValidPhoneNumber reports whether phone matches the accepted format.
func IsValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}
