package validator

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	// ErrEmptyName indicates a required name field is empty
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidEmail indicates the email is not in local-part@domain form
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPhone indicates the phone number is not exactly 10 digits
	ErrInvalidPhone = errors.New("phone number must be exactly 10 digits")

	// ErrEmptyIDProof indicates the id-proof field is empty
	ErrEmptyIDProof = errors.New("id proof cannot be empty")

	// ErrInvalidDate indicates a date is not a valid YYYY-MM-DD value
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
)

// emailRegex is deliberately permissive: local part followed by a
// non-empty domain
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// phoneRegex matches exactly 10 digits
var phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)

// DateLayout is the wire format for check-in / check-out dates
const DateLayout = "2006-01-02"

// GuestValidator validates operator-supplied guest input
type GuestValidator struct{}

// NewGuestValidator creates a new guest validator instance
func NewGuestValidator() *GuestValidator {
	return &GuestValidator{}
}

// ValidateName validates a single name field, returning the trimmed value
func (v *GuestValidator) ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}
	return trimmed, nil
}

// ValidateEmail validates an email address, returning the trimmed value
func (v *GuestValidator) ValidateEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if !emailRegex.MatchString(trimmed) {
		return "", ErrInvalidEmail
	}
	return trimmed, nil
}

// ValidatePhone validates a phone number.
// Accepts format: 9876543210 or 987 654 3210 or 987-654-3210.
// Returns the sanitized phone number (digits only) and error if invalid.
func (v *GuestValidator) ValidatePhone(phone string) (string, error) {
	sanitized := v.Sanitize(phone)
	if !phoneRegex.MatchString(sanitized) {
		return "", ErrInvalidPhone
	}
	return sanitized, nil
}

// ValidateIDProof validates the id-proof field, returning the trimmed value.
// Content is free text and deliberately unvalidated beyond presence.
func (v *GuestValidator) ValidateIDProof(idProof string) (string, error) {
	trimmed := strings.TrimSpace(idProof)
	if trimmed == "" {
		return "", ErrEmptyIDProof
	}
	return trimmed, nil
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.Time
func (v *GuestValidator) ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Sanitize removes spaces and dashes from a phone number
func (v *GuestValidator) Sanitize(phone string) string {
	sanitized := strings.ReplaceAll(phone, " ", "")
	sanitized = strings.ReplaceAll(sanitized, "-", "")
	return sanitized
}
