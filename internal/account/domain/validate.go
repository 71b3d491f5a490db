package domain

import (
	"regexp"
	"strings"

	"github.com/sableroast/storefront/internal/platform/errors"
)

const minPasswordLength = 8

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Indonesian mobile numbers: +62, 62, or 0 prefix followed by 9 to 12 digits.
	phonePattern = regexp.MustCompile(`^(\+62|62|0)[0-9]{9,12}$`)
)

// Registration is the raw form input for a new account.
type Registration struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// ValidEmail reports whether the address has a plausible mailbox@host.tld
// shape. The check is deliberately loose; delivery is never attempted.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.ToLower(email))
}

// ValidPhone reports whether the number is a plausible Indonesian phone
// number. Spaces are ignored.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// Validate checks the registration input and returns the first failure.
// Checks run in a fixed order: required fields, password length, password
// confirmation, email format, phone format.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.FullName) == "" ||
		strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.Phone) == "" ||
		r.Password == "" || r.ConfirmPassword == "" {
		return errors.New(errors.CodeValidationMissingField, "all fields are required")
	}
	if len(r.Password) < minPasswordLength {
		return errors.New(errors.CodeValidationPasswordShort, "password must be at least 8 characters")
	}
	if r.Password != r.ConfirmPassword {
		return errors.New(errors.CodeValidationPasswordMatch, "passwords do not match")
	}
	if !ValidEmail(r.Email) {
		return errors.New(errors.CodeValidationEmailFormat, "invalid email format")
	}
	if !ValidPhone(r.Phone) {
		return errors.New(errors.CodeValidationPhoneFormat, "invalid phone number format")
	}
	return nil
}

// ValidateLogin checks the login form input.
func ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return errors.New(errors.CodeValidationMissingField, "email and password are required")
	}
	if !ValidEmail(email) {
		return errors.New(errors.CodeValidationEmailFormat, "invalid email format")
	}
	return nil
}
