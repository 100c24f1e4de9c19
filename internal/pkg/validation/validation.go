// Package validation holds the pure input predicates shared by the identity
// and customer services. None of these functions touch I/O; failures are
// reported through apperrors so callers keep a single error taxonomy.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"maverick-bank/internal/pkg/apperrors"
)

// TLD bounded to 2-7 characters, matching the account-opening rules the bank
// has enforced historically.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_+&*-]+(?:\.[A-Za-z0-9_+&*-]+)*@(?:[A-Za-z-]+\.)+[A-Za-z]{2,7}$`)

const MinPasswordLength = 8

const AdultAge = 18

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword reports whether password is at least MinPasswordLength
// characters and contains one lowercase letter, one uppercase letter and one
// digit.
func IsValidPassword(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}

// IsAdult reports whether someone born on dateOfBirth is at least AdultAge
// calendar years old on the given day. The comparison is calendar based, not
// a 365-day approximation: a date of birth exactly AdultAge years before
// today passes.
func IsAdult(dateOfBirth, today time.Time) bool {
	dob := truncateToDate(dateOfBirth)
	now := truncateToDate(today)
	return !dob.AddDate(AdultAge, 0, 0).After(now)
}

func RequireNonEmpty(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(fieldName, fieldName+" cannot be empty")
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
