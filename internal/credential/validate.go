// Package credential checks usernames and passwords against the account rules.
// Every check is pure; the reason for a rejection travels in the returned error.
package credential

import "github.com/idilsaglam/tasktracker/internal/model"

const (
	MinUsernameLen = 6
	MaxUsernameLen = 20
	MinPasswordLen = 8
)

// ValidateUsername accepts 6 to 20 ASCII letters or digits.
func ValidateUsername(name string) error {
	n := len(name)
	if n < MinUsernameLen {
		return model.Errorf(model.ErrInvalidUsername, "too short (min %d characters)", MinUsernameLen)
	}
	if n > MaxUsernameLen {
		return model.Errorf(model.ErrInvalidUsername, "too long (max %d characters)", MaxUsernameLen)
	}
	for i := 0; i < n; i++ {
		if !isDigit(name[i]) && !isUpper(name[i]) && !isLower(name[i]) {
			return model.Errorf(model.ErrInvalidUsername, "only letters and digits are allowed")
		}
	}
	return nil
}

// ValidatePassword requires at least 8 bytes with at least one digit, one
// uppercase letter, one lowercase letter and one symbol. Any byte outside the
// ASCII digit and letter ranges counts as a symbol.
func ValidatePassword(password string) error {
	n := len(password)
	if n < MinPasswordLen {
		return model.Errorf(model.ErrInvalidPassword, "too short (min %d characters)", MinPasswordLen)
	}

	var hasDigit, hasUpper, hasLower, hasSymbol bool
	for i := 0; i < n; i++ {
		switch c := password[i]; {
		case isDigit(c):
			hasDigit = true
		case isUpper(c):
			hasUpper = true
		case isLower(c):
			hasLower = true
		default:
			hasSymbol = true
		}
	}
	if !(hasDigit && hasUpper && hasLower && hasSymbol) {
		return model.Errorf(model.ErrInvalidPassword, "needs an uppercase letter, a lowercase letter, a digit and a symbol")
	}
	return nil
}

func IsValidUsername(name string) bool { return ValidateUsername(name) == nil }

func IsValidPassword(password string) bool { return ValidatePassword(password) == nil }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
