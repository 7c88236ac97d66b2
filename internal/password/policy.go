// Package password validates candidate passwords against the account
// complexity policy. Rules run in a fixed order and only the first
// violation is reported.
package password

import (
	"errors"
	"strings"
)

// MinLength is the minimum accepted password length.
const MinLength = 8

// specialChars is the accepted special-character set.
const specialChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?`~"

var (
	ErrTooShort  = errors.New("password shorter than minimum length")
	ErrNoLower   = errors.New("password has no lowercase letter")
	ErrNoUpper   = errors.New("password has no uppercase letter")
	ErrNoDigit   = errors.New("password has no digit")
	ErrNoSpecial = errors.New("password has no special character")
)

// Validate checks candidate against the policy rules in order:
// length, lowercase, uppercase, digit, special character. It returns
// nil when all rules pass, otherwise the first violated rule's error.
func Validate(candidate string) error {
	if len(candidate) < MinLength {
		return ErrTooShort
	}
	if !containsFunc(candidate, isLower) {
		return ErrNoLower
	}
	if !containsFunc(candidate, isUpper) {
		return ErrNoUpper
	}
	if !containsFunc(candidate, isDigit) {
		return ErrNoDigit
	}
	if !strings.ContainsAny(candidate, specialChars) {
		return ErrNoSpecial
	}
	return nil
}

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func containsFunc(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}
	return false
}
