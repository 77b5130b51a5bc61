// Package auth covers password handling, signed tokens and the role /
// permission model for the quote API.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const specialChars = `!@#$%^&*(),.?":{}|<>`

// HashPassword hashes a password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
// bcrypt's comparison is constant time.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePassword checks password strength. Rules are evaluated in order
// and the first violation is returned, so callers get one actionable
// message at a time.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &WeakPasswordError{"Password must be at least 8 characters long"}
	}
	if !containsFunc(password, unicode.IsUpper) {
		return &WeakPasswordError{"Password must contain at least one uppercase letter"}
	}
	if !containsFunc(password, unicode.IsLower) {
		return &WeakPasswordError{"Password must contain at least one lowercase letter"}
	}
	if !containsFunc(password, unicode.IsDigit) {
		return &WeakPasswordError{"Password must contain at least one number"}
	}
	if !strings.ContainsAny(password, specialChars) {
		return &WeakPasswordError{"Password must contain at least one special character"}
	}
	return nil
}

// WeakPasswordError reports the first failed strength rule.
type WeakPasswordError struct {
	Reason string
}

func (e *WeakPasswordError) Error() string {
	return e.Reason
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}

// ValidateEmail checks the standard local@domain.tld shape.
func ValidateEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	local, domain := email[:at], email[at+1:]
	if strings.ContainsAny(local, " @") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	if dot < 1 || len(domain)-dot-1 < 2 {
		return false
	}
	for _, r := range domain {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-') {
			return false
		}
	}
	return true
}
