// Package policy holds the input rules applied at sign-in and registration.
package policy

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsValidEmail reports whether s looks like an email address. Surrounding
// whitespace is ignored.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return validate.Var(s, "email") == nil
}

// NormalizeEmail trims and lower-cases an address for storage and lookup.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

const MinPasswordLength = 8

// Result lists the failed password rules in rule order.
type Result struct {
	OK         bool
	Violations []string
}

// First returns the first violation, or "" when the password passed.
func (r Result) First() string {
	if len(r.Violations) == 0 {
		return ""
	}
	return r.Violations[0]
}

type rule struct {
	message string
	ok      func(string) bool
}

var passwordRules = []rule{
	{"Password must be at least 8 characters long", func(s string) bool {
		return len([]rune(s)) >= MinPasswordLength
	}},
	{"Password must contain at least one uppercase letter", hasRune(unicode.IsUpper)},
	{"Password must contain at least one lowercase letter", hasRune(unicode.IsLower)},
	{"Password must contain at least one number", hasRune(unicode.IsDigit)},
	{"Password must contain at least one special character", hasRune(isSpecial)},
}

// CheckPassword evaluates every rule against password.
func CheckPassword(password string) Result {
	var r Result
	for _, rl := range passwordRules {
		if !rl.ok(password) {
			r.Violations = append(r.Violations, rl.message)
		}
	}
	r.OK = len(r.Violations) == 0
	return r
}

func hasRune(pred func(rune) bool) func(string) bool {
	return func(s string) bool {
		return strings.IndexFunc(s, pred) >= 0
	}
}

func isSpecial(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}
