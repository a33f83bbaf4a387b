package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"  user@example.com ", true},
		{"first.last+tag@sub.example.org", true},
		{"", false},
		{"user", false},
		{"user@", false},
		{"@example.com", false},
		{"user example@x.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.in))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jo@example.com", NormalizeEmail("  Jo@Example.COM "))
}

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		first string
		count int
	}{
		{"strong", "Str0ng!Pass", "", 0},
		{"too short", "Ab1!", "Password must be at least 8 characters long", 1},
		{"no upper", "lower1!case", "Password must contain at least one uppercase letter", 1},
		{"no lower", "UPPER1!CASE", "Password must contain at least one lowercase letter", 1},
		{"no digit", "NoDigits!!", "Password must contain at least one number", 1},
		{"no special", "NoSpecial12", "Password must contain at least one special character", 1},
		{"empty", "", "Password must be at least 8 characters long", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CheckPassword(tt.in)
			assert.Equal(t, tt.count == 0, r.OK)
			assert.Len(t, r.Violations, tt.count)
			assert.Equal(t, tt.first, r.First())
		})
	}
}
