// Package validation holds the input checks shared by the public signup
// form and the admin courier surface.
package validation

import (
	"fmt"
	"regexp"
)

// Error marks a rejected input. Handlers map it to a 400 with the message
// as-is, so messages are written for end users.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func Errorf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the loose shape local@domain.tld. Deliberately nothing
// closer to the RFC; the confirmation email is the real verification.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone accepts any formatting as long as 10 to 15 digits remain after
// stripping everything else.
func ValidPhone(phone string) bool {
	count := len(digitsOf(phone))
	return count >= 10 && count <= 15
}

// FormatPhone renders a bare 10-digit number as (xxx) xxx-xxxx and leaves
// anything else untouched.
func FormatPhone(phone string) string {
	digits := digitsOf(phone)
	if len(digits) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}

func digitsOf(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}
