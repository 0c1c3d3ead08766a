package validation

import (
	"strings"
	"time"
)

// MaxImageAttachmentSize caps image attachments in the registration flow.
const MaxImageAttachmentSize = 300 * 1024

// IsBasicEmail checks the registration form's email rule: no whitespace,
// exactly one '@', and at least one '.' somewhere after it. Deliberately
// looser than RFC parsing.
func IsBasicEmail(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// IsISODate reports whether s is a parseable YYYY-MM-DD date.
func IsISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// AllFilled reports whether every value is non-empty after trimming.
func AllFilled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
