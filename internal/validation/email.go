package validation

import (
	"strings"
	"unicode/utf8"

	validation "github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// DefaultAllowedEmailDomains are accepted even when an address is otherwise malformed.
var DefaultAllowedEmailDomains = []string{"example.com", "example.org", "example.net"}

// MaxEmailLength is the longest email address, in runes, a receipt store accepts.
const MaxEmailLength = 320

// IsEmail reports whether s is a structurally valid email address, or failing
// that, whether its domain is one of allowedDomains (or a subdomain of one).
func IsEmail(s string, allowedDomains []string) bool {
	if utf8.RuneCountInString(s) > MaxEmailLength {
		return false
	}
	if isEmailFormat(s) {
		return true
	}
	return hasAllowedDomain(s, allowedDomains)
}

// isEmailFormat requires exactly one "@", a non-empty local part, a dotted
// domain and the is.EmailFormat grammar.
func isEmailFormat(s string) bool {
	if strings.Count(s, "@") != 1 {
		return false
	}
	local, domain, _ := strings.Cut(s, "@")
	if local == "" || !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return is.EmailFormat.Validate(s) == nil
}

func hasAllowedDomain(s string, allowedDomains []string) bool {
	at := strings.LastIndex(s, "@")
	if at <= 0 {
		return false
	}
	domain := strings.ToLower(s[at+1:])
	for _, allowed := range allowedDomains {
		if domain == allowed || strings.HasSuffix(domain, "."+allowed) {
			return true
		}
	}
	return false
}

// Email validates an email address against the given allow-list fallback.
func Email(allowedDomains []string) validation.Rule {
	return validation.NewStringRuleWithError(
		func(s string) bool {
			return IsEmail(s, allowedDomains)
		},
		validation.NewError("validation_email_format", "must be a valid email address"),
	)
}
