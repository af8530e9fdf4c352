// Package validation provides the field rules used to gate a return session.
//
// Every rule is available both as a plain predicate (IsName, IsEmail, ...)
// and as a jellydator validation.Rule so struct level validation uses the
// same grammar as the predicates.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/onlinz/returns/internal/errors"
)

// letters covers ASCII letters, the Latin-1 accented letters and Latin
// Extended-A (macronised vowels such as ā and ō).
const letters = `A-Za-z\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{00FF}\x{0100}-\x{017F}`

// MaxNameLength is the maximum number of runes in a first or last name.
const MaxNameLength = 80

var nameRegex = regexp.MustCompile(`^[` + letters + `][` + letters + `\s'\-]{0,79}$`)

// WrapValidationError wraps validation errors as ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// IsName reports whether s is an acceptable first or last name: a letter
// followed by up to 79 letters, whitespace, apostrophes or hyphens.
func IsName(s string) bool {
	return nameRegex.MatchString(s)
}

// Name validates a personal name.
var Name = validation.NewStringRuleWithError(
	IsName,
	validation.NewError(
		"validation_name",
		"must start with a letter and contain at most 80 letters, spaces, apostrophes or hyphens",
	),
)

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
