package validation

import (
	"strings"

	validation "github.com/jellydator/validation"
	"github.com/nyaruka/phonenumbers"
)

// IsPhone reports whether text parses as a valid number for region's numbering plan.
func IsPhone(text, region string) bool {
	_, ok := parsePhone(text, region)
	return ok
}

// FormatPhoneNational returns text in region's national format. When text is
// not a valid number, or is already formatted, it is returned unchanged and
// changed is false.
func FormatPhoneNational(text, region string) (formatted string, changed bool) {
	num, ok := parsePhone(text, region)
	if !ok {
		return text, false
	}
	formatted = phonenumbers.Format(num, phonenumbers.NATIONAL)
	return formatted, formatted != text
}

func parsePhone(text, region string) (*phonenumbers.PhoneNumber, bool) {
	region = strings.ToUpper(region)
	if strings.TrimSpace(text) == "" {
		return nil, false
	}
	num, err := phonenumbers.Parse(text, region)
	if err != nil {
		return nil, false
	}
	if !phonenumbers.IsValidNumberForRegion(num, region) {
		return nil, false
	}
	return num, true
}

// Phone validates a telephone number for the given default region.
func Phone(region string) validation.Rule {
	return validation.NewStringRuleWithError(
		func(s string) bool {
			return IsPhone(s, region)
		},
		validation.NewError("validation_phone", "must be a valid "+strings.ToUpper(region)+" telephone number"),
	)
}
