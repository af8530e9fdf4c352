package validation

import (
	validation "github.com/jellydator/validation"
)

// FieldValidator bundles the field predicates with the email allow-list they
// need. It holds no mutable state and is safe to share.
type FieldValidator struct {
	allowedEmailDomains []string
}

// NewFieldValidator creates a FieldValidator. A nil allow-list selects
// DefaultAllowedEmailDomains.
func NewFieldValidator(allowedEmailDomains []string) *FieldValidator {
	if allowedEmailDomains == nil {
		allowedEmailDomains = DefaultAllowedEmailDomains
	}
	domains := make([]string, len(allowedEmailDomains))
	copy(domains, allowedEmailDomains)
	return &FieldValidator{allowedEmailDomains: domains}
}

// ValidateName reports whether text is an acceptable first or last name.
func (v *FieldValidator) ValidateName(text string) bool {
	return IsName(text)
}

// ValidateEmail reports whether text is an acceptable email address.
func (v *FieldValidator) ValidateEmail(text string) bool {
	return IsEmail(text, v.allowedEmailDomains)
}

// ValidatePhone reports whether text is a valid telephone number for region.
func (v *FieldValidator) ValidatePhone(text, region string) bool {
	return IsPhone(text, region)
}

// FormatPhoneNational formats text in region's national format.
func (v *FieldValidator) FormatPhoneNational(text, region string) (string, bool) {
	return FormatPhoneNational(text, region)
}

// ValidateAddress reports whether text is an acceptable street address.
func (v *FieldValidator) ValidateAddress(text string) bool {
	return IsAddress(text)
}

// EmailRule returns the email rule bound to this validator's allow-list.
func (v *FieldValidator) EmailRule() validation.Rule {
	return Email(v.allowedEmailDomains)
}
