package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
)

// CustomerForm is the raw snapshot of the customer details page.
type CustomerForm struct {
	FirstName string
	LastName  string
	Email     string
	Telephone string
	Address   string
	Island    string
}

// CustomerDetails is a validated, normalised customer. Build it with
// NewCustomerDetails only after the form passed validation.
type CustomerDetails struct {
	FirstName string
	LastName  string
	Email     string
	Telephone string
	Address   string
	Island    pricingDomain.Zone
}

// NewCustomerDetails normalises a validated form. Names are capitalised, the
// address is title-cased and telephone replaces the raw number (callers pass
// the nationally formatted one).
func NewCustomerDetails(form CustomerForm, telephone string) CustomerDetails {
	return CustomerDetails{
		FirstName: Capitalize(strings.TrimSpace(form.FirstName)),
		LastName:  Capitalize(strings.TrimSpace(form.LastName)),
		Email:     strings.TrimSpace(form.Email),
		Telephone: telephone,
		Address:   TitleCase(strings.TrimSpace(form.Address)),
		Island:    pricingDomain.Zone(form.Island),
	}
}

// FullName returns "First Last".
func (c CustomerDetails) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Form returns the snapshot the details were built from, for re-editing.
func (c CustomerDetails) Form() CustomerForm {
	return CustomerForm{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Telephone: c.Telephone,
		Address:   c.Address,
		Island:    string(c.Island),
	}
}

var (
	lower = cases.Lower(language.Und)
	title = cases.Title(language.Und)
)

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToTitle(r)) + lower.String(s[size:])
}

// TitleCase upper-cases the first letter of every word of s.
func TitleCase(s string) string {
	return title.String(s)
}
