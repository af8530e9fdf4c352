package validation

import (
	"regexp"
	"unicode/utf8"

	validation "github.com/jellydator/validation"
)

// MaxAddressLength is the longest address, in runes, a receipt store accepts.
const MaxAddressLength = 512

// streetTypes is the closed set of street type tokens, full forms first.
var streetTypes = []string{
	"street", "st",
	"road", "rd",
	"avenue", "ave",
	"drive", "dr",
	"lane", "ln",
	"place", "pl",
	"crescent", "cres",
	"terrace", "tce",
	"court", "ct",
	"way",
	"boulevard", "blvd",
	"close", "cl",
	"parade", "pde",
	"highway", "hwy",
	"grove", "gr",
	"square", "sq",
	"quay",
	"rise",
	"mews",
}

// addressRegex matches "[unit/]number[letter] street-name street-type
// [, suburb][, city][ postcode]" over the whole string.
var addressRegex = regexp.MustCompile(
	`(?i)^` +
		`(?:\d{1,4}[a-z]?/)?\d{1,4}[a-z]?` +
		`\s+[` + letters + `' \-]+?` +
		`\s+(?:` + alternation(streetTypes) + `)\.?` +
		`(?:,\s*[` + letters + `' \-]+){0,2}` +
		`(?:,?\s+\d{4})?` +
		`\s*$`,
)

func alternation(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += "|"
		}
		out += regexp.QuoteMeta(w)
	}
	return out
}

// IsAddress reports whether s is a street address accepted for returns.
// Matching is case-insensitive and anchored at both ends.
func IsAddress(s string) bool {
	if utf8.RuneCountInString(s) > MaxAddressLength {
		return false
	}
	return addressRegex.MatchString(s)
}

// Address validates a street address.
var Address = validation.NewStringRuleWithError(
	IsAddress,
	validation.NewError(
		"validation_address",
		"must look like \"12 Queen Street, Auckland 1010\"",
	),
)
