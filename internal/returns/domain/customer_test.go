package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "mere", expected: "Mere"},
		{input: "TAMATI", expected: "Tamati"},
		{input: "ōtautahi", expected: "Ōtautahi"},
		{input: "o'brien", expected: "O'brien"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Capitalize(tt.input))
		})
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "12 Queen Street, Auckland 1010", TitleCase("12 queen street, auckland 1010"))
	assert.Equal(t, "3/45 Beach Road", TitleCase("3/45 BEACH road"))
}

func TestNewCustomerDetails(t *testing.T) {
	form := CustomerForm{
		FirstName: "  aroha ",
		LastName:  "NGATA",
		Email:     " aroha@example.com ",
		Telephone: "0211234567",
		Address:   "12 queen street, auckland 1010",
		Island:    "South Island",
	}

	details := NewCustomerDetails(form, "021 123 4567")

	assert.Equal(t, "Aroha", details.FirstName)
	assert.Equal(t, "Ngata", details.LastName)
	assert.Equal(t, "Aroha Ngata", details.FullName())
	assert.Equal(t, "aroha@example.com", details.Email)
	assert.Equal(t, "021 123 4567", details.Telephone)
	assert.Equal(t, "12 Queen Street, Auckland 1010", details.Address)
	assert.Equal(t, pricingDomain.SouthIsland, details.Island)

	back := details.Form()
	assert.Equal(t, "Aroha", back.FirstName)
	assert.Equal(t, "South Island", back.Island)
}
