// Package dto provides data transfer objects for the returns HTTP API.
package dto

import (

	validation "github.com/jellydator/validation"

	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
	customValidation "github.com/onlinz/returns/internal/validation"
)

// CustomerRequest is the customer details page as submitted by a client.
// Field level checks are done by the use case so every field gets a result.
type CustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Address   string `json:"address"`
	Island    string `json:"island"`
}

// ToForm converts the request to a form snapshot.
func (r *CustomerRequest) ToForm() returnsDomain.CustomerForm {
	return returnsDomain.CustomerForm{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Telephone: r.Telephone,
		Address:   r.Address,
		Island:    r.Island,
	}
}

// BoxRequest holds box dimensions in centimetres. Omitted dimensions are nil.
type BoxRequest struct {
	Height *float64 `json:"height"`
	Width  *float64 `json:"width"`
	Depth  *float64 `json:"depth"`
}

// ToForm converts the request to a form snapshot.
func (r *BoxRequest) ToForm() returnsDomain.BoxForm {
	return returnsDomain.BoxForm{Height: r.Height, Width: r.Width, Depth: r.Depth}
}

// TelephoneRequest asks for a number to be put in national format.
type TelephoneRequest struct {
	Telephone string `json:"telephone"`
}

// Validate checks if the telephone request is valid.
func (r *TelephoneRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Telephone,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 32),
		),
	)
}

// QuoteRequest prices a box for an island.
type QuoteRequest struct {
	BoxRequest
	Island string `json:"island"`
}

// ValidateIsland checks Island against the priced zones.
func (r *QuoteRequest) ValidateIsland(zones []string) error {
	allowed := make([]any, len(zones))
	for i, z := range zones {
		allowed[i] = z
	}
	return validation.Validate(r.Island, validation.Required, validation.In(allowed...))
}

// ReceiptRequest submits a complete return for persistence.
type ReceiptRequest struct {
	Customer CustomerRequest `json:"customer"`
	Box      BoxRequest      `json:"box"`
}
