// Package usecase implements the return workflow: gating form snapshots,
// building validated value objects, quoting and persisting receipts.
package usecase

import (
	"context"

	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

// ReceiptRepository is the flat append-only receipt store.
type ReceiptRepository interface {
	Append(ctx context.Context, receipt *returnsDomain.ReceiptRecord) error
	List(ctx context.Context) ([]*returnsDomain.ReceiptRecord, error)
}

// FieldValidator holds the per-field predicates.
type FieldValidator interface {
	ValidateName(text string) bool
	ValidateEmail(text string) bool
	ValidatePhone(text, region string) bool
	FormatPhoneNational(text, region string) (string, bool)
	ValidateAddress(text string) bool
}

// PricingEngine prices a box for a destination zone.
type PricingEngine interface {
	Quote(height, width, depth float64, zone pricingDomain.Zone) (*pricingDomain.Quote, error)
	Supports(zone pricingDomain.Zone) bool
	Tariffs() []pricingDomain.Tariff
}

// ReceiptUseCase defines the business logic of a return.
type ReceiptUseCase interface {
	// ValidateCustomer recomputes the validity of every customer field.
	ValidateCustomer(form returnsDomain.CustomerForm) returnsDomain.ValidityReport
	// ValidateBox recomputes the validity of every box dimension.
	ValidateBox(form returnsDomain.BoxForm) returnsDomain.ValidityReport
	// CustomerDetails gates and normalises a customer form. An invalid form
	// yields a *returnsDomain.ValidationError.
	CustomerDetails(form returnsDomain.CustomerForm) (returnsDomain.CustomerDetails, error)
	// BoxDimensions gates a box form.
	BoxDimensions(form returnsDomain.BoxForm) (returnsDomain.BoxDimensions, error)
	// FormatTelephone returns the national format of text and whether it differs.
	FormatTelephone(text string) (string, bool)
	Tariffs() []pricingDomain.Tariff
	Quote(ctx context.Context, box returnsDomain.BoxDimensions, zone pricingDomain.Zone) (*pricingDomain.Quote, error)
	// Finalize prices the return and appends its receipt to the store.
	Finalize(
		ctx context.Context,
		customer returnsDomain.CustomerDetails,
		box returnsDomain.BoxDimensions,
	) (*returnsDomain.ReceiptRecord, error)
	List(ctx context.Context) ([]*returnsDomain.ReceiptRecord, error)
}
