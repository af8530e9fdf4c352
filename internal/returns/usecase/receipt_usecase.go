package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/onlinz/returns/internal/database"
	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

// Field messages shown when a customer field is rejected.
const (
	msgFirstName = "First name must start with a letter and contain only letters, spaces, apostrophes or hyphens"
	msgLastName  = "Last name must start with a letter and contain only letters, spaces, apostrophes or hyphens"
	msgEmail     = "Please enter a valid email address"
	msgTelephone = "Please enter a valid telephone number"
	msgAddress   = `Please enter a street address such as "12 Queen Street, Auckland 1010"`
	msgIsland    = "Please choose the island the return is sent from"
)

// receiptUseCase implements ReceiptUseCase.
type receiptUseCase struct {
	txManager   database.TxManager
	receiptRepo ReceiptRepository
	validator   FieldValidator
	engine      PricingEngine
	phoneRegion string
	now         func() time.Time
}

// NewReceiptUseCase creates a ReceiptUseCase. Telephone numbers are parsed
// for phoneRegion.
func NewReceiptUseCase(
	txManager database.TxManager,
	receiptRepo ReceiptRepository,
	validator FieldValidator,
	engine PricingEngine,
	phoneRegion string,
) ReceiptUseCase {
	return &receiptUseCase{
		txManager:   txManager,
		receiptRepo: receiptRepo,
		validator:   validator,
		engine:      engine,
		phoneRegion: phoneRegion,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (r *receiptUseCase) ValidateCustomer(form returnsDomain.CustomerForm) returnsDomain.ValidityReport {
	report := returnsDomain.NewValidityReport(returnsDomain.CustomerFields...)

	if !r.validator.ValidateName(strings.TrimSpace(form.FirstName)) {
		report.Invalidate(returnsDomain.FieldFirstName, msgFirstName)
	}
	if !r.validator.ValidateName(strings.TrimSpace(form.LastName)) {
		report.Invalidate(returnsDomain.FieldLastName, msgLastName)
	}
	if !r.validator.ValidateEmail(strings.TrimSpace(form.Email)) {
		report.Invalidate(returnsDomain.FieldEmail, msgEmail)
	}
	if !r.validator.ValidatePhone(form.Telephone, r.phoneRegion) {
		report.Invalidate(returnsDomain.FieldTelephone, msgTelephone)
	}
	if !r.validator.ValidateAddress(strings.TrimSpace(form.Address)) {
		report.Invalidate(returnsDomain.FieldAddress, msgAddress)
	}
	if !r.engine.Supports(pricingDomain.Zone(form.Island)) {
		report.Invalidate(returnsDomain.FieldIsland, msgIsland)
	}

	return report
}

func (r *receiptUseCase) ValidateBox(form returnsDomain.BoxForm) returnsDomain.ValidityReport {
	report := returnsDomain.NewValidityReport(returnsDomain.BoxFields...)

	dimensions := []struct {
		field returnsDomain.Field
		value *float64
	}{
		{returnsDomain.FieldHeight, form.Height},
		{returnsDomain.FieldWidth, form.Width},
		{returnsDomain.FieldDepth, form.Depth},
	}
	for _, d := range dimensions {
		err := validation.Validate(
			d.value,
			validation.Required,
			validation.By(finite),
			validation.Min(returnsDomain.MinDimension),
			validation.Max(returnsDomain.MaxDimension),
		)
		if err != nil {
			report.Invalidate(d.field, err.Error())
		}
	}

	return report
}

// finite rejects NaN and infinities, which compare false against any bound.
func finite(value any) error {
	v, ok := value.(*float64)
	if !ok || v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return validation.NewError("validation_finite", "must be a finite number")
	}
	return nil
}

func (r *receiptUseCase) CustomerDetails(form returnsDomain.CustomerForm) (returnsDomain.CustomerDetails, error) {
	report := r.ValidateCustomer(form)
	if !report.Valid() {
		return returnsDomain.CustomerDetails{}, returnsDomain.NewValidationError(report)
	}

	telephone, _ := r.validator.FormatPhoneNational(form.Telephone, r.phoneRegion)
	return returnsDomain.NewCustomerDetails(form, telephone), nil
}

func (r *receiptUseCase) BoxDimensions(form returnsDomain.BoxForm) (returnsDomain.BoxDimensions, error) {
	report := r.ValidateBox(form)
	if !report.Valid() {
		return returnsDomain.BoxDimensions{}, returnsDomain.NewValidationError(report)
	}

	return returnsDomain.BoxDimensions{
		Height: *form.Height,
		Width:  *form.Width,
		Depth:  *form.Depth,
	}, nil
}

func (r *receiptUseCase) FormatTelephone(text string) (string, bool) {
	return r.validator.FormatPhoneNational(text, r.phoneRegion)
}

func (r *receiptUseCase) Tariffs() []pricingDomain.Tariff {
	return r.engine.Tariffs()
}

func (r *receiptUseCase) Quote(
	ctx context.Context,
	box returnsDomain.BoxDimensions,
	zone pricingDomain.Zone,
) (*pricingDomain.Quote, error) {
	return r.engine.Quote(box.Height, box.Width, box.Depth, zone)
}

func (r *receiptUseCase) Finalize(
	ctx context.Context,
	customer returnsDomain.CustomerDetails,
	box returnsDomain.BoxDimensions,
) (*returnsDomain.ReceiptRecord, error) {
	quote, err := r.engine.Quote(box.Height, box.Width, box.Depth, customer.Island)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", returnsDomain.ErrReceiptNotSaved, err)
	}
	receipt := returnsDomain.NewReceiptRecord(id, customer, box, quote.Cost, r.now())

	err = r.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return r.receiptRepo.Append(txCtx, receipt)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", returnsDomain.ErrReceiptNotSaved, err)
	}

	return receipt, nil
}

func (r *receiptUseCase) List(ctx context.Context) ([]*returnsDomain.ReceiptRecord, error) {
	return r.receiptRepo.List(ctx)
}
