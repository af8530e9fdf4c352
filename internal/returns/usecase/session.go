package usecase

import (
	"context"

	"github.com/onlinz/returns/internal/errors"
	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

// Session drives one return through CollectingCustomer, CollectingBox,
// Reviewing and Finalized. It is not safe for concurrent use; each terminal
// wizard owns exactly one.
type Session struct {
	useCase ReceiptUseCase
	state   returnsDomain.State

	customerForm returnsDomain.CustomerForm
	boxForm      returnsDomain.BoxForm

	customer *returnsDomain.CustomerDetails
	box      *returnsDomain.BoxDimensions
	quote    *pricingDomain.Quote
	receipt  *returnsDomain.ReceiptRecord
}

// NewSession starts a session in CollectingCustomer.
func NewSession(useCase ReceiptUseCase) *Session {
	return &Session{
		useCase: useCase,
		state:   returnsDomain.StateCollectingCustomer,
	}
}

// State returns the current step.
func (s *Session) State() returnsDomain.State {
	return s.state
}

// CustomerForm returns the last submitted customer snapshot.
func (s *Session) CustomerForm() returnsDomain.CustomerForm {
	return s.customerForm
}

// BoxForm returns the last submitted box snapshot.
func (s *Session) BoxForm() returnsDomain.BoxForm {
	return s.boxForm
}

// Customer returns the accepted customer details, if any.
func (s *Session) Customer() (returnsDomain.CustomerDetails, bool) {
	if s.customer == nil {
		return returnsDomain.CustomerDetails{}, false
	}
	return *s.customer, true
}

// Box returns the accepted box dimensions, if any.
func (s *Session) Box() (returnsDomain.BoxDimensions, bool) {
	if s.box == nil {
		return returnsDomain.BoxDimensions{}, false
	}
	return *s.box, true
}

// Quote returns the price preview computed when the box was accepted.
func (s *Session) Quote() *pricingDomain.Quote {
	return s.quote
}

// Receipt returns the saved receipt once the session is Finalized.
func (s *Session) Receipt() *returnsDomain.ReceiptRecord {
	return s.receipt
}

func (s *Session) transition(next returnsDomain.State) error {
	if !s.state.CanTransitionTo(next) {
		return errors.Wrap(returnsDomain.ErrInvalidTransition, string(s.state)+" -> "+string(next))
	}
	s.state = next
	return nil
}

func (s *Session) require(state returnsDomain.State, next returnsDomain.State) error {
	if s.state != state {
		return errors.Wrap(returnsDomain.ErrInvalidTransition, string(s.state)+" -> "+string(next))
	}
	return nil
}

// SubmitCustomer gates form and moves to CollectingBox. A rejected form
// leaves the state unchanged and returns the report with a ValidationError.
func (s *Session) SubmitCustomer(form returnsDomain.CustomerForm) (returnsDomain.ValidityReport, error) {
	if err := s.require(returnsDomain.StateCollectingCustomer, returnsDomain.StateCollectingBox); err != nil {
		return returnsDomain.ValidityReport{}, err
	}

	s.customerForm = form
	report := s.useCase.ValidateCustomer(form)
	if !report.Valid() {
		return report, returnsDomain.NewValidationError(report)
	}

	customer, err := s.useCase.CustomerDetails(form)
	if err != nil {
		return report, err
	}

	s.customer = &customer
	s.customerForm = customer.Form()
	return report, s.transition(returnsDomain.StateCollectingBox)
}

// SubmitBox gates form, prices the box for the customer's island and moves
// to Reviewing.
func (s *Session) SubmitBox(ctx context.Context, form returnsDomain.BoxForm) (returnsDomain.ValidityReport, error) {
	if err := s.require(returnsDomain.StateCollectingBox, returnsDomain.StateReviewing); err != nil {
		return returnsDomain.ValidityReport{}, err
	}

	s.boxForm = form
	report := s.useCase.ValidateBox(form)
	if !report.Valid() {
		return report, returnsDomain.NewValidationError(report)
	}

	box, err := s.useCase.BoxDimensions(form)
	if err != nil {
		return report, err
	}

	quote, err := s.useCase.Quote(ctx, box, s.customer.Island)
	if err != nil {
		return report, err
	}

	s.box = &box
	s.quote = quote
	return report, s.transition(returnsDomain.StateReviewing)
}

// Back returns to the previous step. Entered values are kept.
func (s *Session) Back() error {
	prev, ok := s.state.Previous()
	if !ok {
		return errors.Wrap(returnsDomain.ErrInvalidTransition, string(s.state)+" -> back")
	}
	if prev == returnsDomain.StateCollectingBox {
		s.quote = nil
	}
	return s.transition(prev)
}

// Confirm persists the receipt and moves to Finalized. When saving fails the
// session stays in Reviewing so it can be confirmed again.
func (s *Session) Confirm(ctx context.Context) (*returnsDomain.ReceiptRecord, error) {
	if err := s.require(returnsDomain.StateReviewing, returnsDomain.StateFinalized); err != nil {
		return nil, err
	}

	receipt, err := s.useCase.Finalize(ctx, *s.customer, *s.box)
	if err != nil {
		return nil, err
	}

	s.receipt = receipt
	return receipt, s.transition(returnsDomain.StateFinalized)
}

// Reset clears everything and starts over in CollectingCustomer.
func (s *Session) Reset() {
	*s = Session{
		useCase: s.useCase,
		state:   returnsDomain.StateCollectingCustomer,
	}
}
