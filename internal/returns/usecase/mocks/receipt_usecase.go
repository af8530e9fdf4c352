package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

// MockReceiptUseCase is a mock implementation of ReceiptUseCase.
type MockReceiptUseCase struct {
	mock.Mock
}

// ValidateCustomer mocks the ValidateCustomer method of ReceiptUseCase.
func (m *MockReceiptUseCase) ValidateCustomer(form returnsDomain.CustomerForm) returnsDomain.ValidityReport {
	args := m.Called(form)
	return args.Get(0).(returnsDomain.ValidityReport)
}

// ValidateBox mocks the ValidateBox method of ReceiptUseCase.
func (m *MockReceiptUseCase) ValidateBox(form returnsDomain.BoxForm) returnsDomain.ValidityReport {
	args := m.Called(form)
	return args.Get(0).(returnsDomain.ValidityReport)
}

// CustomerDetails mocks the CustomerDetails method of ReceiptUseCase.
func (m *MockReceiptUseCase) CustomerDetails(
	form returnsDomain.CustomerForm,
) (returnsDomain.CustomerDetails, error) {
	args := m.Called(form)
	return args.Get(0).(returnsDomain.CustomerDetails), args.Error(1)
}

// BoxDimensions mocks the BoxDimensions method of ReceiptUseCase.
func (m *MockReceiptUseCase) BoxDimensions(form returnsDomain.BoxForm) (returnsDomain.BoxDimensions, error) {
	args := m.Called(form)
	return args.Get(0).(returnsDomain.BoxDimensions), args.Error(1)
}

// FormatTelephone mocks the FormatTelephone method of ReceiptUseCase.
func (m *MockReceiptUseCase) FormatTelephone(text string) (string, bool) {
	args := m.Called(text)
	return args.String(0), args.Bool(1)
}

// Tariffs mocks the Tariffs method of ReceiptUseCase.
func (m *MockReceiptUseCase) Tariffs() []pricingDomain.Tariff {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]pricingDomain.Tariff)
}

// Quote mocks the Quote method of ReceiptUseCase.
func (m *MockReceiptUseCase) Quote(
	ctx context.Context,
	box returnsDomain.BoxDimensions,
	zone pricingDomain.Zone,
) (*pricingDomain.Quote, error) {
	args := m.Called(ctx, box, zone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricingDomain.Quote), args.Error(1)
}

// Finalize mocks the Finalize method of ReceiptUseCase.
func (m *MockReceiptUseCase) Finalize(
	ctx context.Context,
	customer returnsDomain.CustomerDetails,
	box returnsDomain.BoxDimensions,
) (*returnsDomain.ReceiptRecord, error) {
	args := m.Called(ctx, customer, box)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*returnsDomain.ReceiptRecord), args.Error(1)
}

// List mocks the List method of ReceiptUseCase.
func (m *MockReceiptUseCase) List(ctx context.Context) ([]*returnsDomain.ReceiptRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*returnsDomain.ReceiptRecord), args.Error(1)
}
