// Package mocks provides mock implementations of the returns use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

// MockReceiptRepository is a mock implementation of ReceiptRepository.
type MockReceiptRepository struct {
	mock.Mock
}

// Append mocks the Append method of ReceiptRepository.
func (m *MockReceiptRepository) Append(ctx context.Context, receipt *returnsDomain.ReceiptRecord) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

// List mocks the List method of ReceiptRepository.
func (m *MockReceiptRepository) List(ctx context.Context) ([]*returnsDomain.ReceiptRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*returnsDomain.ReceiptRecord), args.Error(1)
}
