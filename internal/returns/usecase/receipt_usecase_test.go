package usecase

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/onlinz/returns/internal/database/mocks"
	apperrors "github.com/onlinz/returns/internal/errors"
	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	pricingService "github.com/onlinz/returns/internal/pricing/service"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
	returnsUsecaseMocks "github.com/onlinz/returns/internal/returns/usecase/mocks"
	"github.com/onlinz/returns/internal/validation"
)

func validCustomerForm() returnsDomain.CustomerForm {
	return returnsDomain.CustomerForm{
		FirstName: "aroha",
		LastName:  "Ngata",
		Email:     "aroha@example.com",
		Telephone: "021234567",
		Address:   "12 queen street, auckland 1010",
		Island:    string(pricingDomain.SouthIsland),
	}
}

func newTestUseCase(
	txManager *databaseMocks.MockTxManager,
	repo *returnsUsecaseMocks.MockReceiptRepository,
) *receiptUseCase {
	uc := NewReceiptUseCase(
		txManager,
		repo,
		validation.NewFieldValidator(nil),
		pricingService.NewEngine(pricingDomain.DefaultTariffTable()),
		"NZ",
	).(*receiptUseCase)
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }
	return uc
}

func TestReceiptUseCase_ValidateCustomer(t *testing.T) {
	uc := newTestUseCase(&databaseMocks.MockTxManager{}, &returnsUsecaseMocks.MockReceiptRepository{})

	t.Run("Success_AllFieldsValid", func(t *testing.T) {
		report := uc.ValidateCustomer(validCustomerForm())

		assert.True(t, report.Valid())
		assert.Equal(t, returnsDomain.CustomerFields, report.Fields())
	})

	t.Run("Error_EveryFieldInvalid", func(t *testing.T) {
		report := uc.ValidateCustomer(returnsDomain.CustomerForm{
			FirstName: "1abc",
			LastName:  "",
			Email:     "not-an-email",
			Telephone: "123",
			Address:   "Queen Street",
			Island:    "Chatham Islands",
		})

		assert.False(t, report.Valid())
		assert.Equal(t, returnsDomain.CustomerFields, report.InvalidFields())
		assert.Equal(t, msgIsland, report.Result(returnsDomain.FieldIsland).Message)
	})

	t.Run("Error_SingleInvalidField", func(t *testing.T) {
		form := validCustomerForm()
		form.Email = "aroha@"

		report := uc.ValidateCustomer(form)

		assert.Equal(t, []returnsDomain.Field{returnsDomain.FieldEmail}, report.InvalidFields())
		assert.Equal(t, msgEmail, report.Result(returnsDomain.FieldEmail).Message)
	})

	t.Run("Error_AddressTooLong", func(t *testing.T) {
		form := validCustomerForm()
		form.Address = "12 " + strings.Repeat("queen ", 100) + "street"

		report := uc.ValidateCustomer(form)

		assert.Equal(t, []returnsDomain.Field{returnsDomain.FieldAddress}, report.InvalidFields())
		assert.Equal(t, msgAddress, report.Result(returnsDomain.FieldAddress).Message)
	})

	t.Run("Success_AllowListedDomainFallback", func(t *testing.T) {
		form := validCustomerForm()
		form.Email = "aroha ngata@example.org"

		assert.True(t, uc.ValidateCustomer(form).Valid())
	})
}

func TestReceiptUseCase_ValidateBox(t *testing.T) {
	uc := newTestUseCase(&databaseMocks.MockTxManager{}, &returnsUsecaseMocks.MockReceiptRepository{})

	t.Run("Success_InRange", func(t *testing.T) {
		assert.True(t, uc.ValidateBox(returnsDomain.NewBoxForm(5, 100, 50.5)).Valid())
	})

	t.Run("Error_Missing", func(t *testing.T) {
		report := uc.ValidateBox(returnsDomain.BoxForm{})

		assert.Equal(t, returnsDomain.BoxFields, report.InvalidFields())
		assert.Equal(t, "cannot be blank", report.Result(returnsDomain.FieldHeight).Message)
	})

	t.Run("Error_OutOfRange", func(t *testing.T) {
		report := uc.ValidateBox(returnsDomain.NewBoxForm(4.9, 100.5, 10))

		assert.Equal(t, []returnsDomain.Field{returnsDomain.FieldHeight, returnsDomain.FieldWidth}, report.InvalidFields())
		assert.Equal(t, "must be no less than 5", report.Result(returnsDomain.FieldHeight).Message)
		assert.Equal(t, "must be no greater than 100", report.Result(returnsDomain.FieldWidth).Message)
	})

	t.Run("Error_NotFinite", func(t *testing.T) {
		report := uc.ValidateBox(returnsDomain.NewBoxForm(math.NaN(), math.Inf(1), 10))

		assert.Equal(t, "must be a finite number", report.Result(returnsDomain.FieldHeight).Message)
		assert.Equal(t, "must be a finite number", report.Result(returnsDomain.FieldWidth).Message)
		assert.True(t, report.Result(returnsDomain.FieldDepth).Valid)
	})
}

func TestReceiptUseCase_CustomerDetails(t *testing.T) {
	uc := newTestUseCase(&databaseMocks.MockTxManager{}, &returnsUsecaseMocks.MockReceiptRepository{})

	t.Run("Success_Normalised", func(t *testing.T) {
		details, err := uc.CustomerDetails(validCustomerForm())

		require.NoError(t, err)
		national, _ := validation.FormatPhoneNational("021234567", "NZ")
		assert.Equal(t, "Aroha", details.FirstName)
		assert.Equal(t, "12 Queen Street, Auckland 1010", details.Address)
		assert.Equal(t, national, details.Telephone)
		assert.Equal(t, pricingDomain.SouthIsland, details.Island)
	})

	t.Run("Error_ValidationError", func(t *testing.T) {
		form := validCustomerForm()
		form.Telephone = "abc"

		_, err := uc.CustomerDetails(form)

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		var verr *returnsDomain.ValidationError
		require.True(t, apperrors.As(err, &verr))
		assert.Equal(t, []returnsDomain.Field{returnsDomain.FieldTelephone}, verr.Report.InvalidFields())
	})
}

func TestReceiptUseCase_BoxDimensions(t *testing.T) {
	uc := newTestUseCase(&databaseMocks.MockTxManager{}, &returnsUsecaseMocks.MockReceiptRepository{})

	box, err := uc.BoxDimensions(returnsDomain.NewBoxForm(10, 20, 30))
	require.NoError(t, err)
	assert.Equal(t, returnsDomain.BoxDimensions{Height: 10, Width: 20, Depth: 30}, box)

	_, err = uc.BoxDimensions(returnsDomain.NewBoxForm(10, 200, 30))
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
}

func TestReceiptUseCase_FormatTelephone(t *testing.T) {
	uc := newTestUseCase(&databaseMocks.MockTxManager{}, &returnsUsecaseMocks.MockReceiptRepository{})

	formatted, changed := uc.FormatTelephone("021234567")
	assert.True(t, changed)

	again, changed := uc.FormatTelephone(formatted)
	assert.False(t, changed)
	assert.Equal(t, formatted, again)
}

func TestReceiptUseCase_Quote(t *testing.T) {
	uc := newTestUseCase(&databaseMocks.MockTxManager{}, &returnsUsecaseMocks.MockReceiptRepository{})
	ctx := context.Background()

	quote, err := uc.Quote(ctx, returnsDomain.BoxDimensions{Height: 50, Width: 50, Depth: 50}, pricingDomain.StewartIsland)
	require.NoError(t, err)
	assert.Equal(t, 30.0, quote.Cost)

	_, err = uc.Quote(ctx, returnsDomain.BoxDimensions{Height: 10, Width: 10, Depth: 10}, "Chatham Islands")
	assert.True(t, apperrors.Is(err, pricingDomain.ErrInvalidZone))

	assert.Len(t, uc.Tariffs(), 3)
}

func TestReceiptUseCase_Finalize(t *testing.T) {
	ctx := context.Background()
	box := returnsDomain.BoxDimensions{Height: 10, Width: 10, Depth: 10}

	newCustomer := func(t *testing.T, uc *receiptUseCase) returnsDomain.CustomerDetails {
		customer, err := uc.CustomerDetails(validCustomerForm())
		require.NoError(t, err)
		return customer
	}

	t.Run("Success_AppendsReceipt", func(t *testing.T) {
		mockTxManager := &databaseMocks.MockTxManager{}
		mockRepo := &returnsUsecaseMocks.MockReceiptRepository{}
		uc := newTestUseCase(mockTxManager, mockRepo)

		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		mockRepo.On("Append", ctx, mock.MatchedBy(func(r *returnsDomain.ReceiptRecord) bool {
			return r.Name == "Aroha Ngata" && r.Cost == 12.0 && r.Volume == 1000.0
		})).Return(nil).Once()

		receipt, err := uc.Finalize(ctx, newCustomer(t, uc), box)

		require.NoError(t, err)
		assert.Equal(t, 12.0, receipt.Cost)
		assert.Equal(t, pricingDomain.SouthIsland, receipt.Island)
		assert.Equal(t, time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), receipt.CreatedAt)
		assert.NotEqual(t, [16]byte{}, [16]byte(receipt.ID))
		mockTxManager.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_AppendFails", func(t *testing.T) {
		mockTxManager := &databaseMocks.MockTxManager{}
		mockRepo := &returnsUsecaseMocks.MockReceiptRepository{}
		uc := newTestUseCase(mockTxManager, mockRepo)

		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		mockRepo.On("Append", ctx, mock.Anything).Return(assert.AnError).Once()

		receipt, err := uc.Finalize(ctx, newCustomer(t, uc), box)

		assert.Nil(t, receipt)
		assert.True(t, apperrors.Is(err, returnsDomain.ErrReceiptNotSaved))
		assert.True(t, apperrors.Is(err, apperrors.ErrUnavailable))
		assert.True(t, apperrors.Is(err, assert.AnError))
	})

	t.Run("Error_TransactionFails", func(t *testing.T) {
		mockTxManager := &databaseMocks.MockTxManager{}
		mockRepo := &returnsUsecaseMocks.MockReceiptRepository{}
		uc := newTestUseCase(mockTxManager, mockRepo)

		mockTxManager.On("WithTx", ctx, mock.Anything).Return(assert.AnError).Once()

		_, err := uc.Finalize(ctx, newCustomer(t, uc), box)

		assert.True(t, apperrors.Is(err, returnsDomain.ErrReceiptNotSaved))
		mockRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidZone", func(t *testing.T) {
		mockTxManager := &databaseMocks.MockTxManager{}
		mockRepo := &returnsUsecaseMocks.MockReceiptRepository{}
		uc := newTestUseCase(mockTxManager, mockRepo)

		customer := newCustomer(t, uc)
		customer.Island = "Chatham Islands"

		_, err := uc.Finalize(ctx, customer, box)

		assert.True(t, apperrors.Is(err, pricingDomain.ErrInvalidZone))
		assert.False(t, apperrors.Is(err, returnsDomain.ErrReceiptNotSaved))
		mockTxManager.AssertNotCalled(t, "WithTx", mock.Anything, mock.Anything)
	})
}

func TestReceiptUseCase_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := &returnsUsecaseMocks.MockReceiptRepository{}
	uc := newTestUseCase(&databaseMocks.MockTxManager{}, mockRepo)

	receipts := []*returnsDomain.ReceiptRecord{{Name: "Aroha Ngata"}}
	mockRepo.On("List", ctx).Return(receipts, nil).Once()

	got, err := uc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, receipts, got)
	mockRepo.AssertExpectations(t)
}
