package usecase

import (
	"context"
	"time"

	"github.com/onlinz/returns/internal/metrics"
	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

const metricsDomain = "returns"

// receiptUseCaseWithMetrics decorates ReceiptUseCase with metrics instrumentation.
// Pure gating calls are passed through unrecorded.
type receiptUseCaseWithMetrics struct {
	next    ReceiptUseCase
	metrics metrics.BusinessMetrics
}

// NewReceiptUseCaseWithMetrics wraps a ReceiptUseCase with metrics recording.
func NewReceiptUseCaseWithMetrics(useCase ReceiptUseCase, m metrics.BusinessMetrics) ReceiptUseCase {
	return &receiptUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (r *receiptUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	r.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

func (r *receiptUseCaseWithMetrics) ValidateCustomer(
	form returnsDomain.CustomerForm,
) returnsDomain.ValidityReport {
	return r.next.ValidateCustomer(form)
}

func (r *receiptUseCaseWithMetrics) ValidateBox(form returnsDomain.BoxForm) returnsDomain.ValidityReport {
	return r.next.ValidateBox(form)
}

func (r *receiptUseCaseWithMetrics) CustomerDetails(
	form returnsDomain.CustomerForm,
) (returnsDomain.CustomerDetails, error) {
	return r.next.CustomerDetails(form)
}

func (r *receiptUseCaseWithMetrics) BoxDimensions(form returnsDomain.BoxForm) (returnsDomain.BoxDimensions, error) {
	return r.next.BoxDimensions(form)
}

func (r *receiptUseCaseWithMetrics) FormatTelephone(text string) (string, bool) {
	return r.next.FormatTelephone(text)
}

func (r *receiptUseCaseWithMetrics) Tariffs() []pricingDomain.Tariff {
	return r.next.Tariffs()
}

// Quote records metrics for quote operations.
func (r *receiptUseCaseWithMetrics) Quote(
	ctx context.Context,
	box returnsDomain.BoxDimensions,
	zone pricingDomain.Zone,
) (*pricingDomain.Quote, error) {
	start := time.Now()
	quote, err := r.next.Quote(ctx, box, zone)
	r.record(ctx, "receipt_quote", start, err)
	return quote, err
}

// Finalize records metrics for receipt persistence, including the cost of
// every saved return.
func (r *receiptUseCaseWithMetrics) Finalize(
	ctx context.Context,
	customer returnsDomain.CustomerDetails,
	box returnsDomain.BoxDimensions,
) (*returnsDomain.ReceiptRecord, error) {
	start := time.Now()
	receipt, err := r.next.Finalize(ctx, customer, box)
	r.record(ctx, "receipt_finalize", start, err)
	if err == nil {
		r.metrics.RecordReturnCost(ctx, string(receipt.Island), receipt.Cost)
	}
	return receipt, err
}

// List records metrics for receipt listing.
func (r *receiptUseCaseWithMetrics) List(ctx context.Context) ([]*returnsDomain.ReceiptRecord, error) {
	start := time.Now()
	receipts, err := r.next.List(ctx)
	r.record(ctx, "receipt_list", start, err)
	return receipts, err
}
