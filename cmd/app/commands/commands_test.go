package commands

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/onlinz/returns/internal/database"
	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	pricingService "github.com/onlinz/returns/internal/pricing/service"
	"github.com/onlinz/returns/internal/returns/repository"
	returnsUseCase "github.com/onlinz/returns/internal/returns/usecase"
	"github.com/onlinz/returns/internal/validation"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newUseCase returns a receipt use case backed by repo.
func newUseCase(repo returnsUseCase.ReceiptRepository) returnsUseCase.ReceiptUseCase {
	return returnsUseCase.NewReceiptUseCase(
		database.NewNopTxManager(),
		repo,
		validation.NewFieldValidator(nil),
		pricingService.NewEngine(pricingDomain.DefaultTariffTable()),
		"NZ",
	)
}

// newFileUseCase returns a receipt use case writing to a temporary receipts file.
func newFileUseCase(t *testing.T) (returnsUseCase.ReceiptUseCase, *repository.FileReceiptRepository) {
	t.Helper()
	repo := repository.NewFileReceiptRepository(filepath.Join(t.TempDir(), "receipts.json"))
	return newUseCase(repo), repo
}
