package commands

import (
	"context"
	"fmt"
	"io"

	returnsUseCase "github.com/onlinz/returns/internal/returns/usecase"
)

// RunListReceipts prints every saved receipt in insertion order. JSON output
// uses the same keys as the receipts file.
func RunListReceipts(
	ctx context.Context,
	receiptUseCase returnsUseCase.ReceiptUseCase,
	w io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	receipts, err := receiptUseCase.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list receipts: %w", err)
	}

	if format == FormatJSON {
		return writeJSON(w, receipts)
	}

	if len(receipts) == 0 {
		_, err := fmt.Fprintln(w, "No receipts saved yet")
		return err
	}

	for i, r := range receipts {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Receipt %s (%s)\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"))
		for _, line := range r.Lines() {
			fmt.Fprintln(w, "  "+line)
		}
	}
	return nil
}
