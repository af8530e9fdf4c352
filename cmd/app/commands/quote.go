package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/onlinz/returns/internal/errors"
	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
	returnsUseCase "github.com/onlinz/returns/internal/returns/usecase"
)

// ErrUnknownIsland is returned when --island names a zone without a tariff.
var ErrUnknownIsland = errors.Wrap(errors.ErrInvalidInput, "unknown island")

// RunQuote prices a box for an island without saving anything.
func RunQuote(
	ctx context.Context,
	receiptUseCase returnsUseCase.ReceiptUseCase,
	logger *slog.Logger,
	w io.Writer,
	height, width, depth float64,
	island string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	zone := pricingDomain.Zone(island)
	if !hasZone(receiptUseCase.Tariffs(), zone) {
		return errors.Wrap(ErrUnknownIsland, island)
	}

	box, err := receiptUseCase.BoxDimensions(returnsDomain.NewBoxForm(height, width, depth))
	if err != nil {
		return err
	}

	quote, err := receiptUseCase.Quote(ctx, box, zone)
	if err != nil {
		return fmt.Errorf("failed to quote return: %w", err)
	}

	logger.Debug("quoted return",
		slog.String("island", island),
		slog.Float64("cost", quote.Cost),
	)

	if format == FormatJSON {
		return writeJSON(w, map[string]any{
			"height":     quote.Height,
			"width":      quote.Width,
			"depth":      quote.Depth,
			"volume":     returnsDomain.Round2(quote.Volume),
			"island":     string(quote.Zone),
			"base_rate":  quote.BaseRate,
			"multiplier": quote.Multiplier,
			"cost":       returnsDomain.Round2(quote.Cost),
		})
	}

	writeQuoteText(w, quote)
	return nil
}

func writeQuoteText(w io.Writer, q *pricingDomain.Quote) {
	fmt.Fprintf(w, "Box Volume: %gcmx%gcmx%gcm = %.2fcm³\n", q.Height, q.Width, q.Depth, q.Volume)
	fmt.Fprintf(w, "Island Return: %s\n", q.Zone)
	fmt.Fprintf(w, "Base rate: $%.2f x %g\n", q.BaseRate, q.Multiplier)
	fmt.Fprintf(w, "Cost of returning product: $%.2f\n", q.Cost)
}

func hasZone(tariffs []pricingDomain.Tariff, zone pricingDomain.Zone) bool {
	for _, t := range tariffs {
		if t.Zone == zone {
			return true
		}
	}
	return false
}
