package commands

import (
	"fmt"
	"io"

	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
	returnsUseCase "github.com/onlinz/returns/internal/returns/usecase"
)

// RunValidateCustomer prints the validity of every customer field. An invalid
// form is reported and also returned as a validation error.
func RunValidateCustomer(
	receiptUseCase returnsUseCase.ReceiptUseCase,
	w io.Writer,
	form returnsDomain.CustomerForm,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	report := receiptUseCase.ValidateCustomer(form)

	if format == FormatJSON {
		fields := make(map[string]returnsDomain.FieldResult, len(report.Fields()))
		for f, res := range report.Results() {
			fields[string(f)] = res
		}
		if err := writeJSON(w, map[string]any{"valid": report.Valid(), "fields": fields}); err != nil {
			return err
		}
	} else {
		writeReportText(w, report)
	}

	if !report.Valid() {
		return returnsDomain.NewValidationError(report)
	}
	return nil
}

// writeReportText prints one line per field in form order.
func writeReportText(w io.Writer, report returnsDomain.ValidityReport) {
	for _, f := range report.Fields() {
		res := report.Result(f)
		if res.Valid {
			fmt.Fprintf(w, "  ok  %s\n", f)
			continue
		}
		fmt.Fprintf(w, "  !!  %s: %s\n", f, res.Message)
	}
}
