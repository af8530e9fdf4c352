package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/onlinz/returns/internal/errors"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
	returnsUseCase "github.com/onlinz/returns/internal/returns/usecase"
)

// errQuit ends the wizard without an error.
var errQuit = apperrors.New("quit")

// wizard drives a single return session over a line based terminal.
type wizard struct {
	session *returnsUseCase.Session
	useCase returnsUseCase.ReceiptUseCase
	logger  *slog.Logger
	scanner *bufio.Scanner
	w       io.Writer
}

// RunWizard walks the user through the customer details, box dimensions and
// review steps and saves the receipt on confirmation. End of input quits.
func RunWizard(
	ctx context.Context,
	receiptUseCase returnsUseCase.ReceiptUseCase,
	logger *slog.Logger,
	ioTuple IOTuple,
) error {
	wz := &wizard{
		session: returnsUseCase.NewSession(receiptUseCase),
		useCase: receiptUseCase,
		logger:  logger,
		scanner: bufio.NewScanner(ioTuple.Reader),
		w:       ioTuple.Writer,
	}

	fmt.Fprintln(wz.w, "Onlinz product returns")

	err := wz.run(ctx)
	if apperrors.Is(err, errQuit) {
		fmt.Fprintln(wz.w, "Goodbye")
		return nil
	}
	return err
}

func (wz *wizard) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch wz.session.State() {
		case returnsDomain.StateCollectingCustomer:
			err = wz.collectCustomer()
		case returnsDomain.StateCollectingBox:
			err = wz.collectBox(ctx)
		case returnsDomain.StateReviewing:
			err = wz.review(ctx)
		case returnsDomain.StateFinalized:
			err = wz.finish()
		}
		if err != nil {
			return err
		}
	}
}

func (wz *wizard) collectCustomer() error {
	fmt.Fprintln(wz.w, "\nStep 1 of 3: your details")

	form := wz.session.CustomerForm()
	prompts := []struct {
		label string
		value *string
	}{
		{"First name", &form.FirstName},
		{"Last name", &form.LastName},
		{"Email", &form.Email},
		{"Telephone", &form.Telephone},
		{"Address", &form.Address},
	}
	for _, p := range prompts {
		text, err := wz.ask(p.label, *p.value)
		if err != nil {
			return err
		}
		*p.value = text
	}

	island, err := wz.askIsland(form.Island)
	if err != nil {
		return err
	}
	form.Island = island

	report, err := wz.session.SubmitCustomer(form)
	if err != nil {
		var validationErr *returnsDomain.ValidationError
		if apperrors.As(err, &validationErr) {
			wz.printInvalid(report)
			return nil
		}
		return err
	}

	customer, _ := wz.session.Customer()
	if customer.Telephone != form.Telephone {
		fmt.Fprintf(wz.w, "Telephone saved as %s\n", customer.Telephone)
	}
	return nil
}

func (wz *wizard) askIsland(current string) (string, error) {
	tariffs := wz.useCase.Tariffs()
	for i, t := range tariffs {
		fmt.Fprintf(wz.w, "  %d) %s\n", i+1, t.Zone)
	}

	text, err := wz.ask("Island", current)
	if err != nil {
		return "", err
	}
	if n, convErr := strconv.Atoi(text); convErr == nil && n >= 1 && n <= len(tariffs) {
		return string(tariffs[n-1].Zone), nil
	}
	for _, t := range tariffs {
		if strings.EqualFold(text, string(t.Zone)) {
			return string(t.Zone), nil
		}
	}
	return text, nil
}

func (wz *wizard) collectBox(ctx context.Context) error {
	fmt.Fprintf(wz.w, "\nStep 2 of 3: box dimensions in cm (%g to %g), \"b\" to go back\n",
		returnsDomain.MinDimension, returnsDomain.MaxDimension)

	form := wz.session.BoxForm()
	prompts := []struct {
		label string
		value **float64
	}{
		{"Height", &form.Height},
		{"Width", &form.Width},
		{"Depth", &form.Depth},
	}
	for _, p := range prompts {
		v, back, err := wz.askDimension(p.label, *p.value)
		if err != nil {
			return err
		}
		if back {
			return wz.session.Back()
		}
		*p.value = v
	}

	report, err := wz.session.SubmitBox(ctx, form)
	if err != nil {
		var validationErr *returnsDomain.ValidationError
		if apperrors.As(err, &validationErr) {
			wz.printInvalid(report)
			return nil
		}
		return err
	}
	return nil
}

// askDimension re-prompts until the answer is a number, blank or "b".
func (wz *wizard) askDimension(label string, current *float64) (*float64, bool, error) {
	def := ""
	if current != nil {
		def = strconv.FormatFloat(*current, 'g', -1, 64)
	}
	for {
		text, err := wz.ask(label, def)
		if err != nil {
			return nil, false, err
		}
		if strings.EqualFold(text, "b") {
			return nil, true, nil
		}
		if text == "" {
			return nil, false, nil
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintf(wz.w, "  %s must be a number\n", label)
			continue
		}
		return &v, false, nil
	}
}

func (wz *wizard) review(ctx context.Context) error {
	customer, _ := wz.session.Customer()
	box, _ := wz.session.Box()
	quote := wz.session.Quote()

	fmt.Fprintln(wz.w, "\nStep 3 of 3: review your return")
	preview := returnsDomain.NewReceiptRecord(uuid.Nil, customer, box, quote.Cost, time.Time{})
	for _, line := range preview.Lines() {
		fmt.Fprintln(wz.w, "  "+line)
	}

	for {
		text, err := wz.ask("[c]onfirm, [b]ack or [q]uit", "")
		if err != nil {
			return err
		}
		switch strings.ToLower(text) {
		case "c", "confirm":
			return wz.confirm(ctx)
		case "b", "back":
			return wz.session.Back()
		case "q", "quit":
			return errQuit
		}
	}
}

func (wz *wizard) confirm(ctx context.Context) error {
	receipt, err := wz.session.Confirm(ctx)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUnavailable) {
			wz.logger.Error("failed to save receipt", slog.Any("error", err))
			fmt.Fprintln(wz.w, "The receipt could not be saved, please try again")
			return nil
		}
		return err
	}

	fmt.Fprintf(wz.w, "\nReturn saved, receipt %s\n", receipt.ID)
	return nil
}

func (wz *wizard) finish() error {
	text, err := wz.ask("Start another return? [y/N]", "")
	if err != nil {
		return err
	}
	if strings.EqualFold(text, "y") || strings.EqualFold(text, "yes") {
		wz.session.Reset()
		return nil
	}
	return errQuit
}

func (wz *wizard) printInvalid(report returnsDomain.ValidityReport) {
	fmt.Fprintln(wz.w, "Please correct the following:")
	for _, f := range report.InvalidFields() {
		fmt.Fprintf(wz.w, "  %s: %s\n", f, report.Result(f).Message)
	}
}

// ask prompts for one line. A blank answer keeps current. End of input quits.
func (wz *wizard) ask(label, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(wz.w, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(wz.w, "%s: ", label)
	}

	if !wz.scanner.Scan() {
		if err := wz.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		fmt.Fprintln(wz.w)
		return "", errQuit
	}

	text := strings.TrimSpace(wz.scanner.Text())
	if text == "" {
		return current, nil
	}
	return text, nil
}
