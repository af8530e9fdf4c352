package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/onlinz/returns/internal/validation"
)

// RunFormatPhone prints telephone in the national format of region. Numbers
// that cannot be parsed are printed unchanged.
func RunFormatPhone(w io.Writer, telephone, region, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if strings.TrimSpace(telephone) == "" {
		return fmt.Errorf("telephone must not be blank")
	}

	formatted, changed := validation.FormatPhoneNational(telephone, region)

	if format == FormatJSON {
		return writeJSON(w, map[string]any{
			"telephone": formatted,
			"changed":   changed,
			"valid":     validation.IsPhone(telephone, region),
		})
	}

	_, err := fmt.Fprintln(w, formatted)
	return err
}
