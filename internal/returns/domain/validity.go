package domain

import (
	"strings"

	"github.com/onlinz/returns/internal/errors"
)

// Field names a form input.
type Field string

// Customer form fields.
const (
	FieldFirstName Field = "first_name"
	FieldLastName  Field = "last_name"
	FieldEmail     Field = "email"
	FieldTelephone Field = "telephone"
	FieldAddress   Field = "address"
	FieldIsland    Field = "island"
)

// Box form fields.
const (
	FieldHeight Field = "height"
	FieldWidth  Field = "width"
	FieldDepth  Field = "depth"
)

// CustomerFields lists the customer form fields in display order.
var CustomerFields = []Field{
	FieldFirstName, FieldLastName, FieldEmail, FieldTelephone, FieldAddress, FieldIsland,
}

// BoxFields lists the box form fields in display order.
var BoxFields = []Field{FieldHeight, FieldWidth, FieldDepth}

// FieldResult is the outcome of validating one field.
type FieldResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidityReport holds one FieldResult per field of a form snapshot. It is
// recomputed from the whole snapshot on every change.
type ValidityReport struct {
	fields  []Field
	results map[Field]FieldResult
}

// NewValidityReport returns a report in which every field is valid.
func NewValidityReport(fields ...Field) ValidityReport {
	r := ValidityReport{
		fields:  append([]Field(nil), fields...),
		results: make(map[Field]FieldResult, len(fields)),
	}
	for _, f := range fields {
		r.results[f] = FieldResult{Valid: true}
	}
	return r
}

// Invalidate marks field as invalid with message. Unknown fields are appended.
func (r *ValidityReport) Invalidate(field Field, message string) {
	if r.results == nil {
		r.results = make(map[Field]FieldResult)
	}
	if _, ok := r.results[field]; !ok {
		r.fields = append(r.fields, field)
	}
	r.results[field] = FieldResult{Valid: false, Message: message}
}

// Valid reports whether every field is valid.
func (r ValidityReport) Valid() bool {
	for _, res := range r.results {
		if !res.Valid {
			return false
		}
	}
	return true
}

// Result returns the result for field.
func (r ValidityReport) Result(field Field) FieldResult {
	return r.results[field]
}

// Fields returns the reported fields in order.
func (r ValidityReport) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

// InvalidFields returns the invalid fields in order.
func (r ValidityReport) InvalidFields() []Field {
	var out []Field
	for _, f := range r.fields {
		if !r.results[f].Valid {
			out = append(out, f)
		}
	}
	return out
}

// Results returns a copy of the per-field results.
func (r ValidityReport) Results() map[Field]FieldResult {
	out := make(map[Field]FieldResult, len(r.results))
	for f, res := range r.results {
		out[f] = res
	}
	return out
}

// MergeReports combines reports, keeping the field order of each in turn.
func MergeReports(reports ...ValidityReport) ValidityReport {
	var merged ValidityReport
	merged.results = make(map[Field]FieldResult)
	for _, r := range reports {
		for _, f := range r.fields {
			if _, seen := merged.results[f]; !seen {
				merged.fields = append(merged.fields, f)
			}
			merged.results[f] = r.results[f]
		}
	}
	return merged
}

// ValidationError carries the report of a rejected form snapshot.
type ValidationError struct {
	Report ValidityReport
}

// NewValidationError wraps report as an error matching errors.ErrInvalidInput.
func NewValidationError(report ValidityReport) error {
	return &ValidationError{Report: report}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Report.fields))
	for _, f := range e.Report.InvalidFields() {
		parts = append(parts, string(f)+": "+e.Report.results[f].Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return errors.ErrInvalidInput
}

// FieldErrors maps each invalid field to its message.
func (e *ValidationError) FieldErrors() map[string]string {
	out := make(map[string]string)
	for _, f := range e.Report.InvalidFields() {
		out[string(f)] = e.Report.results[f].Message
	}
	return out
}
