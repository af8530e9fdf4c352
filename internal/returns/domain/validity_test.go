package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlinz/returns/internal/errors"
)

func TestValidityReport(t *testing.T) {
	t.Run("Success_AllValidByDefault", func(t *testing.T) {
		report := NewValidityReport(CustomerFields...)

		assert.True(t, report.Valid())
		assert.Empty(t, report.InvalidFields())
		assert.Equal(t, CustomerFields, report.Fields())
		assert.True(t, report.Result(FieldEmail).Valid)
	})

	t.Run("Success_InvalidateKeepsOrder", func(t *testing.T) {
		report := NewValidityReport(CustomerFields...)
		report.Invalidate(FieldAddress, "bad address")
		report.Invalidate(FieldFirstName, "bad name")

		assert.False(t, report.Valid())
		assert.Equal(t, []Field{FieldFirstName, FieldAddress}, report.InvalidFields())
		assert.Equal(t, "bad name", report.Result(FieldFirstName).Message)
	})

	t.Run("Success_InvalidateUnknownFieldAppends", func(t *testing.T) {
		var report ValidityReport
		report.Invalidate(FieldHeight, "required")

		assert.Equal(t, []Field{FieldHeight}, report.Fields())
		assert.False(t, report.Valid())
	})

	t.Run("Success_ResultsIsCopy", func(t *testing.T) {
		report := NewValidityReport(BoxFields...)
		results := report.Results()
		results[FieldHeight] = FieldResult{Valid: false}

		assert.True(t, report.Valid())
	})
}

func TestValidationError(t *testing.T) {
	report := NewValidityReport(BoxFields...)
	report.Invalidate(FieldWidth, "must be no less than 5")

	err := NewValidationError(report)

	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	assert.Equal(t, "invalid input: width: must be no less than 5", err.Error())

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []Field{FieldWidth}, verr.Report.InvalidFields())
}

func TestMergeReports(t *testing.T) {
	customer := NewValidityReport(CustomerFields...)
	customer.Invalidate(FieldEmail, "bad email")
	box := NewValidityReport(BoxFields...)
	box.Invalidate(FieldDepth, "cannot be blank")

	merged := MergeReports(customer, box)

	assert.Equal(t, append(append([]Field{}, CustomerFields...), BoxFields...), merged.Fields())
	assert.Equal(t, []Field{FieldEmail, FieldDepth}, merged.InvalidFields())

	err := NewValidationError(merged).(*ValidationError)
	assert.Equal(t, map[string]string{"email": "bad email", "depth": "cannot be blank"}, err.FieldErrors())
}
