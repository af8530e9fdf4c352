package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

func TestMapReportToResponse(t *testing.T) {
	report := returnsDomain.NewValidityReport(returnsDomain.BoxFields...)
	report.Invalidate(returnsDomain.FieldWidth, "cannot be blank")

	response := MapReportToResponse(report)

	assert.False(t, response.Valid)
	assert.Len(t, response.Fields, 3)
	assert.Equal(t, returnsDomain.FieldResult{Valid: false, Message: "cannot be blank"}, response.Fields["width"])
	assert.True(t, response.Fields["height"].Valid)
}

func TestMapQuoteToResponse(t *testing.T) {
	quote := &pricingDomain.Quote{
		Height:     10.5,
		Width:      10.5,
		Depth:      10.5,
		Volume:     1157.625,
		Zone:       pricingDomain.SouthIsland,
		BaseRate:   8,
		Multiplier: 1.5,
		Cost:       12,
	}

	response := MapQuoteToResponse(quote)

	assert.Equal(t, 1157.63, response.Volume)
	assert.Equal(t, "South Island", response.Island)
	assert.Equal(t, 12.0, response.Cost)
}

func TestMapReceiptsToListResponse(t *testing.T) {
	receipt := &returnsDomain.ReceiptRecord{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "Aroha Ngata",
		Island:    pricingDomain.NorthIsland,
		Height:    10,
		Width:     20,
		Depth:     30,
		Volume:    6000,
		Cost:      8,
		CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}

	response := MapReceiptsToListResponse([]*returnsDomain.ReceiptRecord{receipt}, 7, 0, 1)

	require.Len(t, response.Data, 1)
	assert.Equal(t, 7, response.Total)
	assert.Equal(t, receipt.ID.String(), response.Data[0].ID)
	assert.Equal(t, receipt.Lines(), response.Data[0].Lines)

	empty := MapReceiptsToListResponse(nil, 0, 0, 50)
	assert.NotNil(t, empty.Data)
	assert.Empty(t, empty.Data)
}
