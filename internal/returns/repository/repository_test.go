package repository

import (
	"time"

	"github.com/google/uuid"

	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

var receiptColumns = []string{
	"id", "name", "email", "telephone", "address", "island_return",
	"box_height", "box_width", "box_depth", "box_volume", "cost", "created_at",
}

func newTestReceipt(name string, cost float64) *returnsDomain.ReceiptRecord {
	return &returnsDomain.ReceiptRecord{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		Email:     "aroha@example.com",
		Telephone: "021 234 567",
		Address:   "12 Queen Street, Auckland 1010",
		Island:    pricingDomain.SouthIsland,
		Height:    10,
		Width:     10,
		Depth:     10,
		Volume:    1000,
		Cost:      cost,
		CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}
