package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
)

// ReceiptRecord is the persisted summary of a finalised return. The JSON keys
// are the receipt store's stable format.
type ReceiptRecord struct {
	ID        uuid.UUID          `json:"ID"`
	Name      string             `json:"Name"`
	Email     string             `json:"Email"`
	Telephone string             `json:"Telephone"`
	Address   string             `json:"Address"`
	Island    pricingDomain.Zone `json:"Island Return"`
	Height    float64            `json:"Box Height"`
	Width     float64            `json:"Box Width"`
	Depth     float64            `json:"Box Depth"`
	Volume    float64            `json:"Box Volume"`
	Cost      float64            `json:"Cost of returning product"`
	CreatedAt time.Time          `json:"Created At"`
}

// NewReceiptRecord builds the record for a confirmed return. Volume and cost
// are rounded to two decimals.
func NewReceiptRecord(
	id uuid.UUID,
	customer CustomerDetails,
	box BoxDimensions,
	cost float64,
	createdAt time.Time,
) *ReceiptRecord {
	return &ReceiptRecord{
		ID:        id,
		Name:      customer.FullName(),
		Email:     customer.Email,
		Telephone: customer.Telephone,
		Address:   customer.Address,
		Island:    customer.Island,
		Height:    box.Height,
		Width:     box.Width,
		Depth:     box.Depth,
		Volume:    Round2(box.Volume()),
		Cost:      Round2(cost),
		CreatedAt: createdAt,
	}
}

// Lines renders the record for display, one "Label: value" per line.
func (r *ReceiptRecord) Lines() []string {
	return []string{
		"Name: " + r.Name,
		"Email: " + r.Email,
		"Telephone: " + r.Telephone,
		"Address: " + r.Address,
		"Island Return: " + string(r.Island),
		fmt.Sprintf("Box Volume: %scmx%scmx%scm = %.2fcm³",
			formatDimension(r.Height), formatDimension(r.Width), formatDimension(r.Depth), r.Volume),
		fmt.Sprintf("Cost of returning product: $%.2f", r.Cost),
	}
}

// Round2 rounds v half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatDimension(v float64) string {
	return fmt.Sprintf("%g", v)
}
