// Package service provides the return pricing engine.
package service

import (
	"github.com/onlinz/returns/internal/errors"
	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
)

// Engine computes return costs from box geometry and a destination zone.
// It is pure: the tariff table is fixed at construction.
type Engine struct {
	tariffs pricingDomain.TariffTable
}

// NewEngine creates an Engine that prices zones from tariffs.
func NewEngine(tariffs pricingDomain.TariffTable) *Engine {
	return &Engine{tariffs: tariffs}
}

// BaseRate returns the tiered base rate for volume.
func (e *Engine) BaseRate(volume float64) float64 {
	return pricingDomain.BaseRate(volume)
}

// ZoneMultiplier returns the multiplier for zone, or ErrInvalidZone.
func (e *Engine) ZoneMultiplier(zone pricingDomain.Zone) (float64, error) {
	m, ok := e.tariffs.Multiplier(zone)
	if !ok {
		return 0, errors.Wrap(pricingDomain.ErrInvalidZone, string(zone))
	}
	return m, nil
}

// ReturnCost returns BaseRate(h*w*d) * ZoneMultiplier(zone), unrounded.
func (e *Engine) ReturnCost(height, width, depth float64, zone pricingDomain.Zone) (float64, error) {
	q, err := e.Quote(height, width, depth, zone)
	if err != nil {
		return 0, err
	}
	return q.Cost, nil
}

// Quote returns the cost together with the values it was derived from.
func (e *Engine) Quote(height, width, depth float64, zone pricingDomain.Zone) (*pricingDomain.Quote, error) {
	multiplier, err := e.ZoneMultiplier(zone)
	if err != nil {
		return nil, err
	}

	volume := height * width * depth
	rate := e.BaseRate(volume)

	return &pricingDomain.Quote{
		Height:     height,
		Width:      width,
		Depth:      depth,
		Volume:     volume,
		Zone:       zone,
		BaseRate:   rate,
		Multiplier: multiplier,
		Cost:       rate * multiplier,
	}, nil
}

// Supports reports whether zone can be priced.
func (e *Engine) Supports(zone pricingDomain.Zone) bool {
	return e.tariffs.Has(zone)
}

// Zones returns the priced zones in tariff table order.
func (e *Engine) Zones() []pricingDomain.Zone {
	return e.tariffs.Zones()
}

// Tariffs returns the tariff table entries in order.
func (e *Engine) Tariffs() []pricingDomain.Tariff {
	return e.tariffs.Tariffs()
}
