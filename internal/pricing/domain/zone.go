// Package domain defines the pricing model for product returns: destination
// zones, their tariff multipliers and the volume based base rate tiers.
package domain

import (
	"fmt"

	"github.com/onlinz/returns/internal/errors"
)

// Zone is a shipping destination that scales the return cost.
type Zone string

const (
	// NorthIsland is the cheapest destination (multiplier 1.0).
	NorthIsland Zone = "North Island"

	// SouthIsland costs half as much again as the North Island (multiplier 1.5).
	SouthIsland Zone = "South Island"

	// StewartIsland costs double the North Island rate (multiplier 2.0).
	StewartIsland Zone = "Stewart Island"
)

// ErrInvalidZone is returned when pricing is requested for a zone that is not
// in the engine's tariff table.
//
// Callers only ever offer zones taken from the table, so this is a programming
// error rather than bad user input and it deliberately does not wrap
// errors.ErrInvalidInput.
//
// HTTP Status: 500 Internal Server Error
var ErrInvalidZone = errors.New("invalid zone")

// ErrDuplicateZone is returned when a tariff table lists a zone twice.
var ErrDuplicateZone = errors.New("duplicate zone")

// ErrInvalidMultiplier is returned when a tariff multiplier is not positive.
var ErrInvalidMultiplier = errors.New("invalid multiplier")

// Tariff pairs a zone with its cost multiplier.
type Tariff struct {
	Zone       Zone
	Multiplier float64
}

// TariffTable is an immutable, ordered zone → multiplier lookup.
//
// The zero value is an empty table. Construct tables with NewTariffTable or
// DefaultTariffTable; the constructor copies its input and every accessor
// returns copies, so a table can be shared freely.
type TariffTable struct {
	tariffs     []Tariff
	multipliers map[Zone]float64
}

// NewTariffTable builds a table from tariffs, keeping their order.
func NewTariffTable(tariffs ...Tariff) (TariffTable, error) {
	t := TariffTable{
		tariffs:     make([]Tariff, 0, len(tariffs)),
		multipliers: make(map[Zone]float64, len(tariffs)),
	}
	for _, tariff := range tariffs {
		if _, exists := t.multipliers[tariff.Zone]; exists {
			return TariffTable{}, errors.Wrap(ErrDuplicateZone, string(tariff.Zone))
		}
		if tariff.Multiplier <= 0 {
			return TariffTable{}, errors.Wrap(
				ErrInvalidMultiplier,
				fmt.Sprintf("%s: %v", tariff.Zone, tariff.Multiplier),
			)
		}
		t.tariffs = append(t.tariffs, tariff)
		t.multipliers[tariff.Zone] = tariff.Multiplier
	}
	return t, nil
}

// DefaultTariffTable returns the standard North/South/Stewart Island table.
func DefaultTariffTable() TariffTable {
	t, err := NewTariffTable(
		Tariff{Zone: NorthIsland, Multiplier: 1.0},
		Tariff{Zone: SouthIsland, Multiplier: 1.5},
		Tariff{Zone: StewartIsland, Multiplier: 2.0},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Multiplier returns the multiplier for zone and whether the zone is known.
func (t TariffTable) Multiplier(zone Zone) (float64, bool) {
	m, ok := t.multipliers[zone]
	return m, ok
}

// Has reports whether zone is in the table.
func (t TariffTable) Has(zone Zone) bool {
	_, ok := t.multipliers[zone]
	return ok
}

// Zones returns the zones in table order.
func (t TariffTable) Zones() []Zone {
	zones := make([]Zone, len(t.tariffs))
	for i, tariff := range t.tariffs {
		zones[i] = tariff.Zone
	}
	return zones
}

// Tariffs returns a copy of the table entries in order.
func (t TariffTable) Tariffs() []Tariff {
	out := make([]Tariff, len(t.tariffs))
	copy(out, t.tariffs)
	return out
}
