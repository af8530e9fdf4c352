package domain

// Base rate tiers, by parcel volume in cubic centimetres.
const (
	// SmallParcelMaxVolume is the largest volume (inclusive) charged SmallParcelRate.
	SmallParcelMaxVolume = 6000.0
	// LargeParcelMinVolume is the smallest volume (inclusive) charged LargeParcelRate.
	LargeParcelMinVolume = 100000.0

	SmallParcelRate  = 8.0
	MediumParcelRate = 12.0
	LargeParcelRate  = 15.0
)

// BaseRate returns the tiered base rate for a parcel volume.
func BaseRate(volume float64) float64 {
	switch {
	case volume <= SmallParcelMaxVolume:
		return SmallParcelRate
	case volume < LargeParcelMinVolume:
		return MediumParcelRate
	default:
		return LargeParcelRate
	}
}

// Quote is the full breakdown of a return cost.
type Quote struct {
	Height     float64
	Width      float64
	Depth      float64
	Volume     float64
	Zone       Zone
	BaseRate   float64
	Multiplier float64
	Cost       float64
}
