package domain

// Accepted range for each box dimension, in centimetres.
const (
	MinDimension = 5.0
	MaxDimension = 100.0
)

// BoxForm is the raw snapshot of the box dimensions page. A nil dimension
// has not been entered yet.
type BoxForm struct {
	Height *float64
	Width  *float64
	Depth  *float64
}

// NewBoxForm returns a form with all three dimensions entered.
func NewBoxForm(height, width, depth float64) BoxForm {
	return BoxForm{Height: &height, Width: &width, Depth: &depth}
}

// BoxDimensions are validated parcel dimensions in centimetres.
type BoxDimensions struct {
	Height float64
	Width  float64
	Depth  float64
}

// Volume returns the box volume in cubic centimetres.
func (b BoxDimensions) Volume() float64 {
	return b.Height * b.Width * b.Depth
}

// Form returns the snapshot the dimensions were built from, for re-editing.
func (b BoxDimensions) Form() BoxForm {
	return NewBoxForm(b.Height, b.Width, b.Depth)
}
