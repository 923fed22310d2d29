package encoding

import (
	"math"

	"github.com/GiGainfosystems/giga-segy/errs"
)

// CoordinateScalar converts between a plain multiplier and the signed
// 16-bit scalar that SEG-Y trace headers store at bytes 70..72.
//
// Coordinates are stored as int32 by default, so decimal positions need a
// scalar to survive. A multiplier of 0.01 becomes the scalar -100, a
// multiplier of 100 becomes the scalar 100, and a multiplier of 1 becomes 0.
type CoordinateScalar struct {
	multiplier float64
	scalar     int16
}

// ScalarFromMultiplier builds a scalar from a multiplier. The multiplier
// must be non-negative and must reduce to a scalar in the int16 range.
func ScalarFromMultiplier(multiplier float64) (CoordinateScalar, error) {
	if multiplier < 0 || math.IsNaN(multiplier) {
		return CoordinateScalar{}, errs.Conversionf("coordinate multiplier %v must be non-negative", multiplier)
	}

	var raw float64
	switch {
	case multiplier > 1:
		raw = multiplier
	case multiplier < 1:
		raw = -1.0 / multiplier
	default:
		return CoordinateScalar{multiplier: 1, scalar: 0}, nil
	}

	t := math.Trunc(raw)
	if t < math.MinInt16 || t > math.MaxInt16 {
		return CoordinateScalar{}, errs.Conversionf("coordinate multiplier %v does not fit an int16 scalar", multiplier)
	}

	return CoordinateScalar{multiplier: multiplier, scalar: int16(t)}, nil
}

// Multiplier returns the original multiplier.
func (s CoordinateScalar) Multiplier() float64 {
	return s.multiplier
}

// WriteableScalar returns the int16 value to store in a trace header.
func (s CoordinateScalar) WriteableScalar() int16 {
	return s.scalar
}

// Scale divides a value by the multiplier, producing what would be stored
// on disk.
func (s CoordinateScalar) Scale(x float64) float64 {
	return x / s.multiplier
}

// ScaleToInt32 scales a value and truncates it to int32 for direct storage.
func (s CoordinateScalar) ScaleToInt32(x float64) (int32, error) {
	t := math.Trunc(x / s.multiplier)
	if math.IsNaN(t) || t < math.MinInt32 || t > math.MaxInt32 {
		return 0, errs.Conversionf("scaled coordinate %v does not fit an int32", x)
	}

	return int32(t), nil
}
