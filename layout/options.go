package layout

import (
	"github.com/GiGainfosystems/giga-segy/format"
	"github.com/GiGainfosystems/giga-segy/internal/options"
)

// WithInlineByteIndex relocates the inline number field.
func WithInlineByteIndex(bidx int) Option {
	return options.New(func(s *Settings) error {
		return s.SetInlineByteIndex(bidx)
	})
}

// WithCrosslineByteIndex relocates the crossline number field.
func WithCrosslineByteIndex(bidx int) Option {
	return options.New(func(s *Settings) error {
		return s.SetCrosslineByteIndex(bidx)
	})
}

// WithXEnsembleByteIndex relocates the x-ensemble field.
func WithXEnsembleByteIndex(bidx int) Option {
	return options.New(func(s *Settings) error {
		return s.SetXEnsembleByteIndex(bidx)
	})
}

// WithYEnsembleByteIndex relocates the y-ensemble field.
func WithYEnsembleByteIndex(bidx int) Option {
	return options.New(func(s *Settings) error {
		return s.SetYEnsembleByteIndex(bidx)
	})
}

// WithOrderTraceBy selects the trace ordering field.
func WithOrderTraceBy(order format.OrderTraceBy) Option {
	return options.NoError(func(s *Settings) {
		s.SetOrderTraceBy(order)
	})
}

// WithStepBy sets the sample stride for data reads.
func WithStepBy(step int) Option {
	return options.New(func(s *Settings) error {
		return s.SetStepBy(step)
	})
}

// WithLittleEndianOverride fixes the byte order instead of trusting the
// binary header marker.
func WithLittleEndianOverride(le bool) Option {
	return options.NoError(func(s *Settings) {
		s.SetLittleEndianOverride(le)
	})
}

// WithTraceFormatOverride replaces the declared sample format.
func WithTraceFormatOverride(f format.SampleFormatCode) Option {
	return options.NoError(func(s *Settings) {
		s.SetTraceFormatOverride(f)
	})
}

// WithCoordinateFormatOverride replaces the coordinate field format.
func WithCoordinateFormatOverride(f format.SampleFormatCode) Option {
	return options.New(func(s *Settings) error {
		return s.SetCoordinateFormatOverride(f)
	})
}

// WithTraceIDCodeOverride replaces the trace identification code.
func WithTraceIDCodeOverride(c format.TraceIDCode) Option {
	return options.NoError(func(s *Settings) {
		s.SetTraceIDCodeOverride(c)
	})
}

// WithCoordinateUnitsOverride replaces the declared measurement system.
func WithCoordinateUnitsOverride(m format.MeasurementSystem) Option {
	return options.NoError(func(s *Settings) {
		s.SetCoordinateUnitsOverride(m)
	})
}

// WithCoordinateScalingOverride replaces the coordinate scalar of every
// trace header.
func WithCoordinateScalingOverride(scaling float64) Option {
	return options.New(func(s *Settings) error {
		return s.SetCoordinateScalingOverride(scaling)
	})
}

// WithInlineBounds drops traces with inline numbers outside [min, max].
func WithInlineBounds(min, max int32) Option {
	return options.NoError(func(s *Settings) {
		s.SetInlineBounds(min, max)
	})
}

// WithCrosslineBounds drops traces with crossline numbers outside
// [min, max].
func WithCrosslineBounds(min, max int32) Option {
	return options.NoError(func(s *Settings) {
		s.SetCrosslineBounds(min, max)
	})
}

// WithDimX sets the crossline count of the grid.
func WithDimX(dimX int32) Option {
	return options.New(func(s *Settings) error {
		return s.SetDimX(dimX)
	})
}

// WithDimY sets the inline count of the grid.
func WithDimY(dimY int32) Option {
	return options.New(func(s *Settings) error {
		return s.SetDimY(dimY)
	})
}

// WithDimZ sets the sample count per trace.
func WithDimZ(dimZ int32) Option {
	return options.New(func(s *Settings) error {
		return s.SetDimZ(dimZ)
	})
}
