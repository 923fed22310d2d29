// Package layout describes where a SEG-Y file keeps its geometry fields and
// how its traces should be interpreted.
//
// The defaults follow the SEG-Y standard byte layout. Real-world files
// frequently relocate the inline, crossline and ensemble coordinate fields
// or lie about their sample format, so every one of those can be overridden
// here. Settings are built once with NewSettings and passed to both the
// reading and the writing session.
package layout

import (
	"math"

	"github.com/GiGainfosystems/giga-segy/errs"
	"github.com/GiGainfosystems/giga-segy/format"
	"github.com/GiGainfosystems/giga-segy/internal/options"
)

// Default byte indices of the geometry fields in a 240-byte trace header.
// Zero-indexed, unlike the tables in the SEG-Y standard.
const (
	DefaultInlineByteIndex    = 188
	DefaultCrosslineByteIndex = 192
	DefaultXEnsembleByteIndex = 180
	DefaultYEnsembleByteIndex = 184
)

// maxFieldByteIndex is the last byte index a 4-byte field can start at
// inside a 240-byte trace header.
const maxFieldByteIndex = 236

// Settings carries the layout overrides for one file.
type Settings struct {
	inlineByteIndex    int
	crosslineByteIndex int
	xEnsembleByteIndex int
	yEnsembleByteIndex int

	orderTraceBy format.OrderTraceBy
	stepBy       int

	overrideToLE              *bool
	overrideTraceFormat       *format.SampleFormatCode
	overrideCoordinateFormat  *format.SampleFormatCode
	overrideTraceIDCode       *format.TraceIDCode
	overrideCoordinateUnits   *format.MeasurementSystem
	overrideCoordinateScaling *int16

	inlineMinMax    *[2]int32
	crosslineMinMax *[2]int32

	overrideDimX *int32
	overrideDimY *int32
	overrideDimZ *int32
}

// Option configures a Settings during construction.
type Option = options.Option[*Settings]

// NewSettings builds a Settings with standard-layout defaults and applies
// the given options. The first failing option aborts construction.
func NewSettings(opts ...Option) (*Settings, error) {
	s := &Settings{
		inlineByteIndex:    DefaultInlineByteIndex,
		crosslineByteIndex: DefaultCrosslineByteIndex,
		xEnsembleByteIndex: DefaultXEnsembleByteIndex,
		yEnsembleByteIndex: DefaultYEnsembleByteIndex,
		orderTraceBy:       format.OrderDefault,
		stepBy:             1,
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// DefaultSettings builds a Settings with standard-layout defaults.
func DefaultSettings() *Settings {
	s, _ := NewSettings()
	return s
}

func (s *Settings) setByteIndex(target *int, bidx int) error {
	if bidx < 0 || bidx > maxFieldByteIndex {
		return errs.Settingsf("byte index %d is outside the trace header", bidx)
	}
	*target = bidx

	return nil
}

// SetInlineByteIndex relocates the 4-byte inline number field.
func (s *Settings) SetInlineByteIndex(bidx int) error {
	return s.setByteIndex(&s.inlineByteIndex, bidx)
}

// SetCrosslineByteIndex relocates the 4-byte crossline number field.
func (s *Settings) SetCrosslineByteIndex(bidx int) error {
	return s.setByteIndex(&s.crosslineByteIndex, bidx)
}

// SetXEnsembleByteIndex relocates the 4-byte x-ensemble (CDP-X) field.
func (s *Settings) SetXEnsembleByteIndex(bidx int) error {
	return s.setByteIndex(&s.xEnsembleByteIndex, bidx)
}

// SetYEnsembleByteIndex relocates the 4-byte y-ensemble (CDP-Y) field.
func (s *Settings) SetYEnsembleByteIndex(bidx int) error {
	return s.setByteIndex(&s.yEnsembleByteIndex, bidx)
}

func (s *Settings) InlineByteIndex() int    { return s.inlineByteIndex }
func (s *Settings) CrosslineByteIndex() int { return s.crosslineByteIndex }
func (s *Settings) XEnsembleByteIndex() int { return s.xEnsembleByteIndex }
func (s *Settings) YEnsembleByteIndex() int { return s.yEnsembleByteIndex }

// SetOrderTraceBy selects which header field supplies the ordinal position
// of traces during indexing.
func (s *Settings) SetOrderTraceBy(order format.OrderTraceBy) {
	s.orderTraceBy = order
}

func (s *Settings) OrderTraceBy() format.OrderTraceBy { return s.orderTraceBy }

// SetStepBy sets the sample stride for data reads. A stride of n keeps
// every n-th datum.
func (s *Settings) SetStepBy(step int) error {
	if step < 1 {
		return errs.Settingsf("step-by must be positive, got %d", step)
	}
	s.stepBy = step

	return nil
}

func (s *Settings) StepBy() int { return s.stepBy }

// SetLittleEndianOverride fixes the byte order instead of trusting the
// binary header marker.
func (s *Settings) SetLittleEndianOverride(le bool) {
	s.overrideToLE = &le
}

func (s *Settings) LittleEndianOverride() (bool, bool) {
	if s.overrideToLE == nil {
		return false, false
	}
	return *s.overrideToLE, true
}

// SetTraceFormatOverride replaces the sample format declared in the binary
// header.
func (s *Settings) SetTraceFormatOverride(f format.SampleFormatCode) {
	s.overrideTraceFormat = &f
}

func (s *Settings) TraceFormatOverride() (format.SampleFormatCode, bool) {
	if s.overrideTraceFormat == nil {
		return 0, false
	}
	return *s.overrideTraceFormat, true
}

// SetCoordinateFormatOverride replaces the format of the eight coordinate
// fields of the trace header. Coordinate fields are 4 bytes wide, so only
// 4-byte formats are accepted.
func (s *Settings) SetCoordinateFormatOverride(f format.SampleFormatCode) error {
	switch f {
	case format.IbmFloat32, format.Float32, format.UInt32, format.Int32:
		s.overrideCoordinateFormat = &f
		return nil
	default:
		return errs.Conversionf("coordinate format must be 4-byte, %s is not", f)
	}
}

func (s *Settings) CoordinateFormatOverride() (format.SampleFormatCode, bool) {
	if s.overrideCoordinateFormat == nil {
		return 0, false
	}
	return *s.overrideCoordinateFormat, true
}

// SetTraceIDCodeOverride replaces the trace identification code of every
// parsed trace header.
func (s *Settings) SetTraceIDCodeOverride(c format.TraceIDCode) {
	s.overrideTraceIDCode = &c
}

func (s *Settings) TraceIDCodeOverride() (format.TraceIDCode, bool) {
	if s.overrideTraceIDCode == nil {
		return 0, false
	}
	return *s.overrideTraceIDCode, true
}

// SetCoordinateUnitsOverride replaces the measurement system declared in
// the binary header.
func (s *Settings) SetCoordinateUnitsOverride(m format.MeasurementSystem) {
	s.overrideCoordinateUnits = &m
}

func (s *Settings) CoordinateUnitsOverride() (format.MeasurementSystem, bool) {
	if s.overrideCoordinateUnits == nil {
		return 0, false
	}
	return *s.overrideCoordinateUnits, true
}

// SetCoordinateScalingOverride replaces the coordinate scalar of every
// trace header. The value must already be in SEG-Y scalar form and fit an
// int16.
func (s *Settings) SetCoordinateScalingOverride(scaling float64) error {
	t := math.Trunc(scaling)
	if math.IsNaN(t) || t < math.MinInt16 || t > math.MaxInt16 {
		return errs.Conversionf("%v is outside of the scaling range", scaling)
	}
	v := int16(t)
	s.overrideCoordinateScaling = &v

	return nil
}

func (s *Settings) CoordinateScalingOverride() (int16, bool) {
	if s.overrideCoordinateScaling == nil {
		return 0, false
	}
	return *s.overrideCoordinateScaling, true
}

// SetInlineBounds sets the inclusive inline range outside of which traces
// are dropped during indexing.
func (s *Settings) SetInlineBounds(min, max int32) {
	s.inlineMinMax = &[2]int32{min, max}
}

func (s *Settings) InlineBounds() ([2]int32, bool) {
	if s.inlineMinMax == nil {
		return [2]int32{}, false
	}
	return *s.inlineMinMax, true
}

// SetCrosslineBounds sets the inclusive crossline range outside of which
// traces are dropped during indexing.
func (s *Settings) SetCrosslineBounds(min, max int32) {
	s.crosslineMinMax = &[2]int32{min, max}
}

func (s *Settings) CrosslineBounds() ([2]int32, bool) {
	if s.crosslineMinMax == nil {
		return [2]int32{}, false
	}
	return *s.crosslineMinMax, true
}

// SetDimX sets the crossline count of the grid. The crossline bounds are
// reset to [0, dimX-1]; callers that know the real range should set it
// afterwards.
func (s *Settings) SetDimX(dimX int32) error {
	if dimX < 0 {
		return errs.Settingsf("grid x-dimension must be non-negative, got %d", dimX)
	}
	s.overrideDimX = &dimX
	s.crosslineMinMax = &[2]int32{0, dimX - 1}

	return nil
}

// SetDimY sets the inline count of the grid. The inline bounds are reset
// to [0, dimY-1]; callers that know the real range should set it afterwards.
func (s *Settings) SetDimY(dimY int32) error {
	if dimY < 0 {
		return errs.Settingsf("grid y-dimension must be non-negative, got %d", dimY)
	}
	s.overrideDimY = &dimY
	s.inlineMinMax = &[2]int32{0, dimY - 1}

	return nil
}

// SetDimZ sets the sample count per trace, truncating or padding the
// apparent trace length during indexing.
func (s *Settings) SetDimZ(dimZ int32) error {
	if dimZ < 0 {
		return errs.Settingsf("grid z-dimension must be non-negative, got %d", dimZ)
	}
	s.overrideDimZ = &dimZ

	return nil
}

func (s *Settings) DimX() (int32, bool) {
	if s.overrideDimX == nil {
		return 0, false
	}
	return *s.overrideDimX, true
}

func (s *Settings) DimY() (int32, bool) {
	if s.overrideDimY == nil {
		return 0, false
	}
	return *s.overrideDimY, true
}

func (s *Settings) DimZ() (int32, bool) {
	if s.overrideDimZ == nil {
		return 0, false
	}
	return *s.overrideDimZ, true
}

// TraceInBounds reports whether a trace with the given geometry passes the
// bounds filters. An axis with no bounds set always passes.
func (s *Settings) TraceInBounds(inline, crossline int32) bool {
	if b := s.inlineMinMax; b != nil && (inline < b[0] || inline > b[1]) {
		return false
	}
	if b := s.crosslineMinMax; b != nil && (crossline < b[0] || crossline > b[1]) {
		return false
	}

	return true
}

// MaxTraceCount is the trace capacity of the grid. Without both x and y
// dimensions the count is unbounded.
func (s *Settings) MaxTraceCount() int {
	if s.overrideDimX != nil && s.overrideDimY != nil {
		return int(*s.overrideDimX) * int(*s.overrideDimY)
	}

	return math.MaxInt
}

// MaxTraceLength is the sample capacity of one trace, if a z-dimension
// was set.
func (s *Settings) MaxTraceLength() (int, bool) {
	if s.overrideDimZ == nil {
		return 0, false
	}

	return int(*s.overrideDimZ), true
}
