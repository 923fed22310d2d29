package header

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GiGainfosystems/giga-segy/errs"
	"github.com/GiGainfosystems/giga-segy/format"
	"github.com/GiGainfosystems/giga-segy/layout"
)

func TestBinHeaderRoundTrip(t *testing.T) {
	for _, le := range []bool{false, true} {
		h := NewBinHeader(100, 2000, 50, format.Int16)
		h.LittleEndian = le
		h.JobID = 7
		h.LineNumber = 12
		h.EnsembleFold = 3
		h.SortingCode = format.SortingCDPEnsemble
		h.SweepFrequencyStart = 10
		h.SweepFrequencyEnd = 90
		h.SweepType = format.SweepLinear
		h.TaperType = format.TaperCosineSquared
		h.MeasurementSystem = format.MeasurementMeters
		h.ExtendedHeaderCount = 2
		h.TimeBasisCode = format.TimeBasisUTC

		b := h.Bytes()
		require.Len(t, b, BinHeaderLen)

		got, err := ParseBinHeader(b, layout.DefaultSettings())
		require.NoError(t, err)
		require.Equal(t, h, got)
	}
}

func TestBinHeaderLength(t *testing.T) {
	_, err := ParseBinHeader(make([]byte, 399), layout.DefaultSettings())
	var le *errs.BinHeaderLengthError
	require.ErrorAs(t, err, &le)
	require.Equal(t, 399, le.Len)
}

func TestBinHeaderEndianDetection(t *testing.T) {
	h := DefaultBinHeader()
	h.LittleEndian = true
	h.NoSamples = 300
	b := h.Bytes()
	require.Equal(t, []byte{1, 2, 3, 4}, b[96:100])

	got, err := ParseBinHeader(b, layout.DefaultSettings())
	require.NoError(t, err)
	require.True(t, got.LittleEndian)
	require.Equal(t, uint16(300), got.NoSamples)

	// An override beats the marker: the same bytes read as big-endian
	// give a byte-swapped sample count.
	set, err := layout.NewSettings(layout.WithLittleEndianOverride(false))
	require.NoError(t, err)
	got, err = ParseBinHeader(b, set)
	require.NoError(t, err)
	require.False(t, got.LittleEndian)
	require.Equal(t, uint16(300<<8&0xffff|300>>8), got.NoSamples)
}

func TestBinHeaderHardParses(t *testing.T) {
	h := DefaultBinHeader()
	b := h.Bytes()

	// An unassigned sample format is a hard error.
	b[24], b[25] = 0, 13
	_, err := ParseBinHeader(b, layout.DefaultSettings())
	var pe *errs.ParseEnumError
	require.ErrorAs(t, err, &pe)

	// Unless the settings override it.
	set, err := layout.NewSettings(layout.WithTraceFormatOverride(format.Float32))
	require.NoError(t, err)
	got, err := ParseBinHeader(b, set)
	require.NoError(t, err)
	require.Equal(t, format.Float32, got.SampleFormatCode)

	// A bad fixed-length flag is always a hard error.
	b[24], b[25] = 0, 5
	b[302], b[303] = 0, 9
	_, err = ParseBinHeader(b, layout.DefaultSettings())
	require.ErrorAs(t, err, &pe)
}

func TestBinHeaderUnitsOverride(t *testing.T) {
	h := DefaultBinHeader()
	h.MeasurementSystem = format.MeasurementFeet
	b := h.Bytes()

	set, err := layout.NewSettings(layout.WithCoordinateUnitsOverride(format.MeasurementMeters))
	require.NoError(t, err)
	got, err := ParseBinHeader(b, set)
	require.NoError(t, err)
	require.Equal(t, format.MeasurementMeters, got.MeasurementSystem)
}

func TestAdjustSampleCount(t *testing.T) {
	h := NewBinHeader(10, 1000, 500, format.Float32)
	require.Equal(t, format.VariableLength, h.FixedLengthTraceFlag)

	set, err := layout.NewSettings(layout.WithDimZ(120))
	require.NoError(t, err)
	h.AdjustSampleCount(set)
	require.Equal(t, uint16(120), h.NoSamples)
	require.True(t, h.FixedLengthTraceFlag.Yes())

	// Without a z-dimension nothing changes.
	h2 := NewBinHeader(10, 1000, 500, format.Float32)
	h2.AdjustSampleCount(layout.DefaultSettings())
	require.Equal(t, uint16(500), h2.NoSamples)
	require.False(t, h2.FixedLengthTraceFlag.Yes())
}
