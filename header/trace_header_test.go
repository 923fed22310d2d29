package header

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GiGainfosystems/giga-segy/errs"
	"github.com/GiGainfosystems/giga-segy/format"
	"github.com/GiGainfosystems/giga-segy/layout"
)

func sampleTraceHeader() *TraceHeader {
	h := NewTraceHeader3D(5200, 6400, 12, 34, -100)
	h.TraceSequenceOnLine = 1
	h.TraceSequenceInFile = 2
	h.FieldRecordNo = 3
	h.TraceNo = 4
	h.EnergySourcePointNo = 5
	h.EnsembleNo = 6
	h.TraceNoInEnsemble = 7
	h.TraceIdentificationCode = format.TraceIDTimeDomainSeismic
	h.DataUse = format.DataUseProduction
	h.SourceToReceiverDistance = -250
	h.SourceDepth = 77
	h.SourceX = 520000
	h.SourceY = 640000
	h.CoordinateUnits = format.CoordUnitLength
	h.NoSamplesInTrace = 50
	h.SampleIntervalOfTrace = 2000
	h.GainType = format.GainFixed
	h.Correlated = format.CorrelatedYes
	h.SweepType = format.SweepParabolic
	h.TaperType = format.TaperLinear
	h.YearRecorded = 2021
	h.DayOfYear = 233
	h.TimeBaseCode = format.TimeBasisGMT
	h.OverTravel = format.OverTravelUp
	h.ShotPointNo = 42
	h.TraceValueMeasurementUnit = format.UnitPascal
	h.TransductionUnits = format.UnitVolts
	h.SourceType = format.SourceImpulsiveVertical
	h.SourceMeasurementMantissa = -9
	h.SourceMeasurementExponent = 3
	h.SourceMeasurementUnit = format.SourceUnitJoule
	copy(h.TraceName[:], "SEISLINE")

	return h
}

func TestTraceHeaderRoundTrip(t *testing.T) {
	for _, le := range []bool{false, true} {
		bin := DefaultBinHeader()
		bin.LittleEndian = le
		set := layout.DefaultSettings()

		h := sampleTraceHeader()
		b, err := h.BytesWithSettings(set, bin)
		require.NoError(t, err)
		require.Len(t, b, TraceHeaderLen)

		got, err := ParseTraceHeader(b, bin, set, 0)
		require.NoError(t, err)
		require.Equal(t, h, got)
	}
}

func TestTraceHeaderLength(t *testing.T) {
	bin := DefaultBinHeader()
	_, err := ParseTraceHeader(make([]byte, 239), bin, layout.DefaultSettings(), 0)
	var le *errs.TraceHeaderLengthError
	require.ErrorAs(t, err, &le)
	require.Equal(t, 239, le.Len)
}

func TestTraceHeaderRelocatedGeometry(t *testing.T) {
	// Write with relocated inline/crossline fields, then read with the
	// same settings. Reading with defaults finds other bytes there.
	set, err := layout.NewSettings(
		layout.WithInlineByteIndex(8),
		layout.WithCrosslineByteIndex(12),
	)
	require.NoError(t, err)

	bin := DefaultBinHeader()
	h := sampleTraceHeader()
	b, err := h.BytesWithSettings(set, bin)
	require.NoError(t, err)

	got, err := ParseTraceHeader(b, bin, set, 0)
	require.NoError(t, err)
	require.Equal(t, h.InlineNo, got.InlineNo)
	require.Equal(t, h.CrosslineNo, got.CrosslineNo)
	// The inline number overwrote the field record number.
	require.Equal(t, h.InlineNo, got.FieldRecordNo)

	wrong, err := ParseTraceHeader(b, bin, layout.DefaultSettings(), 0)
	require.NoError(t, err)
	require.Zero(t, wrong.InlineNo)
	require.Zero(t, wrong.CrosslineNo)
}

func TestTraceHeaderCoordinateFormats(t *testing.T) {
	bin := DefaultBinHeader()

	t.Run("float32 coordinates", func(t *testing.T) {
		set, err := layout.NewSettings(
			layout.WithCoordinateFormatOverride(format.Float32),
		)
		require.NoError(t, err)

		h := sampleTraceHeader()
		b, err := h.BytesWithSettings(set, bin)
		require.NoError(t, err)

		got, err := ParseTraceHeader(b, bin, set, 0)
		require.NoError(t, err)
		require.Equal(t, h.SourceX, got.SourceX)
		require.Equal(t, h.XEnsemble, got.XEnsemble)
	})

	t.Run("ibm coordinates cannot be written", func(t *testing.T) {
		set, err := layout.NewSettings(
			layout.WithCoordinateFormatOverride(format.IbmFloat32),
		)
		require.NoError(t, err)

		_, err = sampleTraceHeader().BytesWithSettings(set, bin)
		require.Error(t, err)
	})

	t.Run("negative coordinate fails unsigned format", func(t *testing.T) {
		set, err := layout.NewSettings(
			layout.WithCoordinateFormatOverride(format.UInt32),
		)
		require.NoError(t, err)

		h := sampleTraceHeader()
		_, err = h.BytesWithSettings(set, bin)
		require.Error(t, err) // SourceToReceiverDistance is negative
	})
}

func TestTraceHeaderOverrides(t *testing.T) {
	bin := DefaultBinHeader()
	h := sampleTraceHeader()
	b, err := h.BytesWithSettings(layout.DefaultSettings(), bin)
	require.NoError(t, err)

	t.Run("trace id", func(t *testing.T) {
		set, err := layout.NewSettings(
			layout.WithTraceIDCodeOverride(format.TraceIDDepthDomainSeismic),
		)
		require.NoError(t, err)
		got, err := ParseTraceHeader(b, bin, set, 0)
		require.NoError(t, err)
		require.Equal(t, format.TraceIDDepthDomainSeismic, got.TraceIdentificationCode)
	})

	t.Run("coordinate scaling", func(t *testing.T) {
		set, err := layout.NewSettings(
			layout.WithCoordinateScalingOverride(-1000),
		)
		require.NoError(t, err)
		got, err := ParseTraceHeader(b, bin, set, 0)
		require.NoError(t, err)
		require.Equal(t, int16(-1000), got.CoordinateScalar)

		// The override also lands on the write path.
		b2, err := h.BytesWithSettings(set, bin)
		require.NoError(t, err)
		got2, err := ParseTraceHeader(b2, bin, layout.DefaultSettings(), 0)
		require.NoError(t, err)
		require.Equal(t, int16(-1000), got2.CoordinateScalar)
	})
}

func TestTraceHeaderOrderAndGrid(t *testing.T) {
	bin := DefaultBinHeader()

	set, err := layout.NewSettings(
		layout.WithOrderTraceBy(format.OrderTraceNo),
		layout.WithDimX(10),
	)
	require.NoError(t, err)

	h := sampleTraceHeader()
	h.TraceNo = 23
	b, err := h.BytesWithSettings(set, bin)
	require.NoError(t, err)

	// Ordinal 23 on a 10-wide grid is inline 2, crossline 3, no matter
	// what the header's geometry fields say.
	got, err := ParseTraceHeader(b, bin, set, 0)
	require.NoError(t, err)
	require.Equal(t, int32(2), got.InlineNo)
	require.Equal(t, int32(3), got.CrosslineNo)
}

func TestReadableTraceName(t *testing.T) {
	h := &TraceHeader{}
	copy(h.TraceName[:], "SLINE\x00\x00\x00")
	require.Equal(t, "SLINE", h.ReadableTraceName())

	// EBCDIC name: "LINE" is 0xD3 0xC9 0xD5 0xC5.
	h2 := &TraceHeader{TraceName: [8]byte{0xD3, 0xC9, 0xD5, 0xC5, 0, 0, 0, 0}}
	require.Equal(t, "LINE", h2.ReadableTraceName())
}
