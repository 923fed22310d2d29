package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GiGainfosystems/giga-segy/errs"
)

func TestParseSampleFormatCode(t *testing.T) {
	valid := map[uint16]SampleFormatCode{
		1: IbmFloat32, 2: Int32, 3: Int16, 4: FixPoint32, 5: Float32,
		6: Float64, 7: Int24, 8: Int8, 9: Int64, 10: UInt32,
		11: UInt16, 12: UInt64, 15: UInt24, 16: UInt8,
	}
	for code, want := range valid {
		got, err := ParseSampleFormatCode(code)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	for _, code := range []uint16{0, 13, 14, 17, 999} {
		_, err := ParseSampleFormatCode(code)
		require.Error(t, err)
		var pe *errs.ParseEnumError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, int(code), pe.Code)
	}
}

func TestDatumByteLength(t *testing.T) {
	widths := map[SampleFormatCode]int{
		IbmFloat32: 4, Int32: 4, FixPoint32: 4, Float32: 4, UInt32: 4,
		Int16: 2, UInt16: 2,
		Int24: 3, UInt24: 3,
		Float64: 8, Int64: 8, UInt64: 8,
		Int8: 1, UInt8: 1,
	}
	for f, want := range widths {
		require.Equal(t, want, f.DatumByteLength(), f.String())
	}
}

func TestParseFixedLengthTraces(t *testing.T) {
	got, err := ParseFixedLengthTraces(0)
	require.NoError(t, err)
	require.Equal(t, VariableLength, got)
	require.False(t, got.Yes())

	got, err = ParseFixedLengthTraces(1)
	require.NoError(t, err)
	require.Equal(t, FixedLength, got)
	require.True(t, got.Yes())

	_, err = ParseFixedLengthTraces(2)
	var pe *errs.ParseEnumError
	require.ErrorAs(t, err, &pe)
}

func TestSoftCodesFallBackToInvalid(t *testing.T) {
	t.Run("unsigned codes", func(t *testing.T) {
		require.Equal(t, SweepLinear, ParseSweepTypeCode(1))
		require.Equal(t, SweepInvalid, ParseSweepTypeCode(5))
		require.Equal(t, SweepInvalid, ParseSweepTypeCode(60000))

		require.Equal(t, TaperCosineSquared, ParseTaperType(2))
		require.Equal(t, TaperInvalid, ParseTaperType(4))

		require.Equal(t, CorrelatedYes, ParseCorrelatedDataTraces(2))
		require.Equal(t, CorrelatedInvalid, ParseCorrelatedDataTraces(3))

		require.Equal(t, GainRecoveredNo, ParseBinaryGainRecovered(2))
		require.Equal(t, GainRecoveredInvalid, ParseBinaryGainRecovered(7))

		require.Equal(t, AmplitudeRecoveryAGC, ParseAmplitudeRecoveryMethod(3))
		require.Equal(t, AmplitudeRecoveryInvalid, ParseAmplitudeRecoveryMethod(5))

		require.Equal(t, MeasurementFeet, ParseMeasurementSystem(2))
		require.Equal(t, MeasurementInvalid, ParseMeasurementSystem(3))

		require.Equal(t, PolarityIncreasePressurePlus, ParseImpulseSignalPolarity(2))
		require.Equal(t, PolarityInvalid, ParseImpulseSignalPolarity(3))

		require.Equal(t, VibPolarityFrom293, ParseVibratoryPolarityCode(8))
		require.Equal(t, VibPolarityInvalid, ParseVibratoryPolarityCode(9))

		require.Equal(t, TimeBasisGPS, ParseTimeBasisCode(5))
		require.Equal(t, TimeBasisInvalid, ParseTimeBasisCode(6))

		require.Equal(t, DataUseTest, ParseDataUse(2))
		require.Equal(t, DataUseInvalid, ParseDataUse(3))

		require.Equal(t, CoordUnitDegreesMinutesSeconds, ParseCoordinateUnits(4))
		require.Equal(t, CoordUnitInvalid, ParseCoordinateUnits(5))

		require.Equal(t, GainFloatingPoint, ParseGainType(3))
		require.Equal(t, GainInvalid, ParseGainType(4))

		require.Equal(t, OverTravelDown, ParseOverTravel(2))
		require.Equal(t, OverTravelInvalid, ParseOverTravel(3))
	})

	t.Run("signed codes", func(t *testing.T) {
		require.Equal(t, SortingOther, ParseTraceSortingCode(-1))
		require.Equal(t, SortingCommonConversionPoint, ParseTraceSortingCode(9))
		require.Equal(t, SortingInvalid, ParseTraceSortingCode(10))
		require.Equal(t, SortingInvalid, ParseTraceSortingCode(-2))

		require.Equal(t, UnitOther, ParseTraceValueUnit(-1))
		require.Equal(t, UnitWatt, ParseTraceValueUnit(9))
		require.Equal(t, UnitInvalid, ParseTraceValueUnit(10))
		require.Equal(t, UnitInvalid, ParseTraceValueUnit(-5))

		require.Equal(t, SourceUnknown, ParseSourceType(0))
		require.Equal(t, SourceDistributedImpulsiveInLine, ParseSourceType(9))
		require.Equal(t, SourceInvalid, ParseSourceType(-1))
		require.Equal(t, SourceInvalid, ParseSourceType(10))

		require.Equal(t, SourceUnitOther, ParseSourceMeasurementUnit(-1))
		require.Equal(t, SourceUnitKilograms, ParseSourceMeasurementUnit(7))
		require.Equal(t, SourceUnitInvalid, ParseSourceMeasurementUnit(8))

		require.Equal(t, TraceIDOther, ParseTraceIDCode(-1))
		require.Equal(t, TraceIDRotatedSensorYaw, ParseTraceIDCode(41))
		require.Equal(t, TraceIDInvalid, ParseTraceIDCode(42))
		require.Equal(t, TraceIDInvalid, ParseTraceIDCode(-7))
	})
}

func TestStringRendering(t *testing.T) {
	require.Equal(t, "IbmFloat32", IbmFloat32.String())
	require.Equal(t, "UInt24", UInt24.String())
	require.Equal(t, "CDPEnsemble", SortingCDPEnsemble.String())
	require.Equal(t, "Invalid", SortingInvalid.String())
	require.Equal(t, "CosineSquared", TaperCosineSquared.String())
	require.Equal(t, "SphericalDivergence", AmplitudeRecoverySphericalDivergence.String())
	require.Equal(t, "From338", VibPolarityFrom338.String())
	require.Equal(t, "GreenwichGMT", TimeBasisGMT.String())
	require.Equal(t, "MetersPerSecond2", UnitMetersPerSecond2.String())
	require.Equal(t, "DistributedImpulsiveVertical", SourceDistributedImpulsiveVertical.String())
	require.Equal(t, "BarMeter", SourceUnitBarMeter.String())
	require.Equal(t, "VibratorBaseplate", TraceIDVibratorBaseplate.String())
	require.Equal(t, "Invalid", TraceIDInvalid.String())
	require.Equal(t, "Default", OrderDefault.String())
	require.Equal(t, "TraceNoInEnsemble", OrderTraceNoInEnsemble.String())
}
