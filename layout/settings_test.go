package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GiGainfosystems/giga-segy/format"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	require.Equal(t, 188, s.InlineByteIndex())
	require.Equal(t, 192, s.CrosslineByteIndex())
	require.Equal(t, 180, s.XEnsembleByteIndex())
	require.Equal(t, 184, s.YEnsembleByteIndex())
	require.Equal(t, format.OrderDefault, s.OrderTraceBy())
	require.Equal(t, 1, s.StepBy())

	_, ok := s.LittleEndianOverride()
	require.False(t, ok)
	_, ok = s.TraceFormatOverride()
	require.False(t, ok)
	_, ok = s.CoordinateFormatOverride()
	require.False(t, ok)
	_, ok = s.CoordinateScalingOverride()
	require.False(t, ok)
	_, ok = s.InlineBounds()
	require.False(t, ok)
	_, ok = s.CrosslineBounds()
	require.False(t, ok)

	require.Equal(t, math.MaxInt, s.MaxTraceCount())
	_, ok = s.MaxTraceLength()
	require.False(t, ok)
}

func TestByteIndexBounds(t *testing.T) {
	s := DefaultSettings()

	require.NoError(t, s.SetInlineByteIndex(236))
	require.Equal(t, 236, s.InlineByteIndex())

	require.Error(t, s.SetInlineByteIndex(237))
	require.Error(t, s.SetCrosslineByteIndex(-1))
	require.Error(t, s.SetXEnsembleByteIndex(240))
	require.NoError(t, s.SetYEnsembleByteIndex(0))
}

func TestCoordinateFormatOverride(t *testing.T) {
	s := DefaultSettings()

	for _, f := range []format.SampleFormatCode{
		format.IbmFloat32, format.Float32, format.UInt32, format.Int32,
	} {
		require.NoError(t, s.SetCoordinateFormatOverride(f))
		got, ok := s.CoordinateFormatOverride()
		require.True(t, ok)
		require.Equal(t, f, got)
	}

	require.Error(t, s.SetCoordinateFormatOverride(format.UInt64))
	require.Error(t, s.SetCoordinateFormatOverride(format.Int16))
}

func TestCoordinateScalingOverride(t *testing.T) {
	s := DefaultSettings()

	require.NoError(t, s.SetCoordinateScalingOverride(-100.0))
	got, ok := s.CoordinateScalingOverride()
	require.True(t, ok)
	require.Equal(t, int16(-100), got)

	require.Error(t, s.SetCoordinateScalingOverride(math.MaxInt16+1))
	require.Error(t, s.SetCoordinateScalingOverride(math.NaN()))
}

func TestDimOverrides(t *testing.T) {
	s := DefaultSettings()

	require.Error(t, s.SetDimX(-1))
	require.Error(t, s.SetDimY(-1))
	require.Error(t, s.SetDimZ(-1))

	// dim-x constrains the crossline axis and dim-y the inline axis.
	require.NoError(t, s.SetDimX(50))
	xl, ok := s.CrosslineBounds()
	require.True(t, ok)
	require.Equal(t, [2]int32{0, 49}, xl)
	_, ok = s.InlineBounds()
	require.False(t, ok)

	require.NoError(t, s.SetDimY(20))
	il, ok := s.InlineBounds()
	require.True(t, ok)
	require.Equal(t, [2]int32{0, 19}, il)

	require.Equal(t, 1000, s.MaxTraceCount())

	require.NoError(t, s.SetDimZ(300))
	n, ok := s.MaxTraceLength()
	require.True(t, ok)
	require.Equal(t, 300, n)
}

func TestTraceInBounds(t *testing.T) {
	s := DefaultSettings()
	require.True(t, s.TraceInBounds(99999, -99999))

	s.SetInlineBounds(50, 2000)
	require.False(t, s.TraceInBounds(99999, -99999))
	require.True(t, s.TraceInBounds(50, -99999))
	require.True(t, s.TraceInBounds(2000, 0))
	require.False(t, s.TraceInBounds(49, 0))

	s.SetCrosslineBounds(50, 2000)
	require.False(t, s.TraceInBounds(50, 49))
	require.True(t, s.TraceInBounds(50, 50))
	require.True(t, s.TraceInBounds(2000, 2000))
	require.False(t, s.TraceInBounds(2000, 2001))
}

func TestNewSettingsOptions(t *testing.T) {
	s, err := NewSettings(
		WithInlineByteIndex(220),
		WithCrosslineByteIndex(224),
		WithLittleEndianOverride(true),
		WithTraceFormatOverride(format.Int16),
		WithStepBy(2),
		WithOrderTraceBy(format.OrderTraceNo),
		WithDimZ(100),
	)
	require.NoError(t, err)
	require.Equal(t, 220, s.InlineByteIndex())
	require.Equal(t, 224, s.CrosslineByteIndex())

	le, ok := s.LittleEndianOverride()
	require.True(t, ok)
	require.True(t, le)

	f, ok := s.TraceFormatOverride()
	require.True(t, ok)
	require.Equal(t, format.Int16, f)

	require.Equal(t, 2, s.StepBy())
	require.Equal(t, format.OrderTraceNo, s.OrderTraceBy())

	_, err = NewSettings(WithInlineByteIndex(239))
	require.Error(t, err)
	_, err = NewSettings(WithStepBy(0))
	require.Error(t, err)
	_, err = NewSettings(WithCoordinateFormatOverride(format.Float64))
	require.Error(t, err)
}
