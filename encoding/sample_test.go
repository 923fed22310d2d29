package encoding

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GiGainfosystems/giga-segy/format"
)

func TestDecoderRefusals(t *testing.T) {
	for _, f := range []format.SampleFormatCode{format.Int24, format.UInt24, format.FixPoint32} {
		_, err := Decoder(f, false)
		require.Error(t, err, f.String())
		_, err = Decoder(f, true)
		require.Error(t, err, f.String())
	}
}

func TestDecoderBadWidth(t *testing.T) {
	dec, err := Decoder(format.Int32, false)
	require.NoError(t, err)
	_, err = dec([]byte{1, 2})
	require.Error(t, err)
}

func TestIbmFloatDecode(t *testing.T) {
	dec, err := Decoder(format.IbmFloat32, false)
	require.NoError(t, err)

	// 0x42640000 is 100.0 in IBM hexadecimal float.
	v, err := dec([]byte{0x42, 0x64, 0x00, 0x00})
	require.NoError(t, err)
	require.Equal(t, float32(100.0), v)

	v, err = dec([]byte{0xC2, 0x64, 0x00, 0x00})
	require.NoError(t, err)
	require.Equal(t, float32(-100.0), v)

	v, err = dec([]byte{0, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, float32(0), v)

	// IBM floats stay big-endian even when the file is little-endian.
	decLE, err := Decoder(format.IbmFloat32, true)
	require.NoError(t, err)
	v, err = decLE([]byte{0x42, 0x64, 0x00, 0x00})
	require.NoError(t, err)
	require.Equal(t, float32(100.0), v)
}

func TestIbmFloatEncodeRefused(t *testing.T) {
	_, err := EncodeSamples([]float32{1.0}, format.IbmFloat32, false)
	require.ErrorContains(t, err, "IbmFloats")
}

func TestEncodeRefusals(t *testing.T) {
	for _, f := range []format.SampleFormatCode{format.Int24, format.UInt24, format.FixPoint32} {
		_, err := EncodeSamples([]int32{1}, f, false)
		require.Error(t, err, f.String())
	}
}

func roundTrip[T Sample](t *testing.T, samples []T, f format.SampleFormatCode, little bool) []float32 {
	t.Helper()

	raw, err := EncodeSamples(samples, f, little)
	require.NoError(t, err)
	require.Len(t, raw, len(samples)*f.DatumByteLength())

	dec, err := Decoder(f, little)
	require.NoError(t, err)

	w := f.DatumByteLength()
	out := make([]float32, 0, len(samples))
	for i := 0; i < len(raw); i += w {
		v, err := dec(raw[i : i+w])
		require.NoError(t, err)
		out = append(out, v)
	}

	return out
}

func TestExhaustiveSmallRoundTrips(t *testing.T) {
	for _, little := range []bool{false, true} {
		t.Run("int8", func(t *testing.T) {
			for v := math.MinInt8; v <= math.MaxInt8; v++ {
				got := roundTrip(t, []int8{int8(v)}, format.Int8, little)
				require.Equal(t, float32(v), got[0])
			}
		})
		t.Run("uint8", func(t *testing.T) {
			for v := 0; v <= math.MaxUint8; v++ {
				got := roundTrip(t, []uint8{uint8(v)}, format.UInt8, little)
				require.Equal(t, float32(v), got[0])
			}
		})
		t.Run("int16", func(t *testing.T) {
			for v := math.MinInt16; v <= math.MaxInt16; v++ {
				got := roundTrip(t, []int16{int16(v)}, format.Int16, little)
				require.Equal(t, float32(v), got[0])
			}
		})
		t.Run("uint16", func(t *testing.T) {
			for v := 0; v <= math.MaxUint16; v++ {
				got := roundTrip(t, []uint16{uint16(v)}, format.UInt16, little)
				require.Equal(t, float32(v), got[0])
			}
		})
	}
}

func TestWideRoundTrips(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		samples := []int32{math.MinInt32, -1, 0, 1, 4096, math.MaxInt32}
		got := roundTrip(t, samples, format.Int32, false)
		for i, v := range samples {
			require.Equal(t, float32(v), got[i])
		}
	})
	t.Run("float32", func(t *testing.T) {
		samples := []float32{-1.5, 0, math.Pi, math.MaxFloat32}
		got := roundTrip(t, samples, format.Float32, true)
		require.Equal(t, samples, got)
	})
	t.Run("float64 narrows", func(t *testing.T) {
		samples := []float64{1.0000000001, -2.5}
		got := roundTrip(t, samples, format.Float64, false)
		for i, v := range samples {
			require.Equal(t, float32(v), got[i])
		}
	})
	t.Run("uint64", func(t *testing.T) {
		samples := []uint64{0, 12345, math.MaxUint64}
		got := roundTrip(t, samples, format.UInt64, false)
		for i, v := range samples {
			require.Equal(t, float32(v), got[i])
		}
	})
}

func TestEncodeConversionRules(t *testing.T) {
	t.Run("floats truncate toward zero", func(t *testing.T) {
		raw, err := EncodeSamples([]float32{-1.9, 1.9}, format.Int16, false)
		require.NoError(t, err)
		require.Equal(t, int16(-1), int16(binary.BigEndian.Uint16(raw[:2])))
		require.Equal(t, int16(1), int16(binary.BigEndian.Uint16(raw[2:])))
	})
	t.Run("NaN fails", func(t *testing.T) {
		_, err := EncodeSamples([]float64{math.NaN()}, format.Int32, false)
		require.Error(t, err)
	})
	t.Run("overflow fails", func(t *testing.T) {
		_, err := EncodeSamples([]int32{40000}, format.Int16, false)
		require.Error(t, err)
		_, err = EncodeSamples([]float64{1e20}, format.Int64, false)
		require.Error(t, err)
	})
	t.Run("negative to unsigned fails", func(t *testing.T) {
		_, err := EncodeSamples([]int16{-1}, format.UInt32, false)
		require.Error(t, err)
		_, err = EncodeSamples([]float32{-0.5}, format.UInt16, false)
		require.NoError(t, err) // truncates to 0 first
		_, err = EncodeSamples([]float32{-1.5}, format.UInt16, false)
		require.Error(t, err)
	})
	t.Run("uint64 above int64 range fails signed", func(t *testing.T) {
		_, err := EncodeSamples([]uint64{math.MaxUint64}, format.Int64, false)
		require.Error(t, err)
	})
}

func TestLosslessMatrix(t *testing.T) {
	require.True(t, LosslessTo[float32](format.Float32))
	require.True(t, LosslessTo[float32](format.Float64))
	require.False(t, LosslessTo[float32](format.Int32))

	require.True(t, LosslessTo[float64](format.Float64))
	require.False(t, LosslessTo[float64](format.Float32))

	require.True(t, LosslessTo[int64](format.Int64))
	require.False(t, LosslessTo[int64](format.Float64))

	require.True(t, LosslessTo[int32](format.Int64))
	require.True(t, LosslessTo[int32](format.Float64))
	require.False(t, LosslessTo[int32](format.Float32))

	require.True(t, LosslessTo[int16](format.Float32))
	require.True(t, LosslessTo[int8](format.Int8))

	require.True(t, LosslessTo[uint32](format.Int64))
	require.False(t, LosslessTo[uint32](format.Int32))

	require.True(t, LosslessTo[uint16](format.Float64))
	require.False(t, LosslessTo[uint16](format.Float32))

	require.True(t, LosslessTo[uint8](format.Float32))
	require.True(t, LosslessTo[uint8](format.Int16))

	require.True(t, LosslessTo[uint64](format.UInt64))
	require.False(t, LosslessTo[uint64](format.Int64))
}

func TestEncodeSamplesLossless(t *testing.T) {
	_, err := EncodeSamplesLossless([]uint32{1}, format.Int16, false)
	require.Error(t, err)

	raw, err := EncodeSamplesLossless([]int16{-7}, format.Float32, false)
	require.NoError(t, err)

	dec, err := Decoder(format.Float32, false)
	require.NoError(t, err)
	v, err := dec(raw)
	require.NoError(t, err)
	require.Equal(t, float32(-7), v)
}
