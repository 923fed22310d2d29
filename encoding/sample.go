// Package encoding converts trace samples and coordinates between their
// on-disk representation and Go numeric types.
//
// Decoding always lands on float32 regardless of the stored format, so
// 64-bit sources narrow. Encoding is generic over the supported Go numeric
// types and refuses conversions that the target format cannot represent.
// IBM floats decode but never encode, and the obsolete 24-bit and
// fixed-point formats are refused in both directions.
package encoding

import (
	"math"

	"github.com/GiGainfosystems/giga-segy/endian"
	"github.com/GiGainfosystems/giga-segy/errs"
	"github.com/GiGainfosystems/giga-segy/format"
)

// Sample is the set of Go types a trace vector can be built from.
type Sample interface {
	float32 | float64 | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// DecodeFunc converts the bytes of a single datum to float32.
type DecodeFunc func([]byte) (float32, error)

func fixedWidth(width int, f func([]byte) float32) DecodeFunc {
	return func(b []byte) (float32, error) {
		if len(b) != width {
			return 0, errs.Conversionf("datum is %d bytes, want %d", len(b), width)
		}
		return f(b), nil
	}
}

// Decoder returns the datum decoder for the given sample format and byte
// order. IBM floats ignore the byte order flag: they are big-endian on disk
// no matter what the binary header marker says.
func Decoder(f format.SampleFormatCode, littleEndian bool) (DecodeFunc, error) {
	e := endian.Engine(littleEndian)

	switch f {
	case format.IbmFloat32:
		return fixedWidth(4, func(b []byte) float32 {
			return ibmToFloat32(endian.GetBigEndianEngine().Uint32(b))
		}), nil
	case format.Int32:
		return fixedWidth(4, func(b []byte) float32 {
			return float32(endian.Int32(e, b))
		}), nil
	case format.Int16:
		return fixedWidth(2, func(b []byte) float32 {
			return float32(endian.Int16(e, b))
		}), nil
	case format.Float32:
		return fixedWidth(4, func(b []byte) float32 {
			return math.Float32frombits(e.Uint32(b))
		}), nil
	case format.Float64:
		return fixedWidth(8, func(b []byte) float32 {
			return float32(math.Float64frombits(e.Uint64(b)))
		}), nil
	case format.Int8:
		return fixedWidth(1, func(b []byte) float32 {
			return float32(int8(b[0]))
		}), nil
	case format.Int64:
		return fixedWidth(8, func(b []byte) float32 {
			return float32(int64(e.Uint64(b)))
		}), nil
	case format.UInt32:
		return fixedWidth(4, func(b []byte) float32 {
			return float32(e.Uint32(b))
		}), nil
	case format.UInt16:
		return fixedWidth(2, func(b []byte) float32 {
			return float32(e.Uint16(b))
		}), nil
	case format.UInt64:
		return fixedWidth(8, func(b []byte) float32 {
			return float32(e.Uint64(b))
		}), nil
	case format.UInt8:
		return fixedWidth(1, func(b []byte) float32 {
			return float32(b[0])
		}), nil
	default:
		return nil, errs.Conversionf("reading %s data is not supported", f)
	}
}

// encodeFunc appends the encoded bytes of one sample to buf.
type encodeFunc[T Sample] func(buf []byte, v T) ([]byte, error)

// EncodeSamples converts a sample vector to the on-disk representation of
// the given format. Values that the format cannot hold, such as negative
// values in unsigned formats or overflowing integers, fail the whole vector.
// Floats truncate toward zero when the target is an integer format.
func EncodeSamples[T Sample](samples []T, f format.SampleFormatCode, littleEndian bool) ([]byte, error) {
	enc, err := encoderFor[T](f, endian.Engine(littleEndian))
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, len(samples)*f.DatumByteLength())
	for _, v := range samples {
		if buf, err = enc(buf, v); err != nil {
			return nil, err
		}
	}

	return buf, nil
}

// EncodeSamplesLossless is EncodeSamples restricted to conversions that
// cannot lose information for any input value.
func EncodeSamplesLossless[T Sample](samples []T, f format.SampleFormatCode, littleEndian bool) ([]byte, error) {
	if !LosslessTo[T](f) {
		var z T
		return nil, errs.Conversionf("cannot losslessly convert %T to %s", z, f)
	}

	return EncodeSamples(samples, f, littleEndian)
}

// LosslessTo reports whether every value of type T survives a round trip
// through the given sample format.
func LosslessTo[T Sample](f format.SampleFormatCode) bool {
	var z T
	switch any(z).(type) {
	case float32:
		return f == format.Float32 || f == format.Float64
	case float64:
		return f == format.Float64
	case int8:
		return f == format.Int8 || f == format.Int16 || f == format.Int32 ||
			f == format.Int64 || f == format.Float32 || f == format.Float64
	case int16:
		return f == format.Int16 || f == format.Int32 || f == format.Int64 ||
			f == format.Float32 || f == format.Float64
	case int32:
		return f == format.Int32 || f == format.Int64 || f == format.Float64
	case int64:
		return f == format.Int64
	case uint8:
		return f == format.UInt8 || f == format.UInt16 || f == format.UInt32 ||
			f == format.UInt64 || f == format.Int16 || f == format.Int32 ||
			f == format.Int64 || f == format.Float32 || f == format.Float64
	case uint16:
		return f == format.UInt16 || f == format.UInt32 || f == format.UInt64 ||
			f == format.Int32 || f == format.Int64 || f == format.Float64
	case uint32:
		return f == format.UInt32 || f == format.UInt64 || f == format.Int64
	case uint64:
		return f == format.UInt64
	default:
		return false
	}
}

func encoderFor[T Sample](f format.SampleFormatCode, e endian.EndianEngine) (encodeFunc[T], error) {
	switch f {
	case format.IbmFloat32:
		return nil, errs.Conversionf("IbmFloats cannot be written from IEEE values")
	case format.Int24, format.UInt24, format.FixPoint32:
		return nil, errs.Conversionf("writing %s data is not supported", f)
	case format.Int8:
		return signedEncoder[T](f, math.MinInt8, math.MaxInt8, func(buf []byte, i int64) []byte {
			return append(buf, byte(int8(i)))
		}), nil
	case format.Int16:
		return signedEncoder[T](f, math.MinInt16, math.MaxInt16, func(buf []byte, i int64) []byte {
			return e.AppendUint16(buf, uint16(int16(i)))
		}), nil
	case format.Int32:
		return signedEncoder[T](f, math.MinInt32, math.MaxInt32, func(buf []byte, i int64) []byte {
			return e.AppendUint32(buf, uint32(int32(i)))
		}), nil
	case format.Int64:
		return signedEncoder[T](f, math.MinInt64, math.MaxInt64, func(buf []byte, i int64) []byte {
			return e.AppendUint64(buf, uint64(i))
		}), nil
	case format.UInt8:
		return unsignedEncoder[T](f, math.MaxUint8, func(buf []byte, u uint64) []byte {
			return append(buf, byte(u))
		}), nil
	case format.UInt16:
		return unsignedEncoder[T](f, math.MaxUint16, func(buf []byte, u uint64) []byte {
			return e.AppendUint16(buf, uint16(u))
		}), nil
	case format.UInt32:
		return unsignedEncoder[T](f, math.MaxUint32, func(buf []byte, u uint64) []byte {
			return e.AppendUint32(buf, uint32(u))
		}), nil
	case format.UInt64:
		return unsignedEncoder[T](f, math.MaxUint64, func(buf []byte, u uint64) []byte {
			return e.AppendUint64(buf, u)
		}), nil
	case format.Float32:
		return func(buf []byte, v T) ([]byte, error) {
			return e.AppendUint32(buf, math.Float32bits(float32(asFloat64(v)))), nil
		}, nil
	case format.Float64:
		return func(buf []byte, v T) ([]byte, error) {
			return e.AppendUint64(buf, math.Float64bits(asFloat64(v))), nil
		}, nil
	default:
		return nil, errs.Conversionf("writing %s data is not supported", f)
	}
}

func signedEncoder[T Sample](f format.SampleFormatCode, min, max int64, put func([]byte, int64) []byte) encodeFunc[T] {
	return func(buf []byte, v T) ([]byte, error) {
		i, err := asInt64(v, f)
		if err != nil {
			return nil, err
		}
		if i < min || i > max {
			return nil, errs.Conversionf("cannot represent %v as %s", v, f)
		}
		return put(buf, i), nil
	}
}

func unsignedEncoder[T Sample](f format.SampleFormatCode, max uint64, put func([]byte, uint64) []byte) encodeFunc[T] {
	return func(buf []byte, v T) ([]byte, error) {
		u, err := asUint64(v, f)
		if err != nil {
			return nil, err
		}
		if u > max {
			return nil, errs.Conversionf("cannot represent %v as %s", v, f)
		}
		return put(buf, u), nil
	}
}

// asInt64 narrows a sample to int64. Floats truncate toward zero and fail
// on NaN or values outside the int64 range.
func asInt64[T Sample](v T, f format.SampleFormatCode) (int64, error) {
	switch x := any(v).(type) {
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, errs.Conversionf("cannot represent %v as %s", v, f)
		}
		return int64(x), nil
	case float32:
		return floatToInt64(float64(x), v, f)
	case float64:
		return floatToInt64(x, v, f)
	default:
		return 0, errs.Conversionf("cannot represent %v as %s", v, f)
	}
}

// asUint64 narrows a sample to uint64. Negative values always fail.
func asUint64[T Sample](v T, f format.SampleFormatCode) (uint64, error) {
	switch x := any(v).(type) {
	case uint8:
		return uint64(x), nil
	case uint16:
		return uint64(x), nil
	case uint32:
		return uint64(x), nil
	case uint64:
		return x, nil
	case int8:
		return signedToUint64(int64(x), v, f)
	case int16:
		return signedToUint64(int64(x), v, f)
	case int32:
		return signedToUint64(int64(x), v, f)
	case int64:
		return signedToUint64(x, v, f)
	case float32:
		return floatToUint64(float64(x), v, f)
	case float64:
		return floatToUint64(x, v, f)
	default:
		return 0, errs.Conversionf("cannot represent %v as %s", v, f)
	}
}

func asFloat64[T Sample](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	default:
		return 0
	}
}

func floatToInt64[T Sample](x float64, v T, f format.SampleFormatCode) (int64, error) {
	t := math.Trunc(x)
	// The upper bound is exclusive: 1<<63 rounds up in float64.
	if math.IsNaN(t) || t < math.MinInt64 || t >= 1<<63 {
		return 0, errs.Conversionf("cannot represent %v as %s", v, f)
	}
	return int64(t), nil
}

func floatToUint64[T Sample](x float64, v T, f format.SampleFormatCode) (uint64, error) {
	t := math.Trunc(x)
	if math.IsNaN(t) || t < 0 || t >= 1<<64 {
		return 0, errs.Conversionf("cannot represent %v as %s", v, f)
	}
	return uint64(t), nil
}

func signedToUint64[T Sample](i int64, v T, f format.SampleFormatCode) (uint64, error) {
	if i < 0 {
		return 0, errs.Conversionf("cannot represent %v as %s", v, f)
	}
	return uint64(i), nil
}
