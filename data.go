package segy

import (
	"github.com/GiGainfosystems/giga-segy/encoding"
	"github.com/GiGainfosystems/giga-segy/errs"
	"github.com/GiGainfosystems/giga-segy/format"
)

// effectiveFormat resolves the sample format for data reads, preferring
// the settings override over the binary header.
func (f *File) effectiveFormat() format.SampleFormatCode {
	if override, ok := f.settings.TraceFormatOverride(); ok {
		return override
	}
	return f.binHeader.SampleFormatCode
}

// effectiveLittleEndian resolves the byte order for data reads, preferring
// the settings override over the binary header.
func (f *File) effectiveLittleEndian() bool {
	if override, ok := f.settings.LittleEndianOverride(); ok {
		return override
	}
	return f.binHeader.LittleEndian
}

// rawTraceData returns the mapped bytes of a trace without copying.
func (f *File) rawTraceData(t *Trace) ([]byte, error) {
	if len(f.data) < t.start+t.byteLen {
		return nil, &errs.ShortMappingError{MapLen: len(f.data), Needed: t.start + t.byteLen}
	}
	return f.data[t.start : t.start+t.byteLen], nil
}

// TraceDataFloat32 returns the data of the i-th trace converted to
// float32, honoring the sample stride.
func (f *File) TraceDataFloat32(i int) ([]float32, error) {
	t, err := f.Trace(i)
	if err != nil {
		return nil, err
	}
	return f.TraceDataFloat32FromTrace(t)
}

// TraceDataFloat32FromTrace returns the data of a trace converted to
// float32, honoring the sample stride.
func (f *File) TraceDataFloat32FromTrace(t *Trace) ([]float32, error) {
	raw, err := f.rawTraceData(t)
	if err != nil {
		return nil, err
	}

	sampleFormat := f.effectiveFormat()
	datumLen := sampleFormat.DatumByteLength()
	if len(raw)%datumLen != 0 {
		return nil, &errs.TraceDivisibilityError{DataLen: len(raw), DatumLen: datumLen, Format: sampleFormat}
	}

	decode, err := encoding.Decoder(sampleFormat, f.effectiveLittleEndian())
	if err != nil {
		return nil, err
	}

	step := f.settings.StepBy()
	data := make([]float32, 0, len(raw)/datumLen/step+1)
	for off := 0; off+datumLen <= len(raw); off += datumLen * step {
		v, err := decode(raw[off : off+datumLen])
		if err != nil {
			return nil, err
		}
		data = append(data, v)
	}

	return data, nil
}

// TraceDataBytes returns the raw data bytes of the i-th trace. With a
// sample stride above one only the strided datums are returned.
func (f *File) TraceDataBytes(i int) ([]byte, error) {
	t, err := f.Trace(i)
	if err != nil {
		return nil, err
	}
	return f.TraceDataBytesFromTrace(t)
}

// TraceDataBytesFromTrace returns the raw data bytes of a trace. With a
// sample stride above one only the strided datums are returned.
func (f *File) TraceDataBytesFromTrace(t *Trace) ([]byte, error) {
	raw, err := f.rawTraceData(t)
	if err != nil {
		return nil, err
	}

	step := f.settings.StepBy()
	if step == 1 {
		out := make([]byte, len(raw))
		copy(out, raw)
		return out, nil
	}

	datumLen := f.effectiveFormat().DatumByteLength()
	out := make([]byte, 0, len(raw)/step+datumLen)
	for off := 0; off+datumLen <= len(raw); off += datumLen * step {
		out = append(out, raw[off:off+datumLen]...)
	}

	return out, nil
}

// DataPointBytes returns the raw bytes of the idx-th datum of a trace.
// Reading a whole trace at once is cheaper when several datums are needed.
func (f *File) DataPointBytes(t *Trace, idx int) ([]byte, error) {
	raw, err := f.dataPoint(t, idx)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// DataPointFloat32 returns the idx-th datum of a trace converted to
// float32. Reading a whole trace at once is cheaper when several datums
// are needed.
func (f *File) DataPointFloat32(t *Trace, idx int) (float32, error) {
	raw, err := f.dataPoint(t, idx)
	if err != nil {
		return 0, err
	}

	decode, err := encoding.Decoder(f.effectiveFormat(), f.effectiveLittleEndian())
	if err != nil {
		return 0, err
	}

	return decode(raw)
}

func (f *File) dataPoint(t *Trace, idx int) ([]byte, error) {
	datumLen := f.effectiveFormat().DatumByteLength()
	first := t.start + idx*datumLen
	last := first + datumLen
	if idx < 0 || last > t.start+t.byteLen || last > len(f.data) {
		return nil, &errs.TracePointOutOfBoundsError{Index: idx}
	}
	return f.data[first:last], nil
}
