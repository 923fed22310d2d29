// Package header parses and serializes the fixed-size SEG-Y headers: the
// 128-byte tape label, the 3200-byte text header, the 400-byte binary
// header and the 240-byte trace headers.
package header

import (
	"github.com/GiGainfosystems/giga-segy/endian"
	"github.com/GiGainfosystems/giga-segy/errs"
	"github.com/GiGainfosystems/giga-segy/format"
	"github.com/GiGainfosystems/giga-segy/layout"
)

// Lengths of the fixed file structures in bytes.
const (
	TapeLabelLen   = 128
	TextHeaderLen  = 3200
	BinHeaderLen   = 400
	TraceHeaderLen = 240
)

// BinHeader is the 400-byte binary header that follows the text header.
// Only the assigned bytes are modelled; the reserved ranges are zero on
// write and ignored on read.
type BinHeader struct {
	JobID                   uint32
	LineNumber              uint32
	ReelNumber              uint32
	NoTraces                uint16
	NoAuxTraces             uint16
	SampleInterval          uint16
	SampleIntervalOriginal  uint16
	NoSamples               uint16
	NoSamplesOriginal       uint16
	SampleFormatCode        format.SampleFormatCode
	EnsembleFold            uint16
	SortingCode             format.TraceSortingCode
	VerticalSum             uint16
	SweepFrequencyStart     uint16
	SweepFrequencyEnd       uint16
	SweepLength             uint16
	SweepType               format.SweepTypeCode
	SweepChannelTraceNo     uint16
	SweepTaperAtStart       uint16
	SweepTaperAtEnd         uint16
	TaperType               format.TaperType
	CorrelatedTraces        format.CorrelatedDataTraces
	BinaryGainRecovered     format.BinaryGainRecovered
	AmplitudeRecoveryMethod format.AmplitudeRecoveryMethod
	MeasurementSystem       format.MeasurementSystem
	ImpulseSignalPolarity   format.ImpulseSignalPolarity
	VibratoryPolarityCode   format.VibratoryPolarityCode

	// SegyRevisionNumber is kept as the raw bytes 300..302. Revision 2.0
	// files carry {2, 0}.
	SegyRevisionNumber   [2]byte
	FixedLengthTraceFlag format.FixedLengthTraces
	ExtendedHeaderCount  uint32
	TimeBasisCode        format.TimeBasisCode

	// LittleEndian records the byte order the header was read with and
	// dictates the order it will be written with.
	LittleEndian bool
}

// ParseBinHeader reads a binary header from exactly 400 bytes. The byte
// order comes from the settings override if set, otherwise from the marker
// at bytes 96..100. The sample format, measurement system and byte order
// can all be overridden by the settings.
func ParseBinHeader(b []byte, set *layout.Settings) (*BinHeader, error) {
	if len(b) != BinHeaderLen {
		return nil, &errs.BinHeaderLengthError{Len: len(b)}
	}

	le, ok := set.LittleEndianOverride()
	if !ok {
		le = endian.DetectLittleEndian(b[96:100])
	}
	e := endian.Engine(le)

	sampleFormat, ok := set.TraceFormatOverride()
	if !ok {
		var err error
		sampleFormat, err = format.ParseSampleFormatCode(e.Uint16(b[24:26]))
		if err != nil {
			return nil, err
		}
	}

	measurementSystem, ok := set.CoordinateUnitsOverride()
	if !ok {
		measurementSystem = format.ParseMeasurementSystem(e.Uint16(b[54:56]))
	}

	fixedLength, err := format.ParseFixedLengthTraces(e.Uint16(b[302:304]))
	if err != nil {
		return nil, err
	}

	h := &BinHeader{
		JobID:                   e.Uint32(b[0:4]),
		LineNumber:              e.Uint32(b[4:8]),
		ReelNumber:              e.Uint32(b[8:12]),
		NoTraces:                e.Uint16(b[12:14]),
		NoAuxTraces:             e.Uint16(b[14:16]),
		SampleInterval:          e.Uint16(b[16:18]),
		SampleIntervalOriginal:  e.Uint16(b[18:20]),
		NoSamples:               e.Uint16(b[20:22]),
		NoSamplesOriginal:       e.Uint16(b[22:24]),
		SampleFormatCode:        sampleFormat,
		EnsembleFold:            e.Uint16(b[26:28]),
		SortingCode:             format.ParseTraceSortingCode(endian.Int16(e, b[28:30])),
		VerticalSum:             e.Uint16(b[30:32]),
		SweepFrequencyStart:     e.Uint16(b[32:34]),
		SweepFrequencyEnd:       e.Uint16(b[34:36]),
		SweepLength:             e.Uint16(b[36:38]),
		SweepType:               format.ParseSweepTypeCode(e.Uint16(b[38:40])),
		SweepChannelTraceNo:     e.Uint16(b[40:42]),
		SweepTaperAtStart:       e.Uint16(b[42:44]),
		SweepTaperAtEnd:         e.Uint16(b[44:46]),
		TaperType:               format.ParseTaperType(e.Uint16(b[46:48])),
		CorrelatedTraces:        format.ParseCorrelatedDataTraces(e.Uint16(b[48:50])),
		BinaryGainRecovered:     format.ParseBinaryGainRecovered(e.Uint16(b[50:52])),
		AmplitudeRecoveryMethod: format.ParseAmplitudeRecoveryMethod(e.Uint16(b[52:54])),
		MeasurementSystem:       measurementSystem,
		ImpulseSignalPolarity:   format.ParseImpulseSignalPolarity(e.Uint16(b[56:58])),
		VibratoryPolarityCode:   format.ParseVibratoryPolarityCode(e.Uint16(b[58:60])),
		SegyRevisionNumber:      [2]byte{b[300], b[301]},
		FixedLengthTraceFlag:    fixedLength,
		ExtendedHeaderCount:     e.Uint32(b[306:310]),
		TimeBasisCode:           format.ParseTimeBasisCode(e.Uint16(b[310:312])),
		LittleEndian:            le,
	}

	return h, nil
}

// Bytes serializes the header back to 400 bytes in the byte order recorded
// in LittleEndian. The marker at bytes 96..100 is written to match.
func (h *BinHeader) Bytes() []byte {
	e := endian.Engine(h.LittleEndian)
	b := make([]byte, BinHeaderLen)

	e.PutUint32(b[0:4], h.JobID)
	e.PutUint32(b[4:8], h.LineNumber)
	e.PutUint32(b[8:12], h.ReelNumber)
	e.PutUint16(b[12:14], h.NoTraces)
	e.PutUint16(b[14:16], h.NoAuxTraces)
	e.PutUint16(b[16:18], h.SampleInterval)
	e.PutUint16(b[18:20], h.SampleIntervalOriginal)
	e.PutUint16(b[20:22], h.NoSamples)
	e.PutUint16(b[22:24], h.NoSamplesOriginal)
	e.PutUint16(b[24:26], uint16(h.SampleFormatCode))
	e.PutUint16(b[26:28], h.EnsembleFold)
	endian.PutInt16(e, b[28:30], int16(h.SortingCode))
	e.PutUint16(b[30:32], h.VerticalSum)
	e.PutUint16(b[32:34], h.SweepFrequencyStart)
	e.PutUint16(b[34:36], h.SweepFrequencyEnd)
	e.PutUint16(b[36:38], h.SweepLength)
	e.PutUint16(b[38:40], uint16(h.SweepType))
	e.PutUint16(b[40:42], h.SweepChannelTraceNo)
	e.PutUint16(b[42:44], h.SweepTaperAtStart)
	e.PutUint16(b[44:46], h.SweepTaperAtEnd)
	e.PutUint16(b[46:48], uint16(h.TaperType))
	e.PutUint16(b[48:50], uint16(h.CorrelatedTraces))
	e.PutUint16(b[50:52], uint16(h.BinaryGainRecovered))
	e.PutUint16(b[52:54], uint16(h.AmplitudeRecoveryMethod))
	e.PutUint16(b[54:56], uint16(h.MeasurementSystem))
	e.PutUint16(b[56:58], uint16(h.ImpulseSignalPolarity))
	e.PutUint16(b[58:60], uint16(h.VibratoryPolarityCode))

	marker := endian.MarkerBytes(h.LittleEndian)
	copy(b[96:100], marker[:])

	b[300] = h.SegyRevisionNumber[0]
	b[301] = h.SegyRevisionNumber[1]
	e.PutUint16(b[302:304], uint16(h.FixedLengthTraceFlag))
	e.PutUint32(b[306:310], h.ExtendedHeaderCount)
	e.PutUint16(b[310:312], uint16(h.TimeBasisCode))

	return b
}

// AdjustSampleCount applies the z-dimension override after indexing: the
// declared sample count becomes the override and the traces are flagged as
// fixed length.
func (h *BinHeader) AdjustSampleCount(set *layout.Settings) {
	if dimZ, ok := set.DimZ(); ok {
		h.NoSamples = uint16(dimZ)
		h.FixedLengthTraceFlag = format.FixedLength
	}
}

// NewBinHeader builds a big-endian revision 2.0 header with the given
// counts and sample format. Everything else starts unset.
func NewBinHeader(noTraces, sampleInterval, noSamples uint16, f format.SampleFormatCode) *BinHeader {
	h := DefaultBinHeader()
	h.NoTraces = noTraces
	h.SampleInterval = sampleInterval
	h.NoSamples = noSamples
	h.SampleFormatCode = f

	return h
}

// DefaultBinHeader builds an empty big-endian revision 2.0 header with
// Float32 samples.
func DefaultBinHeader() *BinHeader {
	return &BinHeader{
		SampleFormatCode:     format.Float32,
		SortingCode:          format.SortingUnknown,
		SegyRevisionNumber:   [2]byte{2, 0},
		FixedLengthTraceFlag: format.VariableLength,
		LittleEndian:         false,
	}
}
