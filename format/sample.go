// Package format defines the coded vocabularies of the SEG-Y binary and
// trace headers.
//
// Codes that appear only in the binary header have a fixed set of values and
// parsing an unknown code is a hard error. Codes from the trace header can
// land on bytes repurposed by non-standard writers, so their parsers fall
// back to a dedicated Invalid variant instead of failing.
package format

import "github.com/GiGainfosystems/giga-segy/errs"

// SampleFormatCode is bytes 24..26 of the binary header.
type SampleFormatCode uint16

const (
	IbmFloat32 SampleFormatCode = 1
	Int32      SampleFormatCode = 2
	Int16      SampleFormatCode = 3
	FixPoint32 SampleFormatCode = 4 // obsolete
	Float32    SampleFormatCode = 5
	Float64    SampleFormatCode = 6
	Int24      SampleFormatCode = 7
	Int8       SampleFormatCode = 8
	Int64      SampleFormatCode = 9
	UInt32     SampleFormatCode = 10
	UInt16     SampleFormatCode = 11
	UInt64     SampleFormatCode = 12
	UInt24     SampleFormatCode = 15
	UInt8      SampleFormatCode = 16
)

// ParseSampleFormatCode validates a raw sample format code.
func ParseSampleFormatCode(code uint16) (SampleFormatCode, error) {
	switch f := SampleFormatCode(code); f {
	case IbmFloat32, Int32, Int16, FixPoint32, Float32, Float64,
		Int24, Int8, Int64, UInt32, UInt16, UInt64, UInt24, UInt8:
		return f, nil
	default:
		return 0, &errs.ParseEnumError{Field: "SampleFormatCode", Code: int(code)}
	}
}

// DatumByteLength is the width of one sample in this format. It is needed
// when estimating the byte length of a trace.
func (f SampleFormatCode) DatumByteLength() int {
	switch f {
	case Int16, UInt16:
		return 2
	case Int24, UInt24:
		return 3
	case Float64, Int64, UInt64:
		return 8
	case Int8, UInt8:
		return 1
	default:
		return 4
	}
}

func (f SampleFormatCode) String() string {
	switch f {
	case IbmFloat32:
		return "IbmFloat32"
	case Int32:
		return "Int32"
	case Int16:
		return "Int16"
	case FixPoint32:
		return "FixPoint32"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case Int24:
		return "Int24"
	case Int8:
		return "Int8"
	case Int64:
		return "Int64"
	case UInt32:
		return "UInt32"
	case UInt16:
		return "UInt16"
	case UInt64:
		return "UInt64"
	case UInt24:
		return "UInt24"
	case UInt8:
		return "UInt8"
	default:
		return "Unknown"
	}
}

// FixedLengthTraces is bytes 302..304 of the binary header.
type FixedLengthTraces uint16

const (
	VariableLength FixedLengthTraces = 0
	FixedLength    FixedLengthTraces = 1
)

// ParseFixedLengthTraces validates the fixed-length trace flag.
func ParseFixedLengthTraces(code uint16) (FixedLengthTraces, error) {
	switch f := FixedLengthTraces(code); f {
	case VariableLength, FixedLength:
		return f, nil
	default:
		return 0, &errs.ParseEnumError{Field: "FixedLengthTraces", Code: int(code)}
	}
}

// Yes reports whether all traces in the file share one length.
func (f FixedLengthTraces) Yes() bool { return f == FixedLength }

func (f FixedLengthTraces) String() string {
	switch f {
	case FixedLength:
		return "Yes"
	case VariableLength:
		return "No"
	default:
		return "Unknown"
	}
}

// OrderTraceBy selects which header field, if any, supplies the ordinal
// position of a trace during indexing.
type OrderTraceBy uint16

const (
	OrderDefault             OrderTraceBy = 1
	OrderTraceSequenceOnLine OrderTraceBy = 2
	OrderTraceSequenceInFile OrderTraceBy = 3
	OrderFieldRecordNo       OrderTraceBy = 4
	OrderTraceNo             OrderTraceBy = 5
	OrderTraceNoInEnsemble   OrderTraceBy = 6
)

func (o OrderTraceBy) String() string {
	switch o {
	case OrderDefault:
		return "Default"
	case OrderTraceSequenceOnLine:
		return "TraceSequenceOnLine"
	case OrderTraceSequenceInFile:
		return "TraceSequenceInFile"
	case OrderFieldRecordNo:
		return "FieldRecordNo"
	case OrderTraceNo:
		return "TraceNo"
	case OrderTraceNoInEnsemble:
		return "TraceNoInEnsemble"
	default:
		return "Unknown"
	}
}
