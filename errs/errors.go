// Package errs defines the error values returned by the SEG-Y codec.
//
// Simple failure conditions are sentinel values that callers can test with
// errors.Is. Failures that carry context (observed lengths, sample formats,
// out-of-range values) are structured types that callers can unpack with
// errors.As.
package errs

import "fmt"

var (
	// ErrFileTooShort indicates the mapped file cannot hold even the
	// mandatory leading headers.
	ErrFileTooShort = fmt.Errorf("file is too short to be SEG-Y")

	// ErrSegyTooShort indicates the mapped file is shorter than the
	// structure its binary header declares.
	ErrSegyTooShort = fmt.Errorf("mapped file is too short for the declared extended text headers")

	// ErrIncompleteTrace indicates a trace header declared more sample data
	// than the file contains.
	ErrIncompleteTrace = fmt.Errorf("last trace incomplete: file may be corrupt")

	// ErrFileExists indicates the write target already exists. Existing
	// files are never overwritten.
	ErrFileExists = fmt.Errorf("target file already exists")
)

// BinHeaderLengthError reports a binary header slice that is not exactly
// 400 bytes.
type BinHeaderLengthError struct {
	Len int
}

func (e *BinHeaderLengthError) Error() string {
	return fmt.Sprintf("binary header length should be 400 but is %d", e.Len)
}

// TraceHeaderLengthError reports a trace header slice that is not exactly
// 240 bytes.
type TraceHeaderLengthError struct {
	Len int
}

func (e *TraceHeaderLengthError) Error() string {
	return fmt.Sprintf("trace header length should be 240 but is %d", e.Len)
}

// ParseEnumError reports a coded header field whose value is outside its
// closed vocabulary and has no fallback variant.
type ParseEnumError struct {
	Field string
	Code  int
}

func (e *ParseEnumError) Error() string {
	return fmt.Sprintf("could not parse code %d as %s", e.Code, e.Field)
}

// ConversionError reports a sample or coordinate conversion that cannot be
// performed, either because the format is unsupported or because the value
// does not fit the destination.
type ConversionError struct {
	Msg string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("bit conversion failed: %s", e.Msg)
}

// Conversionf builds a ConversionError with a formatted message.
func Conversionf(format string, args ...any) *ConversionError {
	return &ConversionError{Msg: fmt.Sprintf(format, args...)}
}

// FloatConversionError reports a decoded coordinate value that cannot be
// represented as an int32.
type FloatConversionError struct {
	Value  float32
	Format fmt.Stringer
}

func (e *FloatConversionError) Error() string {
	return fmt.Sprintf("could not convert %v (%s) to int32", e.Value, e.Format)
}

// SettingsError reports an invalid layout settings value.
type SettingsError struct {
	Msg string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("error in settings: %s", e.Msg)
}

// Settingsf builds a SettingsError with a formatted message.
func Settingsf(format string, args ...any) *SettingsError {
	return &SettingsError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidHeaderError reports a header that cannot be serialized or parsed.
type InvalidHeaderError struct {
	Msg string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("invalid header: %s", e.Msg)
}

// TraceNotFoundError reports a trace index that is not present in the file.
type TraceNotFoundError struct {
	Index int
}

func (e *TraceNotFoundError) Error() string {
	return fmt.Sprintf("trace no. %d not found", e.Index)
}

// TracePointOutOfBoundsError reports a datum index past the end of a trace.
type TracePointOutOfBoundsError struct {
	Index int
}

func (e *TracePointOutOfBoundsError) Error() string {
	return fmt.Sprintf("trace data point %d is out of bounds", e.Index)
}

// ShortMappingError reports a trace byte range that extends past the end of
// the mapped file.
type ShortMappingError struct {
	MapLen int
	Needed int
}

func (e *ShortMappingError) Error() string {
	return fmt.Sprintf("mapping is %d bytes but the trace needs %d", e.MapLen, e.Needed)
}

// TraceDivisibilityError reports a trace byte range that is not a whole
// number of datums.
type TraceDivisibilityError struct {
	DataLen  int
	DatumLen int
	Format   fmt.Stringer
}

func (e *TraceDivisibilityError) Error() string {
	return fmt.Sprintf("trace data length %d is not divisible by datum length %d (%s)",
		e.DataLen, e.DatumLen, e.Format)
}

// LongDataVectorError reports a sample vector longer than the 65535 datum
// cap imposed by the 16-bit sample count fields.
type LongDataVectorError struct {
	LData int
}

func (e *LongDataVectorError) Error() string {
	return fmt.Sprintf("data vector has %d points, but max length is 65535", e.LData)
}

// BadDataVectorError reports a sample vector whose length matches neither
// the binary header's nor the trace header's declared sample count.
type BadDataVectorError struct {
	LData  uint16
	LBin   uint16
	LTrace uint16
}

func (e *BadDataVectorError) Error() string {
	return fmt.Sprintf("data length is %d, but was declared as %d (binary header) or %d (trace header)",
		e.LData, e.LBin, e.LTrace)
}
