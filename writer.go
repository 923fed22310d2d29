package segy

import (
	"fmt"
	"math"
	"os"

	"github.com/GiGainfosystems/giga-segy/encoding"
	"github.com/GiGainfosystems/giga-segy/errs"
	"github.com/GiGainfosystems/giga-segy/format"
	"github.com/GiGainfosystems/giga-segy/header"
	"github.com/GiGainfosystems/giga-segy/layout"
)

// TraceCoordinates locates one written trace inside the output file.
type TraceCoordinates struct {
	// Idx is the index of the trace in the order it was added.
	Idx int
	// StartByte is the absolute offset of the trace header.
	StartByte int
	// DataStartByte is the absolute offset of the trace data, past the
	// header and any extended header blob.
	DataStartByte int
	// ByteLen is the overall length of the record including headers.
	ByteLen int
}

// Writer writes a SEG-Y file trace by trace. It only creates new files;
// editing an existing file is not supported. A Writer must be released
// with [Writer.Close].
type Writer struct {
	settings   *layout.Settings
	tapeLabel  *header.TapeLabel
	textHeader string
	binHeader  *header.BinHeader
	traces     []Trace
	lookup     map[int]TraceCoordinates
	file       *os.File
	offset     int
	binStart   int
}

// Create opens a new file and writes the leading headers: the optional
// tape label, the space-padded text header and the binary header. The
// target must not exist; [errs.ErrFileExists] is returned when it does.
// A nil settings value uses the defaults.
func Create(path string, set *layout.Settings, textHeader string, bin *header.BinHeader, label *header.TapeLabel) (*Writer, error) {
	if set == nil {
		set = layout.DefaultSettings()
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, errs.ErrFileExists
		}
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	w := &Writer{
		settings:   set,
		tapeLabel:  label,
		textHeader: textHeader,
		binHeader:  bin,
		lookup:     make(map[int]TraceCoordinates),
		file:       f,
	}
	if err := w.writeLeadingHeaders(); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}

	return w, nil
}

func (w *Writer) writeLeadingHeaders() error {
	if w.tapeLabel != nil {
		b, err := w.tapeLabel.Bytes()
		if err != nil {
			return err
		}
		if err := w.write(b); err != nil {
			return err
		}
	}

	text, err := header.TextHeaderBytes(w.textHeader)
	if err != nil {
		return err
	}
	if err := w.write(text); err != nil {
		return err
	}

	w.binStart = w.offset
	return w.write(w.binHeader.Bytes())
}

func (w *Writer) write(b []byte) error {
	n, err := w.file.Write(b)
	w.offset += n
	if err != nil {
		return fmt.Errorf("write segy: %w", err)
	}
	return nil
}

// AddExtendedHeader appends one 3200-byte extended text header. Extended
// headers sit between the binary header and the first trace, so they must
// all be added before any trace. The binary header's extended header
// count is kept in step.
func (w *Writer) AddExtendedHeader(text string) error {
	if len(w.traces) > 0 {
		return &errs.InvalidHeaderError{Msg: "extended headers must be written before the first trace"}
	}

	b, err := header.TextHeaderBytes(text)
	if err != nil {
		return err
	}
	if err := w.write(b); err != nil {
		return err
	}

	// The count lives in the binary header, which is already on disk.
	w.binHeader.ExtendedHeaderCount++
	if _, err := w.file.WriteAt(w.binHeader.Bytes(), int64(w.binStart)); err != nil {
		return fmt.Errorf("rewrite binary header: %w", err)
	}

	return nil
}

// effectiveFormat resolves the sample format for data writes, preferring
// the settings override over the binary header.
func (w *Writer) effectiveFormat() format.SampleFormatCode {
	if override, ok := w.settings.TraceFormatOverride(); ok {
		return override
	}
	return w.binHeader.SampleFormatCode
}

func (w *Writer) effectiveLittleEndian() bool {
	if override, ok := w.settings.LittleEndianOverride(); ok {
		return override
	}
	return w.binHeader.LittleEndian
}

// Settings returns the layout settings the file is written with.
func (w *Writer) Settings() *layout.Settings { return w.settings }

// BinHeader returns the binary header the file was created with.
func (w *Writer) BinHeader() *header.BinHeader { return w.binHeader }

// Traces returns the traces written so far, in order.
func (w *Writer) Traces() []Trace { return w.traces }

// Coordinates returns the byte coordinates of the idx-th written trace.
func (w *Writer) Coordinates(idx int) (TraceCoordinates, bool) {
	c, ok := w.lookup[idx]
	return c, ok
}

// Close flushes and closes the output file.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// AddTrace appends one trace: the trace header serialized under the
// writer's settings, an optional extended header blob, then the data
// converted to the file's sample format. The conversion may lose
// precision; values that cannot be represented at all fail. The data
// length must match the sample count declared in either the binary
// header or the trace header.
func AddTrace[T encoding.Sample](w *Writer, th *header.TraceHeader, extended string, data []T) (*TraceCoordinates, error) {
	return addTrace(w, th, extended, data, encoding.EncodeSamples[T])
}

// AddTraceLossless appends one trace like [AddTrace], but refuses data
// types whose values cannot all survive the round trip through the
// file's sample format.
func AddTraceLossless[T encoding.Sample](w *Writer, th *header.TraceHeader, extended string, data []T) (*TraceCoordinates, error) {
	if f := w.effectiveFormat(); !encoding.LosslessTo[T](f) {
		var zero T
		return nil, errs.Conversionf("data of type %T cannot be written losslessly as %s", zero, f)
	}
	return addTrace(w, th, extended, data, encoding.EncodeSamplesLossless[T])
}

func addTrace[T encoding.Sample](w *Writer, th *header.TraceHeader, extended string, data []T, encode func([]T, format.SampleFormatCode, bool) ([]byte, error)) (*TraceCoordinates, error) {
	if len(data) > math.MaxUint16 {
		return nil, &errs.LongDataVectorError{LData: len(data)}
	}
	dataLen := uint16(len(data))
	if dataLen != w.binHeader.NoSamples && dataLen != th.NoSamplesInTrace {
		return nil, &errs.BadDataVectorError{
			LData:  dataLen,
			LBin:   w.binHeader.NoSamples,
			LTrace: th.NoSamplesInTrace,
		}
	}

	headerBytes, err := th.BytesWithSettings(w.settings, w.binHeader)
	if err != nil {
		return nil, err
	}
	dataBytes, err := encode(data, w.effectiveFormat(), w.effectiveLittleEndian())
	if err != nil {
		return nil, err
	}

	idx := len(w.traces)
	start := w.offset
	if err := w.write(headerBytes); err != nil {
		return nil, err
	}
	if extended != "" {
		if err := w.write([]byte(extended)); err != nil {
			return nil, err
		}
	}
	dataStart := w.offset
	if err := w.write(dataBytes); err != nil {
		return nil, err
	}

	coords := TraceCoordinates{
		Idx:           idx,
		StartByte:     start,
		DataStartByte: dataStart,
		ByteLen:       w.offset - start,
	}
	w.traces = append(w.traces, newTrace(th, dataStart, len(dataBytes)))
	w.lookup[idx] = coords

	return &coords, nil
}
