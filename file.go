package segy

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/GiGainfosystems/giga-segy/errs"
	"github.com/GiGainfosystems/giga-segy/header"
	"github.com/GiGainfosystems/giga-segy/internal/hash"
	"github.com/GiGainfosystems/giga-segy/layout"
)

// File is a read-only SEG-Y file backed by a memory mapping. Headers are
// parsed when the file is opened; trace data is read on demand through the
// data accessors. A File must be released with [File.Close].
type File struct {
	settings        *layout.Settings
	tapeLabel       *header.TapeLabel
	textHeader      string
	extendedHeaders []string
	binHeader       *header.BinHeader
	traces          []Trace
	lookup          map[uint64]int
	data            mmap.MMap
	file            *os.File
	report          ScanReport
}

// Open maps the named file and parses its headers. A nil settings value
// uses the defaults. The trace scan honors every settings override, so
// the same file can look different under different settings.
func Open(path string, set *layout.Settings) (*File, error) {
	if set == nil {
		set = layout.DefaultSettings()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("map %s: %w", path, err)
	}

	file, err := parse(data, set)
	if err != nil {
		data.Unmap()
		f.Close()
		return nil, err
	}
	file.file = f

	return file, nil
}

func parse(data mmap.MMap, set *layout.Settings) (*File, error) {
	labeled, err := hasLabel(data)
	if err != nil {
		return nil, err
	}
	off := 0
	if labeled {
		off = header.TapeLabelLen
	}
	if len(data) <= off+header.TextHeaderLen+header.BinHeaderLen+header.TraceHeaderLen {
		return nil, errs.ErrFileTooShort
	}

	file := &File{settings: set, data: data}
	if labeled {
		file.tapeLabel, err = header.ParseTapeLabel(data[:header.TapeLabelLen])
		if err != nil {
			return nil, err
		}
	}

	file.textHeader, err = header.DecodeTextHeader(data[off : off+header.TextHeaderLen])
	if err != nil {
		return nil, err
	}

	binStart := off + header.TextHeaderLen
	file.binHeader, err = header.ParseBinHeader(data[binStart:binStart+header.BinHeaderLen], set)
	if err != nil {
		return nil, err
	}

	extStart := binStart + header.BinHeaderLen
	extCount := int(file.binHeader.ExtendedHeaderCount)
	if len(data) < extStart+extCount*header.TextHeaderLen {
		return nil, errs.ErrSegyTooShort
	}
	for i := 0; i < extCount; i++ {
		start := extStart + i*header.TextHeaderLen
		h, err := header.DecodeTextHeader(data[start : start+header.TextHeaderLen])
		if err != nil {
			return nil, err
		}
		file.extendedHeaders = append(file.extendedHeaders, h)
	}

	traceStart := extStart + extCount*header.TextHeaderLen
	file.traces, file.report, err = scanTraces(data, file.binHeader, traceStart, set)
	if err != nil {
		return nil, err
	}

	file.lookup = make(map[uint64]int, len(file.traces))
	for i := range file.traces {
		h := file.traces[i].header
		file.lookup[hash.TraceKey(h.CrosslineNo, h.InlineNo)] = i
	}

	return file, nil
}

// Settings returns the layout settings the file was opened with.
func (f *File) Settings() *layout.Settings { return f.settings }

// TapeLabel returns the tape label, if the file has one.
func (f *File) TapeLabel() (*header.TapeLabel, bool) {
	return f.tapeLabel, f.tapeLabel != nil
}

// ReadableTapeLabel returns the tape label with its fields rendered as
// strings, if the file has one.
func (f *File) ReadableTapeLabel() (header.ReadableTapeLabel, bool) {
	if f.tapeLabel == nil {
		return header.ReadableTapeLabel{}, false
	}
	return f.tapeLabel.Readable(), true
}

// TextHeader returns the decoded 3200-byte text header.
func (f *File) TextHeader() string { return f.textHeader }

// TextHeaderLines returns the text header split into its 80-column card
// images.
func (f *File) TextHeaderLines() []string {
	return header.TextHeaderLines(f.textHeader)
}

// ExtendedHeaders returns the decoded extended text headers.
func (f *File) ExtendedHeaders() []string { return f.extendedHeaders }

// BinHeader returns the parsed binary header. When a z-dimension override
// is set its sample count reflects the override, not the file.
func (f *File) BinHeader() *header.BinHeader { return f.binHeader }

// TraceCount returns the number of traces kept by the scan.
func (f *File) TraceCount() int { return len(f.traces) }

// Trace returns the i-th kept trace.
func (f *File) Trace(i int) (*Trace, error) {
	if i < 0 || i >= len(f.traces) {
		return nil, &errs.TraceNotFoundError{Index: i}
	}
	return &f.traces[i], nil
}

// Traces returns all kept traces in file order.
func (f *File) Traces() []Trace { return f.traces }

// TraceByCrosslineInline looks up a trace by its grid position.
func (f *File) TraceByCrosslineInline(crossline, inline int32) (*Trace, bool) {
	i, ok := f.lookup[hash.TraceKey(crossline, inline)]
	if !ok {
		return nil, false
	}
	return &f.traces[i], true
}

// Report returns the scan diagnostics for the file.
func (f *File) Report() ScanReport { return f.report }

// TraceIndicesForCrosslineMinMax returns the indices of the traces with
// the smallest and largest crossline number.
func (f *File) TraceIndicesForCrosslineMinMax() ([2]int, bool) {
	return f.minMaxBy(func(h *header.TraceHeader) int32 { return h.CrosslineNo })
}

// TraceIndicesForInlineMinMax returns the indices of the traces with the
// smallest and largest inline number.
func (f *File) TraceIndicesForInlineMinMax() ([2]int, bool) {
	return f.minMaxBy(func(h *header.TraceHeader) int32 { return h.InlineNo })
}

// TraceIndicesForXEnsembleMinMax returns the indices of the traces with
// the smallest and largest x ensemble value.
func (f *File) TraceIndicesForXEnsembleMinMax() ([2]int, bool) {
	return f.minMaxBy(func(h *header.TraceHeader) int32 { return h.XEnsemble })
}

// TraceIndicesForYEnsembleMinMax returns the indices of the traces with
// the smallest and largest y ensemble value.
func (f *File) TraceIndicesForYEnsembleMinMax() ([2]int, bool) {
	return f.minMaxBy(func(h *header.TraceHeader) int32 { return h.YEnsemble })
}

func (f *File) minMaxBy(key func(*header.TraceHeader) int32) ([2]int, bool) {
	if len(f.traces) == 0 {
		return [2]int{}, false
	}

	min, max := 0, 0
	for i := range f.traces {
		v := key(f.traces[i].header)
		if v < key(f.traces[min].header) {
			min = i
		}
		if v > key(f.traces[max].header) {
			max = i
		}
	}

	return [2]int{min, max}, true
}

// Deconstruct releases the mapping and hands back the parsed metadata.
// The file must not be used afterwards.
func (f *File) Deconstruct() (*header.TapeLabel, string, []string, *header.BinHeader, []Trace, error) {
	err := f.Close()
	return f.tapeLabel, f.textHeader, f.extendedHeaders, f.binHeader, f.traces, err
}

// Close unmaps the file and closes the underlying handle.
func (f *File) Close() error {
	var err error
	if f.data != nil {
		err = f.data.Unmap()
		f.data = nil
	}
	if f.file != nil {
		if cerr := f.file.Close(); err == nil {
			err = cerr
		}
		f.file = nil
	}
	return err
}
