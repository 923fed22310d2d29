package segy

import (
	"github.com/GiGainfosystems/giga-segy/errs"
	"github.com/GiGainfosystems/giga-segy/header"
	"github.com/GiGainfosystems/giga-segy/internal/ebcdic"
	"github.com/GiGainfosystems/giga-segy/layout"
)

// ScanReport summarizes what the trace scan saw beyond the traces it kept.
// It is diagnostic only; a report with a non-nil TrailingHeaderErr still
// comes from a successful scan.
type ScanReport struct {
	// TraceCount is the number of traces kept.
	TraceCount int
	// Skipped counts traces dropped by the inline/crossline bounds filter.
	Skipped int
	// TrailingHeaderErr is set when a fixed-length scan hit one
	// unparseable trace header after valid traces. That header is taken
	// as the end of the trace data rather than an error.
	TrailingHeaderErr error
	// Stopped is set when a variable-length scan ended at an unparseable
	// header. With variable-length traces there is no way to tell trailing
	// non-trace bytes from corruption, so the scan ends without error.
	Stopped bool
}

// hasLabel reports whether the mapped file starts with a 128-byte tape
// label. A file without a label starts with a text header, whose first
// byte is the card-image marker 'C' in either ASCII or EBCDIC. A label is
// assumed when byte 0 is not such a marker but byte 128 is.
func hasLabel(data []byte) (bool, error) {
	if len(data) <= header.TapeLabelLen {
		return false, errs.ErrFileTooShort
	}

	b0 := data[0]
	b128 := data[header.TapeLabelLen]
	startsWithText := b0 == 'C' || ebcdic.ToASCII(b0) == 'C'
	textAt128 := b128 == 'C' || ebcdic.ToASCII(b128) == 'C'

	return !startsWithText && textAt128, nil
}

// scanTraces walks the trace records of a mapped file and returns the
// location of each trace that passes the bounds filter. startByte is the
// offset of the first trace record. The binary header's sample count is
// adjusted for the z-dimension override once the scan is done.
func scanTraces(data []byte, bin *header.BinHeader, startByte int, set *layout.Settings) ([]Trace, ScanReport, error) {
	datumSize := bin.SampleFormatCode.DatumByteLength()
	maxCount := set.MaxTraceCount()

	var (
		traces []Trace
		report ScanReport
		err    error
	)
	if bin.FixedLengthTraceFlag.Yes() {
		traces, report, err = scanFixed(data, bin, startByte, set, datumSize, maxCount)
	} else {
		traces, report, err = scanVariable(data, bin, startByte, set, datumSize, maxCount)
	}
	if err != nil {
		return nil, ScanReport{}, err
	}

	bin.AdjustSampleCount(set)
	report.TraceCount = len(traces)

	return traces, report, nil
}

// scanFixed reads equally sized trace records back to back. An unparseable
// header after the first record ends the scan; a second one, or one on the
// very first record, is an error.
func scanFixed(data []byte, bin *header.BinHeader, startByte int, set *layout.Settings, datumSize, maxCount int) ([]Trace, ScanReport, error) {
	traceByteLen := datumSize * int(bin.NoSamples)
	blockByteLen := header.TraceHeaderLen + traceByteLen

	// The apparent length truncates every trace when a z-dimension
	// override asks for fewer samples than the file holds.
	apparentByteLen := traceByteLen
	if l, ok := set.MaxTraceLength(); ok {
		apparentByteLen = datumSize * l
	}

	var traces []Trace
	var report ScanReport
	for i := 0; ; i++ {
		start := startByte + i*blockByteLen
		if start+blockByteLen > len(data) || i >= maxCount {
			break
		}

		th, err := header.ParseTraceHeader(data[start:start+header.TraceHeaderLen], bin, set, i)
		if err != nil {
			// Valid traces followed by an unparseable header mean the
			// trace data is over. With no valid traces yet, or with two
			// such headers, the file is taken as corrupt instead.
			if i == 0 || report.TrailingHeaderErr != nil {
				return nil, ScanReport{}, err
			}
			report.TrailingHeaderErr = err
			continue
		}

		th.AdjustSampleCount(set)
		if !set.TraceInBounds(th.InlineNo, th.CrosslineNo) {
			report.Skipped++
			continue
		}
		traces = append(traces, newTrace(th, start+header.TraceHeaderLen, apparentByteLen))
	}

	return traces, report, nil
}

// scanVariable reads trace records whose data length comes from each trace
// header in turn. An unparseable header ends the scan without error, since
// without a length there is no way to resynchronize.
func scanVariable(data []byte, bin *header.BinHeader, startByte int, set *layout.Settings, datumSize, maxCount int) ([]Trace, ScanReport, error) {
	maxLen, hasMaxLen := set.MaxTraceLength()

	var traces []Trace
	var report ScanReport
	cursor := startByte
	for i := 0; i < maxCount; i++ {
		if len(data) < cursor+header.TraceHeaderLen {
			break
		}

		th, err := header.ParseTraceHeader(data[cursor:cursor+header.TraceHeaderLen], bin, set, i)
		if err != nil {
			report.Stopped = true
			break
		}

		// The on-disk length comes from the header before any z-dimension
		// adjustment.
		traceByteLen := datumSize * int(th.NoSamplesInTrace)
		th.AdjustSampleCount(set)

		if len(data) < cursor+header.TraceHeaderLen+traceByteLen {
			return nil, ScanReport{}, errs.ErrIncompleteTrace
		}

		if set.TraceInBounds(th.InlineNo, th.CrosslineNo) {
			apparentByteLen := traceByteLen
			if hasMaxLen && maxLen*datumSize < traceByteLen {
				apparentByteLen = maxLen * datumSize
			}
			traces = append(traces, newTrace(th, cursor+header.TraceHeaderLen, apparentByteLen))
		} else {
			report.Skipped++
		}

		// The cursor advances past dropped traces too.
		cursor += header.TraceHeaderLen + traceByteLen
	}

	return traces, report, nil
}
