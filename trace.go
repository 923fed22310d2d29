package segy

import "github.com/GiGainfosystems/giga-segy/header"

// Trace is a parsed trace header together with the location of the trace
// data inside the file. The data itself stays in the mapping until one of
// the accessors on [File] reads it.
type Trace struct {
	header  *header.TraceHeader
	start   int
	byteLen int
}

func newTrace(h *header.TraceHeader, start, byteLen int) Trace {
	return Trace{header: h, start: start, byteLen: byteLen}
}

// Header returns the parsed trace header.
func (t *Trace) Header() *header.TraceHeader { return t.header }

// Start returns the byte offset of the trace data, counted from the
// beginning of the file.
func (t *Trace) Start() int { return t.start }

// Len returns the apparent byte length of the trace data. When a
// z-dimension override truncates traces this is shorter than the length
// on disk.
func (t *Trace) Len() int { return t.byteLen }
