// Package segy reads and writes SEG-Y seismic data files.
//
// The package follows the SEG Technical Standards Committee's SEG-Y r2.0
// standard (January 2017). A file is opened read-only through a memory
// mapping with [Open]; headers are parsed eagerly, trace data lazily. New
// files are written trace by trace through [Create] and [AddTrace] or
// [AddTraceLossless].
//
// Non-standard layouts are handled through [layout.Settings]: geometry
// fields can be relocated, byte order, sample format and coordinate
// format can be overridden, and traces can be filtered or truncated by
// grid dimensions.
package segy

import "github.com/GiGainfosystems/giga-segy/header"

// Byte lengths of the fixed-size file regions.
const (
	TapeLabelLen   = header.TapeLabelLen
	TextHeaderLen  = header.TextHeaderLen
	BinHeaderLen   = header.BinHeaderLen
	TraceHeaderLen = header.TraceHeaderLen
)
