// Package endian provides byte order utilities for binary encoding and decoding.
//
// The package combines the ByteOrder and AppendByteOrder interfaces of
// encoding/binary into a single EndianEngine interface, adds signed helpers
// for the many int16/int32 header fields, and detects the byte order of a
// SEG-Y file from the 4-byte marker at bytes 96..100 of the binary header.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian
// from the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Engine returns the engine for the given byte order flag. SEG-Y files are
// big-endian unless the marker says otherwise.
func Engine(littleEndian bool) EndianEngine {
	if littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// littleMarker is what a little-endian writer puts at bytes 96..100 of the
// binary header. Big-endian files carry the reversed sequence or, in older
// revisions, zeros.
var littleMarker = [4]byte{1, 2, 3, 4}

// DetectLittleEndian reports whether the 4-byte marker declares a
// little-endian file. Anything other than the exact little-endian sequence,
// including the all-zero marker of pre-revision-2 files, means big-endian.
func DetectLittleEndian(marker []byte) bool {
	return len(marker) == 4 && [4]byte(marker) == littleMarker
}

// MarkerBytes returns the 4-byte marker to write for the given byte order.
func MarkerBytes(littleEndian bool) [4]byte {
	if littleEndian {
		return littleMarker
	}
	return [4]byte{4, 3, 2, 1}
}

// Int16 reads a signed 16-bit value with the given engine.
func Int16(e EndianEngine, b []byte) int16 {
	return int16(e.Uint16(b))
}

// Int32 reads a signed 32-bit value with the given engine.
func Int32(e EndianEngine, b []byte) int32 {
	return int32(e.Uint32(b))
}

// PutInt16 writes a signed 16-bit value with the given engine.
func PutInt16(e EndianEngine, b []byte, v int16) {
	e.PutUint16(b, uint16(v))
}

// PutInt32 writes a signed 32-bit value with the given engine.
func PutInt32(e EndianEngine, b []byte, v int32) {
	e.PutUint32(b, uint32(v))
}
