// Package hash builds lookup keys for the (crossline, inline) trace index.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// TraceKey computes the xxHash64 key for a crossline/inline pair.
func TraceKey(crossline, inline int32) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint32(b[:4], uint32(crossline))
	binary.LittleEndian.PutUint32(b[4:], uint32(inline))

	return xxhash.Sum64(b[:])
}
