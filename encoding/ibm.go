package encoding

import "math"

// ibmToFloat32 converts an IBM System/360 hexadecimal float to IEEE 754.
// The layout is 1 sign bit, a 7-bit excess-64 base-16 exponent and a 24-bit
// fraction in the range [0, 1).
func ibmToFloat32(bits uint32) float32 {
	sign := 1.0
	if bits&0x8000_0000 != 0 {
		sign = -1.0
	}
	exp := int(bits>>24&0x7f) - 64
	frac := float64(bits&0x00ff_ffff) / float64(1<<24)

	return float32(sign * frac * math.Pow(16, float64(exp)))
}
