// Package ebcdic converts IBM code page 037 text to ASCII. Text headers and
// trace names in older SEG-Y files are EBCDIC encoded.
package ebcdic

// toASCII maps each cp037 code point to its ASCII equivalent. Code points
// with no ASCII counterpart map to a space so converted headers stay
// printable. NUL survives the mapping because callers truncate on it.
var toASCII = [256]byte{
	0x00: 0x00, 0x01: 0x01, 0x02: 0x02, 0x03: 0x03,
	0x04: ' ', 0x05: '\t', 0x06: ' ', 0x07: 0x7F,
	0x08: ' ', 0x09: ' ', 0x0A: ' ', 0x0B: 0x0B,
	0x0C: 0x0C, 0x0D: '\r', 0x0E: 0x0E, 0x0F: 0x0F,
	0x10: 0x10, 0x11: 0x11, 0x12: 0x12, 0x13: 0x13,
	0x14: ' ', 0x15: '\n', 0x16: 0x08, 0x17: ' ',
	0x18: 0x18, 0x19: 0x19, 0x1A: ' ', 0x1B: ' ',
	0x1C: 0x1C, 0x1D: 0x1D, 0x1E: 0x1E, 0x1F: 0x1F,
	0x20: ' ', 0x21: ' ', 0x22: ' ', 0x23: ' ',
	0x24: ' ', 0x25: '\n', 0x26: 0x17, 0x27: 0x1B,
	0x28: ' ', 0x29: ' ', 0x2A: ' ', 0x2B: ' ',
	0x2C: ' ', 0x2D: 0x05, 0x2E: 0x06, 0x2F: 0x07,
	0x30: ' ', 0x31: ' ', 0x32: 0x16, 0x33: ' ',
	0x34: ' ', 0x35: ' ', 0x36: ' ', 0x37: 0x04,
	0x38: ' ', 0x39: ' ', 0x3A: ' ', 0x3B: ' ',
	0x3C: 0x14, 0x3D: 0x15, 0x3E: ' ', 0x3F: 0x1A,

	0x40: ' ', 0x41: ' ', 0x42: ' ', 0x43: ' ',
	0x44: ' ', 0x45: ' ', 0x46: ' ', 0x47: ' ',
	0x48: ' ', 0x49: ' ', 0x4A: ' ', 0x4B: '.',
	0x4C: '<', 0x4D: '(', 0x4E: '+', 0x4F: '|',
	0x50: '&', 0x51: ' ', 0x52: ' ', 0x53: ' ',
	0x54: ' ', 0x55: ' ', 0x56: ' ', 0x57: ' ',
	0x58: ' ', 0x59: ' ', 0x5A: '!', 0x5B: '$',
	0x5C: '*', 0x5D: ')', 0x5E: ';', 0x5F: ' ',
	0x60: '-', 0x61: '/', 0x62: ' ', 0x63: ' ',
	0x64: ' ', 0x65: ' ', 0x66: ' ', 0x67: ' ',
	0x68: ' ', 0x69: ' ', 0x6A: ' ', 0x6B: ',',
	0x6C: '%', 0x6D: '_', 0x6E: '>', 0x6F: '?',
	0x70: ' ', 0x71: ' ', 0x72: ' ', 0x73: ' ',
	0x74: ' ', 0x75: ' ', 0x76: ' ', 0x77: ' ',
	0x78: ' ', 0x79: '`', 0x7A: ':', 0x7B: '#',
	0x7C: '@', 0x7D: '\'', 0x7E: '=', 0x7F: '"',

	0x80: ' ', 0x81: 'a', 0x82: 'b', 0x83: 'c',
	0x84: 'd', 0x85: 'e', 0x86: 'f', 0x87: 'g',
	0x88: 'h', 0x89: 'i', 0x8A: ' ', 0x8B: ' ',
	0x8C: ' ', 0x8D: ' ', 0x8E: ' ', 0x8F: ' ',
	0x90: ' ', 0x91: 'j', 0x92: 'k', 0x93: 'l',
	0x94: 'm', 0x95: 'n', 0x96: 'o', 0x97: 'p',
	0x98: 'q', 0x99: 'r', 0x9A: ' ', 0x9B: ' ',
	0x9C: ' ', 0x9D: ' ', 0x9E: ' ', 0x9F: ' ',
	0xA0: ' ', 0xA1: '~', 0xA2: 's', 0xA3: 't',
	0xA4: 'u', 0xA5: 'v', 0xA6: 'w', 0xA7: 'x',
	0xA8: 'y', 0xA9: 'z', 0xAA: ' ', 0xAB: ' ',
	0xAC: ' ', 0xAD: ' ', 0xAE: ' ', 0xAF: ' ',
	0xB0: ' ', 0xB1: ' ', 0xB2: ' ', 0xB3: ' ',
	0xB4: ' ', 0xB5: ' ', 0xB6: ' ', 0xB7: ' ',
	0xB8: ' ', 0xB9: ' ', 0xBA: '[', 0xBB: ']',
	0xBC: ' ', 0xBD: ' ', 0xBE: ' ', 0xBF: ' ',

	0xC0: '{', 0xC1: 'A', 0xC2: 'B', 0xC3: 'C',
	0xC4: 'D', 0xC5: 'E', 0xC6: 'F', 0xC7: 'G',
	0xC8: 'H', 0xC9: 'I', 0xCA: ' ', 0xCB: ' ',
	0xCC: ' ', 0xCD: ' ', 0xCE: ' ', 0xCF: ' ',
	0xD0: '}', 0xD1: 'J', 0xD2: 'K', 0xD3: 'L',
	0xD4: 'M', 0xD5: 'N', 0xD6: 'O', 0xD7: 'P',
	0xD8: 'Q', 0xD9: 'R', 0xDA: ' ', 0xDB: ' ',
	0xDC: ' ', 0xDD: ' ', 0xDE: ' ', 0xDF: ' ',
	0xE0: '\\', 0xE1: ' ', 0xE2: 'S', 0xE3: 'T',
	0xE4: 'U', 0xE5: 'V', 0xE6: 'W', 0xE7: 'X',
	0xE8: 'Y', 0xE9: 'Z', 0xEA: ' ', 0xEB: ' ',
	0xEC: ' ', 0xED: ' ', 0xEE: ' ', 0xEF: ' ',
	0xF0: '0', 0xF1: '1', 0xF2: '2', 0xF3: '3',
	0xF4: '4', 0xF5: '5', 0xF6: '6', 0xF7: '7',
	0xF8: '8', 0xF9: '9', 0xFA: ' ', 0xFB: ' ',
	0xFC: ' ', 0xFD: ' ', 0xFE: ' ', 0xFF: ' ',
}

// ToASCII converts a single cp037 byte.
func ToASCII(c byte) byte {
	return toASCII[c]
}

// BytesToASCII converts a cp037 byte slice into a new ASCII slice.
func BytesToASCII(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = toASCII[c]
	}

	return out
}
