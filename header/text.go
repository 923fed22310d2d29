package header

import (
	"fmt"
	"strings"

	"github.com/GiGainfosystems/giga-segy/errs"
	"github.com/GiGainfosystems/giga-segy/internal/ebcdic"
)

// DecodeTextHeader renders 3200 bytes of text header as ASCII. The raw
// bytes are taken as ASCII if every byte is printable; otherwise they are
// converted from EBCDIC. The result is truncated at the first NUL.
func DecodeTextHeader(b []byte) (string, error) {
	if len(b) != TextHeaderLen {
		return "", &errs.InvalidHeaderError{Msg: fmt.Sprintf("text header length should be 3200 but is %d", len(b))}
	}

	if !isPrintableASCII(b) {
		b = ebcdic.BytesToASCII(b)
	}

	return trimAtNul(string(b)), nil
}

// TextHeaderBytes pads a text header to 3200 bytes with spaces. Longer
// input is an error rather than silently truncated.
func TextHeaderBytes(text string) ([]byte, error) {
	if len(text) > TextHeaderLen {
		return nil, &errs.InvalidHeaderError{Msg: fmt.Sprintf("text header too long: %d bytes", len(text))}
	}

	b := make([]byte, TextHeaderLen)
	copy(b, text)
	for i := len(text); i < TextHeaderLen; i++ {
		b[i] = ' '
	}

	return b, nil
}

// TextHeaderLines splits a decoded text header into its 80-column card
// images.
func TextHeaderLines(text string) []string {
	lines := make([]string, 0, (len(text)+79)/80)
	for len(text) > 80 {
		lines = append(lines, text[:80])
		text = text[80:]
	}
	if len(text) > 0 {
		lines = append(lines, text)
	}

	return lines
}

func isPrintableASCII(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c >= 0x7f {
			return false
		}
	}

	return true
}

func trimAtNul(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}

	return s
}
