package header

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/GiGainfosystems/giga-segy/errs"
)

// TapeLabel is the optional 128-byte label that can precede the text
// header. All fields are ASCII. The ranges 62..68 and 118..128 are
// reserved and stay blank.
type TapeLabel struct {
	StorageUnitSeqNo          [4]byte
	SegyRevisionNo            [5]byte
	StorageUnitStructure      [6]byte
	BindingNumber             [4]byte
	MaxBlockSize              uint32
	ProducingOrganisationCode [10]byte
	CreationDate              [11]byte
	SerialNumber              [12]byte
	ExternalLabel             [12]byte
	RecordingEntity           [24]byte
	Extra                     [14]byte
}

// ReadableTapeLabel is the label with its fields rendered as strings.
type ReadableTapeLabel struct {
	StorageUnitSeqNo          string
	SegyRevisionNo            string
	StorageUnitStructure      string
	BindingNumber             string
	MaxBlockSize              uint32
	ProducingOrganisationCode string
	CreationDate              string
	SerialNumber              string
	ExternalLabel             string
	RecordingEntity           string
	Extra                     string
}

// ParseTapeLabel reads a tape label from exactly 128 bytes.
func ParseTapeLabel(b []byte) (*TapeLabel, error) {
	if len(b) != TapeLabelLen {
		return nil, &errs.InvalidHeaderError{Msg: fmt.Sprintf("tape label length should be 128 but is %d", len(b))}
	}

	// The block size is stored as right-justified ASCII digits.
	raw := strings.TrimLeft(string(b[19:29]), " 0\x00")
	if raw == "" {
		raw = "0"
	}
	maxBlockSize, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, &errs.InvalidHeaderError{Msg: fmt.Sprintf("tape label block size: %v", err)}
	}

	l := &TapeLabel{MaxBlockSize: uint32(maxBlockSize)}
	copy(l.StorageUnitSeqNo[:], b[0:4])
	copy(l.SegyRevisionNo[:], b[4:9])
	copy(l.StorageUnitStructure[:], b[9:15])
	copy(l.BindingNumber[:], b[15:19])
	copy(l.ProducingOrganisationCode[:], b[29:39])
	copy(l.CreationDate[:], b[39:50])
	copy(l.SerialNumber[:], b[50:62])
	copy(l.ExternalLabel[:], b[68:80])
	copy(l.RecordingEntity[:], b[80:104])
	copy(l.Extra[:], b[104:118])

	return l, nil
}

// Bytes serializes the label to 128 bytes, leaving the reserved ranges
// blank.
func (l *TapeLabel) Bytes() ([]byte, error) {
	mbs := strconv.FormatUint(uint64(l.MaxBlockSize), 10)
	if len(mbs) > 10 {
		return nil, &errs.InvalidHeaderError{Msg: fmt.Sprintf("tape label block size too long: %s", mbs)}
	}

	b := make([]byte, 0, TapeLabelLen)
	b = append(b, l.StorageUnitSeqNo[:]...)
	b = append(b, l.SegyRevisionNo[:]...)
	b = append(b, l.StorageUnitStructure[:]...)
	b = append(b, l.BindingNumber[:]...)
	for i := len(mbs); i < 10; i++ {
		b = append(b, ' ')
	}
	b = append(b, mbs...)
	b = append(b, l.ProducingOrganisationCode[:]...)
	b = append(b, l.CreationDate[:]...)
	b = append(b, l.SerialNumber[:]...)
	b = append(b, make([]byte, 6)...)
	b = append(b, l.ExternalLabel[:]...)
	b = append(b, l.RecordingEntity[:]...)
	b = append(b, l.Extra[:]...)
	b = append(b, make([]byte, 10)...)

	return b, nil
}

// Readable renders the label fields as NUL-trimmed strings.
func (l *TapeLabel) Readable() ReadableTapeLabel {
	return ReadableTapeLabel{
		StorageUnitSeqNo:          trimAtNul(string(l.StorageUnitSeqNo[:])),
		SegyRevisionNo:            trimAtNul(string(l.SegyRevisionNo[:])),
		StorageUnitStructure:      trimAtNul(string(l.StorageUnitStructure[:])),
		BindingNumber:             trimAtNul(string(l.BindingNumber[:])),
		MaxBlockSize:              l.MaxBlockSize,
		ProducingOrganisationCode: trimAtNul(string(l.ProducingOrganisationCode[:])),
		CreationDate:              trimAtNul(string(l.CreationDate[:])),
		SerialNumber:              trimAtNul(string(l.SerialNumber[:])),
		ExternalLabel:             trimAtNul(string(l.ExternalLabel[:])),
		RecordingEntity:           trimAtNul(string(l.RecordingEntity[:])),
		Extra:                     trimAtNul(string(l.Extra[:])),
	}
}

// NewTapeLabel builds an empty label with the standard record structure
// markers.
func NewTapeLabel() *TapeLabel {
	l := &TapeLabel{MaxBlockSize: math.MaxUint32}
	copy(l.StorageUnitStructure[:], "RECORD")
	copy(l.BindingNumber[:], "BXXX")

	return l
}
