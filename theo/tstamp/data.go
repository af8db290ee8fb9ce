// Package tstamp holds the fixed record that opens every archive.
package tstamp

type (
	Stamp struct {
		MagicNumber []byte `json:"magic_number"`
		FilesCount  uint32 `json:"files_count"`
	}
)

const (
	MagicNumberSize = 3
	DefaultSize     = MagicNumberSize + 4
)

var (
	MagicNumberBytes = []byte{0x52, 0x84, 0x91}
)

func New(filesCount uint32) Stamp {
	magicNumber := make([]byte, MagicNumberSize)
	copy(magicNumber, MagicNumberBytes)
	return Stamp{
		MagicNumber: magicNumber,
		FilesCount:  filesCount,
	}
}

func IsValidMagicNumber(bs []byte) bool {
	if len(bs) < MagicNumberSize {
		return false
	}
	return bs[0] == MagicNumberBytes[0] &&
		bs[1] == MagicNumberBytes[1] &&
		bs[2] == MagicNumberBytes[2]
}
