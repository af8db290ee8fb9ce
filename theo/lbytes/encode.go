package lbytes

import (
	"encoding/binary"
)

func EncodeValueUint32(value uint32) []byte {
	bs := make([]byte, Uint32Size)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}
