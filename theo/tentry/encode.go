package tentry

import (
	"theo/theo/lbytes"
)

func EncodeEntry(entry Entry) []byte {
	bs := make([]byte, 0, DefaultEntrySize)
	bs = append(bs, lbytes.EncodeValueUint32(entry.Number)...)
	bs = append(bs, lbytes.EncodeValueUint32(entry.Size)...)
	bs = append(bs, lbytes.EncodeValueUint32(entry.NameLength)...)
	return bs
}

func CalculateBlockLength(entry Entry) int64 {
	return DefaultEntrySize + entry.SkipLength()
}
