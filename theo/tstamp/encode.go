package tstamp

import (
	"theo/theo/lbytes"
)

func Encode(stamp Stamp) []byte {
	bs := make([]byte, 0, DefaultSize)
	bs = append(bs, stamp.MagicNumber...)
	bs = append(bs, lbytes.EncodeValueUint32(stamp.FilesCount)...)
	return bs
}
