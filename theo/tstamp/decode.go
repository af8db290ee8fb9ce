package tstamp

import (
	"fmt"

	"github.com/pkg/errors"
	"theo/theo/lbytes"
)

// ErrUnknownFormat marks a stream whose leading bytes are not the archive
// magic number.
var ErrUnknownFormat = errors.New("unknown file format")

func createMagicNumberReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		magicNumberBytes, err := reader.ReadBytes(MagicNumberSize)
		if err != nil {
			return nil, errors.Wrap(ErrUnknownFormat, err.Error())
		}
		if !IsValidMagicNumber(magicNumberBytes) {
			msg := fmt.Sprintf(
				`invalid magic number: expected "%v", got "%v"`,
				MagicNumberBytes, magicNumberBytes,
			)
			return nil, errors.Wrap(ErrUnknownFormat, msg)
		}
		return magicNumberBytes, nil
	}
}

func Decode(reader *lbytes.Reader) (*Stamp, error) {
	readMagicNumber := createMagicNumberReadFunction(reader)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)

	stampInstructions := []lbytes.Instruction{
		{Key: "magic_number", ReadFunction: readMagicNumber},
		{Key: "files_count", ReadFunction: readUint32},
	}

	stamp, err := lbytes.ExecuteInstructions[Stamp](stampInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "tstamp.Decode error")
	}

	return stamp, nil
}
