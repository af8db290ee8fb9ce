package tentry

import (
	"github.com/pkg/errors"
	"theo/theo/lbytes"
)

// DecodeEntry reads one fixed-size record. It is called once per archived
// file, so the fields are mapped by hand instead of going through
// lbytes.ExecuteInstructions.
func DecodeEntry(reader *lbytes.Reader) (*Entry, error) {
	bs, err := reader.ReadBytes(DefaultEntrySize)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeEntry error")
	}
	sub := lbytes.NewBytesReader(bs)
	entry := Entry{}
	for _, field := range []*uint32{&entry.Number, &entry.Size, &entry.NameLength} {
		*field, err = sub.ReadUint32()
		if err != nil {
			return nil, errors.Wrap(err, "DecodeEntry error")
		}
	}

	return &entry, nil
}
