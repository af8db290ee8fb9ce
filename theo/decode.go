package theo

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"theo/ds"
	"theo/theo/lbytes"
	"theo/theo/tentry"
	"theo/theo/tstamp"
)

// Archive is a validated archive with a cursor over its entries.
//
// Entries are consumed strictly in order: Next returns a record, then the
// name is either read with ReadName or skipped together with the payload
// via Skip, and finally the payload is copied or skipped.
type Archive struct {
	Stamp  tstamp.Stamp
	reader *lbytes.Reader
	closer io.Closer
	read   uint32
}

// Open opens the archive at path and validates its stamp.
func Open(path string) (*Archive, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &AccessError{Op: "access", Path: path, Err: err}
	}
	archive, err := NewArchive(file)
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrapf(err, "Open error: %s", path)
	}
	archive.closer = file
	return archive, nil
}

// NewArchive validates the stamp at the current position of rs and leaves
// the cursor right after it.
func NewArchive(rs io.ReadSeeker) (*Archive, error) {
	reader, err := lbytes.NewReader(rs)
	if err != nil {
		return nil, errors.Wrap(err, "NewArchive error")
	}
	stamp, err := tstamp.Decode(reader)
	if err != nil {
		return nil, malformed(err, "NewArchive error")
	}
	return &Archive{
		Stamp:  *stamp,
		reader: reader,
	}, nil
}

func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// Offset is the position of the cursor from the start of the stream.
func (a *Archive) Offset() int64 {
	return a.reader.Offset()
}

// Next reads the next entry record, or returns io.EOF once as many records
// as the stamp declares have been read.
func (a *Archive) Next() (*tentry.Entry, error) {
	if a.read >= a.Stamp.FilesCount {
		return nil, io.EOF
	}
	entry, err := tentry.DecodeEntry(a.reader)
	if err != nil {
		return nil, malformed(err, "Next error: record %d of %d", a.read+1, a.Stamp.FilesCount)
	}
	if entry == nil {
		return nil, ds.ErrUnreachableCode{Caller: "theo.Archive.Next"}
	}
	if entry.SkipLength() > a.reader.Remaining() {
		return nil, errors.Wrapf(
			ErrMalformed,
			"Next error: entry %d declares %d bytes, %d remaining",
			entry.Number, entry.SkipLength(), a.reader.Remaining(),
		)
	}
	a.read++
	return entry, nil
}

// expectedEntries bounds the declared count by what the rest of the stream
// could possibly hold.
func (a *Archive) expectedEntries() int64 {
	left := int64(a.Stamp.FilesCount - a.read)
	fit := a.reader.Remaining() / tentry.DefaultEntrySize
	if fit < left {
		return fit
	}
	return left
}

func (a *Archive) ReadName(entry tentry.Entry) (string, error) {
	name, err := a.reader.ReadString(int(entry.NameLength))
	if err != nil {
		return "", malformed(err, "ReadName error: entry %d", entry.Number)
	}
	return name, nil
}

// Skip moves past both the name and the payload of entry.
func (a *Archive) Skip(entry tentry.Entry) error {
	if err := a.reader.Skip(entry.SkipLength()); err != nil {
		return malformed(err, "Skip error: entry %d", entry.Number)
	}
	return nil
}

func (a *Archive) SkipPayload(entry tentry.Entry) error {
	if err := a.reader.Skip(int64(entry.Size)); err != nil {
		return malformed(err, "SkipPayload error: entry %d", entry.Number)
	}
	return nil
}

func (a *Archive) CopyPayload(w io.Writer, entry tentry.Entry) error {
	if _, err := a.reader.CopyN(w, int64(entry.Size)); err != nil {
		return malformed(err, "CopyPayload error: entry %d", entry.Number)
	}
	return nil
}
