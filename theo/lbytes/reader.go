package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// NewReader measures the stream once and positions the cursor where the
// stream currently is.
func NewReader(rs io.ReadSeeker) (*Reader, error) {
	offset, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, errors.Wrap(err, "NewReader error: get current offset")
	}
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "NewReader error: seek to end")
	}
	if _, err := rs.Seek(offset, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "NewReader error: seek back")
	}
	return &Reader{
		rs:     rs,
		offset: offset,
		size:   size,
	}, nil
}

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		rs:   bytes.NewReader(bs),
		size: int64(len(bs)),
	}
}

func (b *Reader) Offset() int64 {
	return b.offset
}

func (b *Reader) Remaining() int64 {
	return b.size - b.offset
}

func (b *Reader) ensure(n int64) error {
	if n < 0 || n > b.Remaining() {
		return errors.Wrapf(
			ErrShortStream,
			"need %d bytes at offset %d, %d remaining",
			n, b.offset, b.Remaining(),
		)
	}
	return nil
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.ReadBytes(Uint32Size)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

// ReadBytes allocates exactly n bytes, and only after n has been checked
// against the remaining length of the stream.
func (b *Reader) ReadBytes(n int) ([]byte, error) {
	if err := b.ensure(int64(n)); err != nil {
		return nil, err
	}
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	read, err := io.ReadFull(b.rs, bs)
	b.offset += int64(read)
	if err != nil {
		return nil, errors.Wrap(err, "ReadBytes error")
	}
	return bs, nil
}

func (b *Reader) ReadString(n int) (string, error) {
	bs, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}

	return string(bs), nil
}

// Skip moves the cursor forward by n bytes without reading them.
func (b *Reader) Skip(n int64) error {
	if err := b.ensure(n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	offset, err := b.rs.Seek(n, io.SeekCurrent)
	if err != nil {
		return errors.Wrap(err, "Skip error")
	}
	b.offset = offset
	return nil
}

// CopyN streams exactly n bytes from the cursor into w.
func (b *Reader) CopyN(w io.Writer, n int64) (int64, error) {
	if err := b.ensure(n); err != nil {
		return 0, err
	}
	written, err := io.CopyN(w, b.rs, n)
	b.offset += written
	if err != nil {
		return written, errors.Wrap(err, "CopyN error")
	}
	return written, nil
}
