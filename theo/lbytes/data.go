package lbytes

import (
	"io"

	"github.com/pkg/errors"
)

type (
	// Reader is a little-endian cursor over a seekable stream that knows how
	// many bytes are left, so that length fields read from the stream can be
	// checked before anything is allocated or skipped.
	Reader struct {
		rs     io.ReadSeeker
		offset int64
		size   int64
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)

const (
	Uint32Size = 4
)

// ErrShortStream is returned whenever a read or a skip asks for more bytes
// than the stream still holds.
var ErrShortStream = errors.New("stream is shorter than declared")
