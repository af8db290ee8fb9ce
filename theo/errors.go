package theo

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"theo/theo/lbytes"
	"theo/theo/tstamp"
)

var (
	ErrUnknownFormat = tstamp.ErrUnknownFormat
	ErrMalformed     = errors.New("malformed archive")
	ErrUnsafeName    = errors.New("unsafe entry name")
	ErrTooLarge      = errors.New("value does not fit in the archive format")
	ErrSourceChanged = errors.New("source changed while archiving")
)

// AccessError is returned when a file or directory cannot be opened,
// created, read or written.
type AccessError struct {
	Op   string
	Path string
	Err  error
}

func (r *AccessError) Error() string {
	return fmt.Sprintf("couldn't %s %s: %v", r.Op, r.Path, r.Err)
}

func (r *AccessError) Unwrap() error {
	return r.Err
}

// malformed turns a short read into ErrMalformed and wraps anything else.
func malformed(err error, format string, args ...any) error {
	if errors.Is(err, lbytes.ErrShortStream) {
		msg := fmt.Sprintf(format, args...)
		return errors.Wrapf(ErrMalformed, "%s: %v", msg, err)
	}
	return errors.Wrapf(err, format, args...)
}

// ValidateName accepts only plain base names, so an entry can never be
// written outside of the extraction directory.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\\\x00") {
		return errors.Wrapf(ErrUnsafeName, "%q", name)
	}
	return nil
}
