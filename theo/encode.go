package theo

import (
	"bufio"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"theo/theo/tentry"
	"theo/theo/tstamp"
)

// Crush creates the archive at path from sources, in order. A failure part
// way through leaves the incomplete archive on disk.
func Crush(path string, sources []Source, opts ...Option) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return &AccessError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = &AccessError{Op: "close", Path: path, Err: closeErr}
		}
	}()

	writer := bufio.NewWriter(out)
	if err := Write(writer, sources, opts...); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return &AccessError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Write streams the whole archive into w.
func Write(w io.Writer, sources []Source, opts ...Option) error {
	cfg := newConfig(opts)
	if uint64(len(sources)) > math.MaxUint32 {
		return errors.Wrapf(ErrTooLarge, "Write error: %d files", len(sources))
	}

	if _, err := w.Write(tstamp.Encode(tstamp.New(uint32(len(sources))))); err != nil {
		return errors.Wrap(err, "Write error: stamp")
	}
	for i, source := range sources {
		if err := writeEntry(w, uint32(i+1), source, cfg); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(w io.Writer, number uint32, source Source, cfg config) error {
	name := source.Name()
	if err := ValidateName(name); err != nil {
		return errors.Wrapf(err, "writeEntry error: file #%d", number)
	}
	if uint64(len(name)) > math.MaxUint32 {
		return errors.Wrapf(ErrTooLarge, "writeEntry error: name of %q", name)
	}

	content, size, err := source.Open()
	if err != nil {
		return errors.Wrapf(err, "writeEntry error: %q", name)
	}
	defer content.Close()
	if size < 0 || size > math.MaxUint32 {
		return errors.Wrapf(ErrTooLarge, "writeEntry error: %q is %d bytes", name, size)
	}

	entry := tentry.Entry{
		Number:     number,
		Size:       uint32(size),
		NameLength: uint32(len(name)),
	}
	cfg.observer(name, entry)

	if _, err := w.Write(tentry.EncodeEntry(entry)); err != nil {
		return errors.Wrapf(err, "writeEntry error: record of %q", name)
	}
	if _, err := io.WriteString(w, name); err != nil {
		return errors.Wrapf(err, "writeEntry error: name of %q", name)
	}
	written, err := io.CopyN(w, content, size)
	if errors.Is(err, io.EOF) {
		return errors.Wrapf(
			ErrSourceChanged,
			"writeEntry error: %q shrank from %d to %d bytes", name, size, written,
		)
	}
	if err != nil {
		return errors.Wrapf(err, "writeEntry error: content of %q", name)
	}
	return nil
}
