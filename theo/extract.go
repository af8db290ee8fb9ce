package theo

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"theo/theo/tentry"
)

// ListNames returns the names of the remaining entries in archive order,
// seeking over every payload.
func (a *Archive) ListNames() ([]string, error) {
	names := make([]string, 0, a.expectedEntries())
	for {
		entry, err := a.Next()
		if errors.Is(err, io.EOF) {
			return names, nil
		}
		if err != nil {
			return nil, err
		}
		name, err := a.ReadName(*entry)
		if err != nil {
			return nil, err
		}
		if err := a.SkipPayload(*entry); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
}

// ExtractAll writes every remaining entry into dir. Existing files are
// overwritten.
func (a *Archive) ExtractAll(dir string, opts ...Option) error {
	cfg := newConfig(opts)
	for {
		entry, err := a.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := a.extractEntry(dir, *entry, cfg); err != nil {
			return err
		}
	}
}

// ExtractOne writes the entry numbered ordinal into dir. Entries before it
// are skipped without reading their names or payloads. It reports false
// when no remaining entry carries that number.
func (a *Archive) ExtractOne(dir string, ordinal uint32, opts ...Option) (bool, error) {
	cfg := newConfig(opts)
	for {
		entry, err := a.Next()
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if entry.Number != ordinal {
			if err := a.Skip(*entry); err != nil {
				return false, err
			}
			continue
		}
		if err := a.extractEntry(dir, *entry, cfg); err != nil {
			return false, err
		}
		return true, nil
	}
}

func (a *Archive) extractEntry(dir string, entry tentry.Entry, cfg config) (err error) {
	name, err := a.ReadName(entry)
	if err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return errors.Wrapf(err, "extractEntry error: entry %d", entry.Number)
	}
	cfg.observer(name, entry)

	path := filepath.Join(dir, name)
	out, err := os.Create(path)
	if err != nil {
		return &AccessError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = &AccessError{Op: "close", Path: path, Err: closeErr}
		}
	}()

	return a.CopyPayload(out, entry)
}

// ListNames opens the archive at path and lists its entry names.
func ListNames(path string) ([]string, error) {
	archive, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()
	return archive.ListNames()
}

// ExtractAll opens the archive at path and extracts every entry into dir.
func ExtractAll(path string, dir string, opts ...Option) error {
	archive, err := Open(path)
	if err != nil {
		return err
	}
	defer archive.Close()
	return archive.ExtractAll(dir, opts...)
}

// ExtractOne opens the archive at path and extracts the entry numbered
// ordinal into dir.
func ExtractOne(path string, dir string, ordinal uint32, opts ...Option) (bool, error) {
	archive, err := Open(path)
	if err != nil {
		return false, err
	}
	defer archive.Close()
	return archive.ExtractOne(dir, ordinal, opts...)
}
