package theo

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/samber/lo"
)

// Source is one file to be archived. Open reports the size of the content
// at the moment it is opened.
type Source interface {
	Name() string
	Open() (io.ReadCloser, int64, error)
}

type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return filepath.Base(s.Path)
}

func (s FileSource) Open() (io.ReadCloser, int64, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, 0, &AccessError{Op: "open", Path: s.Path, Err: err}
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, 0, &AccessError{Op: "stat", Path: s.Path, Err: err}
	}
	return file, info.Size(), nil
}

type MemorySource struct {
	FileName string
	Content  []byte
}

func (s MemorySource) Name() string {
	return s.FileName
}

func (s MemorySource) Open() (io.ReadCloser, int64, error) {
	return io.NopCloser(bytes.NewReader(s.Content)), int64(len(s.Content)), nil
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// Enumerate lists every regular file directly inside dir, sorted by name.
// Subdirectories are ignored, symlinks are followed, and paths in exclude
// (usually the archive being written) are left out.
func Enumerate(dir string, exclude ...string) ([]Source, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &AccessError{Op: "read directory", Path: dir, Err: err}
	}
	excluded := lo.Map(
		exclude,
		func(path string, _ int) string {
			return absPath(path)
		},
	)

	paths := make([]string, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		path := filepath.Join(dir, dirEntry.Name())
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			// dangling symlink
			continue
		}
		if err != nil {
			return nil, &AccessError{Op: "stat", Path: path, Err: err}
		}
		if !info.Mode().IsRegular() || lo.Contains(excluded, absPath(path)) {
			continue
		}
		paths = append(paths, path)
	}

	sources := lo.Map(
		paths,
		func(path string, _ int) Source {
			return FileSource{Path: path}
		},
	)
	return sources, nil
}
