package theo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.bin"), []byte{0x00, 0xFF}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "out.theo"), []byte("old"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "c.txt"), []byte("c"), 0644))

	sources, err := Enumerate(dir, filepath.Join(dir, "out.theo"))
	require.NoError(t, err)

	names := lo.Map(
		sources,
		func(source Source, _ int) string {
			return source.Name()
		},
	)
	assert.Equal(t, []string{"a.txt", "b.bin"}, names)
}

func TestEnumerate_MissingDirectory(t *testing.T) {
	_, err := Enumerate(filepath.Join(t.TempDir(), "nope"))
	accessErr := &AccessError{}
	assert.ErrorAs(t, err, &accessErr)
}

func TestFileSource_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	source := FileSource{Path: path}
	assert.Equal(t, "a.txt", source.Name())
	content, size, err := source.Open()
	require.NoError(t, err)
	defer content.Close()
	assert.Equal(t, int64(5), size)
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"a.txt", ".hidden", "no-extension", "x..y"} {
		assert.NoError(t, ValidateName(name), name)
	}
	for _, name := range []string{"", ".", "..", "../a", "a/b", `a\b`, "/etc/passwd", "a\x00b"} {
		assert.ErrorIs(t, ValidateName(name), ErrUnsafeName, name)
	}
}
