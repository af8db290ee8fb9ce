package tentry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"theo/theo/lbytes"
)

func TestEncodeEntry(t *testing.T) {
	bs := EncodeEntry(Entry{Number: 1, Size: 2, NameLength: 5})
	assert.Equal(
		t,
		[]byte{
			1, 0, 0, 0,
			2, 0, 0, 0,
			5, 0, 0, 0,
		},
		bs,
	)
}

func TestDecodeEntry(t *testing.T) {
	expected := Entry{Number: 7, Size: 70000, NameLength: 12}
	reader := lbytes.NewBytesReader(EncodeEntry(expected))
	actual, err := DecodeEntry(reader)
	require.NoError(t, err)
	assert.Equal(t, expected, *actual)
	assert.Equal(t, int64(DefaultEntrySize), reader.Offset())
}

func TestDecodeEntry_Truncated(t *testing.T) {
	reader := lbytes.NewBytesReader([]byte{1, 0, 0, 0, 2, 0})
	_, err := DecodeEntry(reader)
	assert.True(t, errors.Is(err, lbytes.ErrShortStream))
}

func TestCalculateBlockLength(t *testing.T) {
	entry := Entry{Number: 1, Size: 2, NameLength: 5}
	assert.Equal(t, int64(7), entry.SkipLength())
	assert.Equal(t, int64(19), CalculateBlockLength(entry))
}
