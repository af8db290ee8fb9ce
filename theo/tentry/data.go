package tentry

type (
	// Entry precedes the name and the payload of every archived file.
	Entry struct {
		Number     uint32 `json:"number"`
		Size       uint32 `json:"size"`
		NameLength uint32 `json:"name_length"`
	}
)

const (
	DefaultEntrySize = 12
)

// SkipLength is how many bytes follow the record before the next one starts.
func (e Entry) SkipLength() int64 {
	return int64(e.NameLength) + int64(e.Size)
}
