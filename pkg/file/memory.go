package file

import (
	"bytes"
	"io"
)

// MemoryFile is a Raw backed by an in-memory byte slice. Tests and
// headless callers use it in place of host file handles.
type MemoryFile struct {
	FileName string
	MIMEType string
	Content  []byte

	// OpenErr, when set, makes Open fail with it.
	OpenErr error
}

// Name returns the scripted file name.
func (f *MemoryFile) Name() string { return f.FileName }

// Size returns the content length.
func (f *MemoryFile) Size() int64 { return int64(len(f.Content)) }

// MIME returns the scripted MIME type.
func (f *MemoryFile) MIME() string { return f.MIMEType }

// Open returns a reader over the content, or OpenErr when scripted.
func (f *MemoryFile) Open() (io.ReadCloser, error) {
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	return io.NopCloser(bytes.NewReader(f.Content)), nil
}
