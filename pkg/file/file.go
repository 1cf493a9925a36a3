// Package file ingests host-supplied files into typed payloads.
//
// Load classifies a raw file handle by MIME type and resolves a File
// whose Data field carries the decoded payload: JSON becomes a parsed
// structure, XML a document, other text a string, binary a base64 data
// URI, and audio or video a revocable stream reference that is wrapped
// synchronously without reading the content. The completion callback
// runs exactly once per input, on the cooperative timeline.
package file

import (
	"io"
	"strings"
)

// Raw is a file handle supplied by the host environment. Open returns
// the content for reading; implementations decide whether that hits a
// disk, a network or memory.
type Raw interface {
	Name() string
	Size() int64
	MIME() string
	Open() (io.ReadCloser, error)
}

// File is the resolved form of a raw file handle. Data is nil until the
// loader resolves and then holds one of: any (parsed JSON),
// *etree.Document (parsed XML), string (text), DataURI (binary) or
// *StreamRef (audio/video).
type File struct {
	Name    string
	Size    int64
	Type    string
	Subtype string
	Data    any

	// Width and Height are probed from image content; zero for
	// everything else.
	Width  int
	Height int
}

// MIME returns the reassembled type/subtype pair, or "" when the type
// could not be determined.
func (f *File) MIME() string {
	if f.Type == "" {
		return ""
	}
	return f.Type + "/" + f.Subtype
}

func splitMIME(m string) (string, string) {
	m = strings.TrimSpace(m)
	if i := strings.IndexByte(m, ';'); i >= 0 {
		m = strings.TrimSpace(m[:i])
	}
	major, minor, ok := strings.Cut(m, "/")
	if !ok {
		return "", ""
	}
	return strings.ToLower(major), strings.ToLower(minor)
}
