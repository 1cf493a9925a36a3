package file

import (
	"encoding/base64"
	"strings"
)

// DataURI is a self-contained, loadable reference to binary content in
// RFC 2397 form: data:<mime>;base64,<payload>.
type DataURI string

// NewDataURI encodes content under the given MIME type.
func NewDataURI(mime string, content []byte) DataURI {
	return DataURI("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(content))
}

// MIME returns the embedded MIME type.
func (u DataURI) MIME() string {
	s := strings.TrimPrefix(string(u), "data:")
	if i := strings.IndexByte(s, ';'); i >= 0 {
		return s[:i]
	}
	return ""
}

// Bytes decodes the embedded content.
func (u DataURI) Bytes() ([]byte, error) {
	s := string(u)
	i := strings.IndexByte(s, ',')
	if i < 0 {
		return nil, base64.CorruptInputError(0)
	}
	return base64.StdEncoding.DecodeString(s[i+1:])
}
