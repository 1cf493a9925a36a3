package main

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"sync"

	"github.com/beevik/etree"

	"github.com/go-sketch/sketch/pkg/file"
	"github.com/go-sketch/sketch/pkg/host/memhost"
)

// diskFile adapts an on-disk path to the loader's raw-handle contract.
type diskFile struct {
	path string
}

func (f diskFile) Name() string { return filepath.Base(f.path) }

func (f diskFile) Size() int64 {
	fi, err := os.Stat(f.path)
	if err != nil {
		return 0
	}
	return fi.Size()
}

func (f diskFile) MIME() string { return mime.TypeByExtension(filepath.Ext(f.path)) }

func (f diskFile) Open() (io.ReadCloser, error) { return os.Open(f.path) }

func runProbe(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: sketch probe <file>...")
	}

	h := memhost.New()
	var wg sync.WaitGroup
	for _, path := range args {
		wg.Add(1)
		file.Load(h, diskFile{path: path}, func(f *file.File) {
			defer wg.Done()
			describe(f)
		})
	}
	wg.Wait()
	return nil
}

func describe(f *file.File) {
	mimeType := f.MIME()
	if mimeType == "" {
		mimeType = "unknown"
	}
	fmt.Printf("%s\t%s\t%d bytes\t%s", f.Name, mimeType, f.Size, payloadKind(f.Data))
	if f.Width > 0 || f.Height > 0 {
		fmt.Printf("\t%dx%d", f.Width, f.Height)
	}
	fmt.Println()
}

func payloadKind(data any) string {
	switch data.(type) {
	case nil:
		return "unreadable"
	case string:
		return "text"
	case *etree.Document:
		return "xml document"
	case file.DataURI:
		return "data uri"
	case *file.StreamRef:
		return "stream reference"
	default:
		return "json structure"
	}
}
