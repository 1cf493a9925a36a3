package file

import (
	"bytes"
	"encoding/json"
	"image"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/h2non/filetype"

	"github.com/go-sketch/sketch/pkg/errors"
	"github.com/go-sketch/sketch/pkg/host"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Load resolves a raw file handle into a File and hands it to done on
// the cooperative timeline. Audio and video content is wrapped in a
// revocable stream reference synchronously, without reading; everything
// else is read in the background and decoded by MIME type. done runs
// exactly once per call.
//
// A host without file APIs logs a warning and skips the operation; done
// never runs in that case.
func Load(h host.Host, raw Raw, done func(*File)) {
	if !h.Supports(host.FeatureFileAPI) {
		errors.Warn(&errors.Warning{
			Op:      "file.Load",
			Message: "the host has no file APIs; skipping " + raw.Name(),
		})
		return
	}
	if done == nil {
		done = func(*File) {}
	}

	f := &File{Name: raw.Name(), Size: raw.Size()}
	f.Type, f.Subtype = splitMIME(raw.MIME())

	// Playable content never gets read here: the reference wraps the
	// handle as-is and the host pipeline streams it later.
	if f.Type == "audio" || f.Type == "video" {
		f.Data = NewStreamRef(raw)
		deliver(done, f)
		return
	}

	go func() {
		defer errors.Recover("file.Load")
		content, err := readAll(raw)
		if err != nil {
			errors.Report(&errors.SketchError{
				Op:   "file.Load",
				Kind: errors.KindParsing,
				Err:  err,
			})
			deliver(done, f)
			return
		}
		resolve(f, content)
		deliver(done, f)
	}()
}

func readAll(raw Raw) ([]byte, error) {
	r, err := raw.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// resolve decodes content into f.Data according to the MIME
// classification, sniffing the type first when the handle did not carry
// one.
func resolve(f *File, content []byte) {
	if f.Type == "" {
		if kind, err := filetype.Match(content); err == nil && kind != filetype.Unknown {
			f.Type, f.Subtype = splitMIME(kind.MIME.Value)
		}
	}

	switch {
	case isJSON(f.Subtype):
		var v any
		if err := json.Unmarshal(content, &v); err != nil {
			reportParse(f.Name, err)
			f.Data = string(content)
			return
		}
		f.Data = v

	case isXML(f.Subtype):
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(content); err != nil {
			reportParse(f.Name, err)
			f.Data = string(content)
			return
		}
		f.Data = doc

	case f.Type == "text":
		f.Data = string(content)

	default:
		if f.Type == "image" {
			// Probe failures leave the dimensions at zero; the data URI
			// is still usable.
			if cfg, _, err := image.DecodeConfig(bytes.NewReader(content)); err == nil {
				f.Width, f.Height = cfg.Width, cfg.Height
			}
		}
		mime := f.MIME()
		if mime == "" {
			mime = "application/octet-stream"
		}
		f.Data = NewDataURI(mime, content)
	}
}

func isJSON(minor string) bool {
	return minor == "json" || strings.HasSuffix(minor, "+json")
}

func isXML(minor string) bool {
	return minor == "xml" || strings.HasSuffix(minor, "+xml")
}

func reportParse(name string, err error) {
	errors.Report(&errors.SketchError{
		Op:   "file.Load",
		Kind: errors.KindParsing,
		Node: name,
		Err:  err,
	})
}

func deliver(done func(*File), f *File) {
	run := func() { done(f) }
	if !host.Dispatch(run) {
		run()
	}
}
