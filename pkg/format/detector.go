// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package format

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ostafen/sniff/internal/fs"
)

// Detector runs the rules of a Registry against byte sources.
//
// Detection is a pure function of the bytes read: a Detector holds no
// per-call state and may be shared freely between goroutines.
type Detector struct {
	log *slog.Logger
	reg *Registry
}

// NewDetector creates a Detector over the given registry.
// A nil logger disables rule tracing; a nil registry selects the
// built-in DefaultRules.
func NewDetector(logger *slog.Logger, reg *Registry) *Detector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Detector{
		log: logger,
		reg: reg,
	}
}

// Detect reads the bounded prefix and footer windows of src and returns the
// detected FileType. Unrecognized content yields Unknown with a nil error;
// a non-nil error is only returned when the source itself cannot be read.
func (d *Detector) Detect(src io.ReaderAt, size int64) (FileType, error) {
	w, err := NewWindow(src, size)
	if err != nil {
		return Unknown, err
	}
	return d.DetectWindow(w), nil
}

// DetectBytes detects the format of an in-memory byte slice.
func (d *Detector) DetectBytes(data []byte) FileType {
	return d.DetectWindow(WindowFromBytes(data))
}

// DetectWindow evaluates the candidate rules against an already-built
// window, in registry order, returning the verdict of the first rule
// that matches.
func (d *Detector) DetectWindow(w *Window) FileType {
	for _, i := range d.reg.candidates(w.Prefix()) {
		rule := d.reg.rules[i]

		t := rule.Sniff(w)
		d.log.Debug("rule evaluated", "rule", rule.Name, "type", t.String())

		if t != Unknown {
			return t
		}
	}
	return Unknown
}

// DetectFile opens the file (or raw volume) at path, detects its format from
// its content and closes it. When content detection yields Unknown, the file
// extension is consulted as a last resort for the text formats which may lack
// any structural marker (.csv, .json/.geojson).
func (d *Detector) DetectFile(path string) (FileType, error) {
	f, err := fs.Open(path)
	if err != nil {
		return Unknown, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	size, err := f.Size()
	if err != nil {
		return Unknown, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	w, err := NewWindow(f, size)
	if err != nil {
		return Unknown, err
	}

	if t := d.DetectWindow(w); t != Unknown {
		return t, nil
	}
	return detectByExt(path, w), nil
}

// detectByExt is the extension fallback for otherwise unrecognized content.
// It never overrides a content-based verdict.
func detectByExt(path string, w *Window) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return Csv
	case ".json", ".geojson":
		if p := bytes.TrimLeft(w.Prefix(), " \t\r\n"); len(p) > 0 && (p[0] == '{' || p[0] == '[') {
			return Geojson
		}
	}
	return Unknown
}

var defaultRegistry = NewRegistry(DefaultRules...)

// DefaultRegistry returns the process-wide registry of built-in rules.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

var defaultDetector = NewDetector(nil, nil)

// Detect runs the default detector against src. See Detector.Detect.
func Detect(src io.ReaderAt, size int64) (FileType, error) {
	return defaultDetector.Detect(src, size)
}

// DetectBytes runs the default detector against an in-memory byte slice.
func DetectBytes(data []byte) FileType {
	return defaultDetector.DetectBytes(data)
}

// DetectFile runs the default detector against the file at path.
// See Detector.DetectFile.
func DetectFile(path string) (FileType, error) {
	return defaultDetector.DetectFile(path)
}
