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
)

const (
	// MaxPrefixWindow is the number of leading bytes read from a source.
	// It is sized by the text heuristics (GeoJSON, CSV), which sample
	// up to 1KiB of content. Magic-byte rules need far less.
	MaxPrefixWindow = 1024

	// MaxFooterWindow is the number of trailing bytes read from a source,
	// sized by the longest trailing magic ("ARROW1").
	MaxFooterWindow = 16
)

// Window is a bounded, immutable snapshot of the leading and trailing bytes
// of a source. All detection rules operate on a Window, which keeps memory
// usage constant regardless of the source size: at most MaxPrefixWindow +
// MaxFooterWindow bytes are ever read.
//
// Once built, a Window does not reference the source it was read from.
type Window struct {
	size   int64
	prefix []byte
	footer []byte
}

// NewWindow reads the prefix and footer windows from r.
// Sources shorter than a window yield a shorter snapshot; an empty source
// yields an empty Window. A read failure is returned as is.
func NewWindow(r io.ReaderAt, size int64) (*Window, error) {
	if size < 0 {
		return nil, fmt.Errorf("invalid source size: %d", size)
	}

	w := &Window{size: size}
	if size == 0 {
		return w, nil
	}

	w.prefix = make([]byte, min(size, MaxPrefixWindow))
	if err := readFullAt(r, w.prefix, 0); err != nil {
		return nil, fmt.Errorf("failed to read prefix window: %w", err)
	}

	footerLen := min(size, MaxFooterWindow)
	if size <= MaxPrefixWindow {
		// The prefix snapshot already covers the whole source.
		w.footer = w.prefix[size-footerLen:]
		return w, nil
	}

	w.footer = make([]byte, footerLen)
	if err := readFullAt(r, w.footer, size-footerLen); err != nil {
		return nil, fmt.Errorf("failed to read footer window: %w", err)
	}
	return w, nil
}

// WindowFromBytes builds a Window over an in-memory byte slice.
// The slice is not copied: the caller must not modify it while the
// Window is in use.
func WindowFromBytes(data []byte) *Window {
	size := int64(len(data))
	return &Window{
		size:   size,
		prefix: data[:min(size, MaxPrefixWindow)],
		footer: data[size-min(size, MaxFooterWindow):],
	}
}

// Size returns the total size of the underlying source, which may
// exceed the number of bytes actually snapshotted.
func (w *Window) Size() int64 {
	return w.size
}

// Prefix returns the leading bytes of the source,
// at most MaxPrefixWindow long.
func (w *Window) Prefix() []byte {
	return w.prefix
}

// Footer returns the trailing bytes of the source,
// at most MaxFooterWindow long.
func (w *Window) Footer() []byte {
	return w.footer
}

// MatchPrefix reports whether the source starts with sig.
func (w *Window) MatchPrefix(sig []byte) bool {
	return len(w.prefix) >= len(sig) && bytes.Equal(w.prefix[:len(sig)], sig)
}

// MatchFooter reports whether the source ends with sig.
// Signatures longer than the footer window never match.
func (w *Window) MatchFooter(sig []byte) bool {
	return bytes.HasSuffix(w.footer, sig)
}

func readFullAt(r io.ReaderAt, buf []byte, off int64) error {
	n, err := r.ReadAt(buf, off)
	if n == len(buf) {
		// ReadAt may return io.EOF even when the buffer has been
		// fully populated.
		return nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return err
}
