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
	"strings"
	"unicode/utf8"
)

const (
	// csvSampleLines is the number of leading lines whose delimiter counts
	// must agree for content to qualify as CSV.
	csvSampleLines = 5

	csvDelimiter = ','
)

var csvRule = Rule{
	Name:        "csv",
	Description: "Comma-separated values",
	Sniff:       sniffCSV,
}

// sniffCSV is the most permissive rule and must stay last in the registry:
// the sample qualifies when it is printable text whose leading lines all
// carry the same nonzero number of commas.
func sniffCSV(w *Window) FileType {
	sample := w.Prefix()
	if len(sample) == 0 {
		return Unknown
	}

	truncated := w.Size() > int64(len(sample))
	if truncated {
		sample = trimPartialRune(sample)
	}

	if !isPlainText(sample) {
		return Unknown
	}

	lines := strings.Split(string(sample), "\n")
	if last := len(lines) - 1; lines[last] == "" || truncated {
		// Drop the line cut off by the window (or the empty remainder
		// after a trailing newline), unless it is all we have.
		if last > 0 {
			lines = lines[:last]
		}
	}
	if len(lines) > csvSampleLines {
		lines = lines[:csvSampleLines]
	}

	want := strings.Count(lines[0], string(csvDelimiter))
	if want == 0 {
		return Unknown
	}

	for _, line := range lines[1:] {
		if strings.Count(line, string(csvDelimiter)) != want {
			return Unknown
		}
	}
	return Csv
}

// isPlainText reports whether the sample is valid UTF-8 free of control
// characters other than tab, carriage return and newline.
func isPlainText(sample []byte) bool {
	if !utf8.Valid(sample) {
		return false
	}
	return !bytes.ContainsFunc(sample, func(r rune) bool {
		return r < 0x20 && r != '\t' && r != '\r' && r != '\n'
	})
}

// trimPartialRune drops the trailing bytes of a multi-byte rune cut off
// by the window boundary.
func trimPartialRune(sample []byte) []byte {
	for i := 0; i < utf8.UTFMax && len(sample) > 0; i++ {
		r, size := utf8.DecodeLastRune(sample)
		if r != utf8.RuneError || size != 1 {
			return sample
		}
		sample = sample[:len(sample)-1]
	}
	return sample
}
