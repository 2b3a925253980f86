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

var (
	// arrowMagic brackets the Arrow IPC file format: the stream opens and
	// closes with the same 6-byte marker.
	arrowMagic = []byte("ARROW1")

	// arrowStreamOpener is the padded continuation marker at the start of
	// an Arrow IPC stream (as opposed to the file format).
	arrowStreamOpener = []byte{0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}
)

var arrowRule = Rule{
	Name:        "arrow",
	Description: "Apache Arrow IPC file or stream",
	Signatures: [][]byte{
		arrowMagic,
		arrowStreamOpener,
	},
	Sniff: sniffArrow,
}

func sniffArrow(w *Window) FileType {
	// File format: magic at both ends.
	if w.MatchPrefix(arrowMagic) && w.MatchFooter(arrowMagic) {
		return Arrow
	}
	if w.MatchPrefix(arrowStreamOpener) {
		return Arrow
	}
	return Unknown
}
