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

import "bytes"

// zipSignature is the standard 4-byte local file header magic of a ZIP archive.
var zipSignature = []byte{'P', 'K', 0x03, 0x04}

// Entry name fragments expected inside an OOXML workbook. ZIP local file
// headers store entry names in the clear, so scanning the prefix window for
// these fragments is enough to tell a workbook from a plain archive without
// walking the central directory.
var xlsxEntryPatterns = [][]byte{
	[]byte("xl/worksheets"),
	[]byte("xl/_rels"),
	[]byte("docProps/"),
	[]byte("[Content_Types]"),
	[]byte("xl/workbook"),
	[]byte("xl/styles"),
	[]byte("xl/theme"),
	[]byte("xl/strings"),
	[]byte("xl/charts"),
	[]byte("xl/drawings"),
	[]byte("xl/sharedStrings"),
	[]byte("xl/metadata"),
	[]byte("xl/calc"),
}

// Member extensions of a zipped shapefile bundle (.shp plus its sidecars).
var shapefileEntryPatterns = [][]byte{
	[]byte(".shp"),
	[]byte(".dbf"),
	[]byte(".prj"),
	[]byte(".shx"),
}

var zipRule = Rule{
	Name:        "zip",
	Description: "ZIP container (OOXML workbook or zipped Shapefile)",
	Signatures:  [][]byte{zipSignature},
	Sniff:       sniffZip,
}

// sniffZip classifies a ZIP container by the entry names visible in the
// prefix window. A ZIP exhibiting both workbook and shapefile markers is
// ambiguous and stays unrecognized, as does a plain archive.
func sniffZip(w *Window) FileType {
	if !w.MatchPrefix(zipSignature) {
		return Unknown
	}
	body := w.Prefix()[len(zipSignature):]

	isExcel := containsAny(body, xlsxEntryPatterns)
	isShapefile := containsAny(body, shapefileEntryPatterns)

	switch {
	case isExcel && !isShapefile:
		return Excel
	case isShapefile && !isExcel:
		return Shapefile
	}
	return Unknown
}

func containsAny(data []byte, patterns [][]byte) bool {
	for _, pattern := range patterns {
		if bytes.Contains(data, pattern) {
			return true
		}
	}
	return false
}
