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

import "encoding/binary"

// SQLiteSignature is the 16-byte magic string opening every SQLite 3 database.
const SQLiteSignature = "SQLite format 3\x00"

// GeoPackage is an SQLite container carrying a dedicated application id.
// SQLite 3 Database Header (https://www.sqlite.org/fileformat2.html):
// -----------------------------------------
// Magic        (16 bytes)   "SQLite format 3\0" magic string
// ...
// AppID        (4 bytes)    Big-endian uint32 at offset 68; application ID
//
// The application id distinguishes a GeoPackage from a generic SQLite file:
// "GPKG" for version 1.2 and later, "GP10"/"GP11" for the older revisions.
const (
	sqliteAppIDOffset = 68

	gpkgAppID   = 0x47504B47 // "GPKG"
	gpkgAppID10 = 0x47503130 // "GP10"
	gpkgAppID11 = 0x47503131 // "GP11"
)

var geopackageRule = Rule{
	Name:        "gpkg",
	Description: "OGC GeoPackage (SQLite container)",
	Signatures: [][]byte{
		[]byte(SQLiteSignature),
	},
	Sniff: sniffGeopackage,
}

func sniffGeopackage(w *Window) FileType {
	p := w.Prefix()
	if !w.MatchPrefix([]byte(SQLiteSignature)) || len(p) < sqliteAppIDOffset+4 {
		return Unknown
	}

	switch binary.BigEndian.Uint32(p[sqliteAppIDOffset:]) {
	case gpkgAppID, gpkgAppID10, gpkgAppID11:
		return Geopackage
	}
	return Unknown
}
