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

// FileType identifies one of the file formats the detector knows about.
//
// The set of values is closed: detection always produces exactly one of them,
// with Unknown as the explicit verdict when no rule matches. Unknown is the
// zero value, so an uninitialized FileType never masquerades as a real format.
type FileType int

const (
	Unknown FileType = iota
	Geopackage
	Shapefile
	Geojson
	Excel
	Csv
	Parquet
	Arrow
	Png
)

func (t FileType) String() string {
	switch t {
	case Geopackage:
		return "Geopackage"
	case Shapefile:
		return "Shapefile"
	case Geojson:
		return "GeoJSON"
	case Excel:
		return "Excel"
	case Csv:
		return "CSV"
	case Parquet:
		return "Parquet"
	case Arrow:
		return "Arrow"
	case Png:
		return "PNG"
	default:
		return "Unknown"
	}
}

// Ext returns the canonical file extension for the format,
// or an empty string for Unknown.
func (t FileType) Ext() string {
	switch t {
	case Geopackage:
		return "gpkg"
	case Shapefile:
		return "shp"
	case Geojson:
		return "geojson"
	case Excel:
		return "xlsx"
	case Csv:
		return "csv"
	case Parquet:
		return "parquet"
	case Arrow:
		return "arrow"
	case Png:
		return "png"
	default:
		return ""
	}
}
