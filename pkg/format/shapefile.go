package format

// shapefileMagic is the ESRI shapefile file code (9994), stored big-endian
// at the start of the 100-byte main header.
var shapefileMagic = []byte{0x00, 0x00, 0x27, 0x0A}

var shapefileRule = Rule{
	Name:        "shp",
	Description: "ESRI Shapefile",
	Signatures:  [][]byte{shapefileMagic},
	Sniff:       sniffShapefile,
}

func sniffShapefile(w *Window) FileType {
	if w.MatchPrefix(shapefileMagic) {
		return Shapefile
	}
	return Unknown
}
