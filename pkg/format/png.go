package format

// pngSignature is the fixed 8-byte header every PNG file starts with.
var pngSignature = []byte("\x89PNG\r\n\x1a\n")

var pngRule = Rule{
	Name:        "png",
	Description: "Portable Network Graphics",
	Signatures:  [][]byte{pngSignature},
	Sniff:       sniffPNG,
}

func sniffPNG(w *Window) FileType {
	if w.MatchPrefix(pngSignature) {
		return Png
	}
	return Unknown
}
