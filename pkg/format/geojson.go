package format

import (
	"bytes"
	"strings"
)

// Top-level keys marking a GeoJSON document, per RFC 7946.
var geojsonMarkers = []string{
	`"featurecollection"`,
	`"feature"`,
	`"geometry"`,
}

var geojsonRule = Rule{
	Name:        "geojson",
	Description: "GeoJSON document",
	Sniff:       sniffGeoJSON,
}

// sniffGeoJSON matches text opening a JSON object which declares a "type"
// along with one of the GeoJSON markers. The check runs on the prefix window
// only, which is enough for any document whose header keys come first.
func sniffGeoJSON(w *Window) FileType {
	p := bytes.TrimLeft(w.Prefix(), " \t\r\n")
	if len(p) == 0 || p[0] != '{' {
		return Unknown
	}

	text := strings.ToLower(string(p))
	if !strings.Contains(text, `"type"`) {
		return Unknown
	}

	for _, marker := range geojsonMarkers {
		if strings.Contains(text, marker) {
			return Geojson
		}
	}
	return Unknown
}
