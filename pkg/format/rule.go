package format

// Rule associates a file format with the predicate used to recognize it.
//
// A Rule with a non-empty Signatures list only runs when one of its leading
// magics matches the source prefix; rules with no signatures (footer-based or
// heuristic ones) run on every detection call. Rules are read-only: they are
// defined once and shared across all calls.
type Rule struct {
	// Name is a short identifier for the rule, e.g. "png".
	Name string

	// Description is a human-readable description of the format.
	Description string

	// Signatures holds the fixed magic byte sequences the format may
	// start with. Empty for footer-based or heuristic rules.
	Signatures [][]byte

	// Sniff inspects the byte window and returns the detected FileType,
	// or Unknown when the window does not match.
	Sniff func(w *Window) FileType
}

// DefaultRules lists the built-in detection rules in priority order.
// Ordering is significant: narrow fixed-signature rules come first and
// permissive text heuristics come last, so that a container's magic bytes
// can never be shadowed by a loose heuristic. Evaluation stops at the
// first rule that matches.
var DefaultRules = []Rule{
	pngRule,
	arrowRule,
	parquetRule,
	geopackageRule,
	shapefileRule,
	excelRule,
	zipRule,
	geojsonRule,
	csvRule,
}
