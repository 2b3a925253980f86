package format

import "fmt"

var units = []struct {
	div    int64
	suffix string
}{
	{1 << 40, "TB"},
	{1 << 30, "GB"},
	{1 << 20, "MB"},
	{1 << 10, "KB"},
}

// FormatBytes renders a byte count with human-readable units,
// avoiding a trailing .00 for whole numbers.
func FormatBytes(b int64) string {
	for _, u := range units {
		if b < u.div {
			continue
		}

		val := float64(b) / float64(u.div)
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f%s", val, u.suffix)
		}
		return fmt.Sprintf("%.2f%s", val, u.suffix)
	}
	return fmt.Sprintf("%dB", b)
}
