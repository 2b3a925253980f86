package format_test

import (
	"testing"

	"github.com/ostafen/sniff/pkg/format"
	"github.com/stretchr/testify/require"
)

func constRule(name string, ft format.FileType, sigs ...[]byte) format.Rule {
	return format.Rule{
		Name:       name,
		Signatures: sigs,
		Sniff: func(w *format.Window) format.FileType {
			for _, sig := range sigs {
				if w.MatchPrefix(sig) {
					return ft
				}
			}
			if len(sigs) == 0 {
				return ft
			}
			return format.Unknown
		},
	}
}

func TestRegistryOrderResolvesTies(t *testing.T) {
	// Both rules match any input: the first registered one must win.
	reg := format.NewRegistry(
		constRule("first", format.Png),
		constRule("second", format.Csv),
	)
	d := format.NewDetector(nil, reg)

	require.Equal(t, format.Png, d.DetectBytes([]byte("anything")))
}

func TestRegistrySignatureGating(t *testing.T) {
	reg := format.NewRegistry(
		constRule("magic", format.Excel, []byte("XYZ")),
		constRule("fallback", format.Csv),
	)
	d := format.NewDetector(nil, reg)

	// The signature rule has priority when its magic matches...
	require.Equal(t, format.Excel, d.DetectBytes([]byte("XYZdata")))

	// ...and is skipped entirely otherwise.
	require.Equal(t, format.Csv, d.DetectBytes([]byte("ABCdata")))
}

func TestRegistryOverlappingSignatures(t *testing.T) {
	// One signature is a prefix of the other: both rules are candidates,
	// and priority still decides.
	reg := format.NewRegistry(
		constRule("long", format.Arrow, []byte("ABCD")),
		constRule("short", format.Png, []byte("AB")),
	)
	d := format.NewDetector(nil, reg)

	require.Equal(t, format.Arrow, d.DetectBytes([]byte("ABCDEF")))
	require.Equal(t, format.Png, d.DetectBytes([]byte("ABxxxx")))
}

func TestRegistrySignatureCount(t *testing.T) {
	require.Equal(t, format.DefaultRegistry().Signatures(), countSignatures(format.DefaultRules))
}

func countSignatures(rules []format.Rule) int {
	n := 0
	for _, r := range rules {
		n += len(r.Signatures)
	}
	return n
}

func TestDefaultRulesOrder(t *testing.T) {
	rules := format.DefaultRegistry().Rules()
	require.NotEmpty(t, rules)

	// Heuristic (signature-less) rules must never precede signature rules,
	// except for the footer-based parquet rule which ranks above the
	// container prefixes it is independent of.
	require.Equal(t, "csv", rules[len(rules)-1].Name)
	require.Equal(t, "geojson", rules[len(rules)-2].Name)
}
