package format_test

import (
	"bytes"
	"testing"

	"github.com/ostafen/sniff/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 200) // 2000 bytes

	w, err := format.NewWindow(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	require.Equal(t, int64(len(data)), w.Size())
	require.Equal(t, data[:format.MaxPrefixWindow], w.Prefix())
	require.Equal(t, data[len(data)-format.MaxFooterWindow:], w.Footer())
}

func TestNewWindowShortSource(t *testing.T) {
	data := []byte("abcdef")

	w, err := format.NewWindow(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	require.Equal(t, data, w.Prefix())
	require.Equal(t, data, w.Footer())
}

func TestNewWindowEmptySource(t *testing.T) {
	w, err := format.NewWindow(bytes.NewReader(nil), 0)
	require.NoError(t, err)

	require.Empty(t, w.Prefix())
	require.Empty(t, w.Footer())
}

func TestWindowMatch(t *testing.T) {
	w := format.WindowFromBytes([]byte("HEADERbodyFOOTER"))

	require.True(t, w.MatchPrefix([]byte("HEADER")))
	require.False(t, w.MatchPrefix([]byte("FOOTER")))

	require.True(t, w.MatchFooter([]byte("FOOTER")))
	require.False(t, w.MatchFooter([]byte("HEADER")))

	// Longer than the source: never matches.
	require.False(t, w.MatchPrefix([]byte("HEADERbodyFOOTERandmore")))
}

func TestWindowFooterOverlapsPrefix(t *testing.T) {
	// When the whole source fits in the prefix window, the footer is a
	// view over the same snapshot.
	data := append(make([]byte, 100), []byte("PAR1")...)

	w := format.WindowFromBytes(data)
	require.True(t, w.MatchFooter([]byte("PAR1")))
}
