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
package format_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ostafen/sniff/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestDetectBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want format.FileType
	}{
		{
			name: "png magic",
			data: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
			want: format.Png,
		},
		{
			name: "parquet magic at both ends",
			data: append(append([]byte("PAR1"), make([]byte, 128)...), []byte("PAR1")...),
			want: format.Parquet,
		},
		{
			name: "parquet bare footer",
			data: []byte("PAR1"),
			want: format.Parquet,
		},
		{
			name: "csv",
			data: []byte("a,b,c\n1,2,3\n"),
			want: format.Csv,
		},
		{
			name: "empty input",
			data: nil,
			want: format.Unknown,
		},
		{
			name: "random bytes",
			data: []byte{0x12, 0x34, 0x56, 0x78},
			want: format.Unknown,
		},
		{
			name: "legacy xls",
			data: []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1},
			want: format.Excel,
		},
		{
			name: "shapefile file code",
			data: []byte{0x00, 0x00, 0x27, 0x0A, 0x00, 0x00, 0x00, 0x00},
			want: format.Shapefile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, format.DetectBytes(tt.data))
		})
	}
}

func TestDetectParquetFooterIndependentOfPrefix(t *testing.T) {
	// Random-looking prefix, valid footer.
	data := bytes.Repeat([]byte{0xAB}, 256)
	data = append(data, []byte("PAR1")...)
	require.Equal(t, format.Parquet, format.DetectBytes(data))

	// Parquet-like prefix, no footer.
	data = append([]byte("PAR1"), make([]byte, 64)...)
	require.Equal(t, format.Unknown, format.DetectBytes(data))
}

func TestDetectIsDeterministic(t *testing.T) {
	samples := [][]byte{
		[]byte("a,b\n1,2\n"),
		[]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
		[]byte(`{"type":"FeatureCollection","features":[]}`),
		bytes.Repeat([]byte{0xCC}, 100),
	}

	for _, data := range samples {
		require.Equal(t, format.DetectBytes(data), format.DetectBytes(data))
	}
}

type errSource struct{}

func (errSource) ReadAt(p []byte, off int64) (int, error) {
	return 0, errors.New("source vanished")
}

func TestDetectUnreadableSource(t *testing.T) {
	_, err := format.Detect(errSource{}, 100)
	require.Error(t, err)
}

// trackingSource simulates a huge file ending with the Parquet footer,
// recording every byte range the detector reads.
type trackingSource struct {
	size  int64
	reads [][2]int64
}

func (s *trackingSource) ReadAt(p []byte, off int64) (int, error) {
	s.reads = append(s.reads, [2]int64{off, off + int64(len(p))})

	magic := []byte("PAR1")
	for i := range p {
		p[i] = 0

		if global := off + int64(i); global >= s.size-4 {
			p[i] = magic[global-(s.size-4)]
		}
	}
	return len(p), nil
}

func TestDetectReadsBoundedWindowsOnly(t *testing.T) {
	src := &trackingSource{size: 8 << 30} // 8GiB virtual source

	ft, err := format.Detect(src, src.size)
	require.NoError(t, err)
	require.Equal(t, format.Parquet, ft)

	require.NotEmpty(t, src.reads)
	for _, r := range src.reads {
		inPrefix := r[0] >= 0 && r[1] <= format.MaxPrefixWindow
		inFooter := r[0] >= src.size-format.MaxFooterWindow && r[1] <= src.size

		require.True(t, inPrefix || inFooter, "read outside bounded windows: [%d, %d)", r[0], r[1])
	}
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0644))
		return path
	}

	t.Run("content detection", func(t *testing.T) {
		path := writeFile("img.bin", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})

		ft, err := format.DetectFile(path)
		require.NoError(t, err)
		require.Equal(t, format.Png, ft)
	})

	t.Run("csv extension fallback", func(t *testing.T) {
		// Semicolon-delimited content does not pass the comma heuristic.
		path := writeFile("data.csv", []byte("a;b;c\n1;2;3\n"))

		ft, err := format.DetectFile(path)
		require.NoError(t, err)
		require.Equal(t, format.Csv, ft)
	})

	t.Run("geojson extension fallback", func(t *testing.T) {
		path := writeFile("plain.geojson", []byte(`{"crs": null}`))

		ft, err := format.DetectFile(path)
		require.NoError(t, err)
		require.Equal(t, format.Geojson, ft)
	})

	t.Run("extension never overrides content", func(t *testing.T) {
		path := writeFile("img.csv", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})

		ft, err := format.DetectFile(path)
		require.NoError(t, err)
		require.Equal(t, format.Png, ft)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile("empty.bin", nil)

		ft, err := format.DetectFile(path)
		require.NoError(t, err)
		require.Equal(t, format.Unknown, ft)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := format.DetectFile(filepath.Join(dir, "nope.bin"))
		require.Error(t, err)
	})
}
