//go:build !windows
// +build !windows

package fs

import (
	"io"
	"os"
)

type osFile struct {
	*os.File
}

// Open opens the file or device at path for reading.
func Open(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &osFile{f}, nil
}

func (f *osFile) Size() (int64, error) {
	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if fi.Mode().IsRegular() {
		return fi.Size(), nil
	}
	// Block devices report a zero size from Stat: seek to the end instead.
	return f.Seek(0, io.SeekEnd)
}
