package fs

import "io"

// File is a readable byte source with a known size.
// Both regular files and raw volumes satisfy it.
type File interface {
	io.ReaderAt
	io.Closer
	Size() (int64, error)
}
