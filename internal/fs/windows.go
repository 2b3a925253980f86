//go:build windows
// +build windows

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
package fs

import (
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Open opens the file at path for reading. Device paths (\\.\C:, \\.\PhysicalDrive0)
// are opened as raw volumes, which require sector-aligned reads.
func Open(path string) (File, error) {
	if !strings.HasPrefix(path, `\\.\`) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		return &regularFile{f}, nil
	}

	handle, err := windows.CreateFile(
		windows.StringToUTF16Ptr(path),
		windows.GENERIC_READ,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	return &volumeFile{handle: handle}, nil
}

type regularFile struct {
	*os.File
}

func (f *regularFile) Size() (int64, error) {
	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// volumeFile reads from a raw disk or volume handle.
type volumeFile struct {
	handle windows.Handle
}

const volumeSectorSize = 512

// ReadAt reads from the volume at an arbitrary offset. Raw handles only
// accept sector-aligned reads, so the request is widened to sector
// boundaries and the extra bytes are discarded.
func (f *volumeFile) ReadAt(p []byte, off int64) (int, error) {
	alignedOffset := off / volumeSectorSize * volumeSectorSize
	alignmentDiff := int(off - alignedOffset)

	alignedSize := (len(p) + alignmentDiff + volumeSectorSize - 1) / volumeSectorSize * volumeSectorSize
	buf := make([]byte, alignedSize)

	var bytesRead uint32
	ov := new(windows.Overlapped)
	ov.Offset = uint32(alignedOffset)
	ov.OffsetHigh = uint32(alignedOffset >> 32)

	err := windows.ReadFile(f.handle, buf, &bytesRead, ov)
	if err != nil {
		if err == syscall.ERROR_IO_PENDING {
			err = windows.GetOverlappedResult(f.handle, ov, &bytesRead, true)
		}
		if err != nil {
			return 0, fmt.Errorf("aligned read failed: %w", err)
		}
	}

	if int(bytesRead) <= alignmentDiff {
		return 0, io.EOF
	}

	n := copy(p, buf[alignmentDiff:int(bytesRead)])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

type diskGeometry struct {
	Cylinders         int64
	MediaType         uint32
	TracksPerCylinder uint32
	SectorsPerTrack   uint32
	BytesPerSector    uint32
}

const ioctlDiskGetDriveGeometry = 0x70000

func (f *volumeFile) Size() (int64, error) {
	var geometry diskGeometry
	var bytesReturned uint32

	err := windows.DeviceIoControl(
		f.handle,
		ioctlDiskGetDriveGeometry,
		nil,
		0,
		(*byte)(unsafe.Pointer(&geometry)),
		uint32(unsafe.Sizeof(geometry)),
		&bytesReturned,
		nil,
	)
	if err != nil {
		return 0, fmt.Errorf("DeviceIoControl(IOCTL_DISK_GET_DRIVE_GEOMETRY) failed: %w", err)
	}

	size := geometry.Cylinders *
		int64(geometry.TracksPerCylinder) *
		int64(geometry.SectorsPerTrack) *
		int64(geometry.BytesPerSector)
	return size, nil
}

func (f *volumeFile) Close() error {
	return windows.CloseHandle(f.handle)
}
