//go:build unix
// +build unix

// File: rawio/rawio.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Thin wrappers over raw file descriptors. Callers manage lifetimes
// explicitly; nothing here retries on EINTR.

package rawio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// RawIO wraps a raw file descriptor. When owned, Close releases the
// descriptor; otherwise Close is a no-op and the originator keeps
// responsibility for it.
type RawIO struct {
	fd    int
	owned bool
}

// NewRawIO wraps an existing descriptor. Pass owned=true to transfer
// ownership so Close releases it.
func NewRawIO(fd int, owned bool) *RawIO {
	return &RawIO{fd: fd, owned: owned}
}

// FromFile duplicates the file's descriptor and returns an owned RawIO.
// The os.File stays independent and may be closed without affecting the
// duplicate.
func FromFile(f *os.File) (*RawIO, error) {
	fd, err := unix.Dup(int(f.Fd()))
	if err != nil {
		return nil, fmt.Errorf("Dup: %w", err)
	}
	return &RawIO{fd: fd, owned: true}, nil
}

// Fd returns the underlying descriptor. After an owned RawIO is closed
// it returns -1.
func (r *RawIO) Fd() int {
	return r.fd
}

// Read reads up to len(p) bytes at the current file offset. A zero
// count with a nil error means end of file.
func (r *RawIO) Read(p []byte) (int, error) {
	n, err := unix.Read(r.fd, p)
	if err != nil {
		return 0, fmt.Errorf("Read: %w", err)
	}
	return n, nil
}

// Write writes up to len(p) bytes at the current file offset and
// returns the count actually written.
func (r *RawIO) Write(p []byte) (int, error) {
	n, err := unix.Write(r.fd, p)
	if err != nil {
		return 0, fmt.Errorf("Write: %w", err)
	}
	return n, nil
}

// Pread reads at the given offset without moving the file cursor.
func (r *RawIO) Pread(p []byte, offset int64) (int, error) {
	n, err := unix.Pread(r.fd, p, offset)
	if err != nil {
		return 0, fmt.Errorf("Pread: %w", err)
	}
	return n, nil
}

// Pwrite writes at the given offset without moving the file cursor.
func (r *RawIO) Pwrite(p []byte, offset int64) (int, error) {
	n, err := unix.Pwrite(r.fd, p, offset)
	if err != nil {
		return 0, fmt.Errorf("Pwrite: %w", err)
	}
	return n, nil
}

// Readv fills the buffers in order from a single readv call and returns
// the total byte count.
func (r *RawIO) Readv(bufs [][]byte) (int, error) {
	n, err := unix.Readv(r.fd, bufs)
	if err != nil {
		return 0, fmt.Errorf("Readv: %w", err)
	}
	return n, nil
}

// Writev writes the buffers in order in a single writev call and
// returns the total byte count.
func (r *RawIO) Writev(bufs [][]byte) (int, error) {
	n, err := unix.Writev(r.fd, bufs)
	if err != nil {
		return 0, fmt.Errorf("Writev: %w", err)
	}
	return n, nil
}

// Seek moves the file cursor per whence (io.SeekStart, io.SeekCurrent,
// io.SeekEnd) and returns the new offset.
func (r *RawIO) Seek(offset int64, whence int) (int64, error) {
	off, err := unix.Seek(r.fd, offset, whence)
	if err != nil {
		return 0, fmt.Errorf("Seek: %w", err)
	}
	return off, nil
}

// Sync flushes file data and metadata to stable storage.
func (r *RawIO) Sync() error {
	if err := unix.Fsync(r.fd); err != nil {
		return fmt.Errorf("Fsync: %w", err)
	}
	return nil
}

// Truncate resizes the file to length bytes.
func (r *RawIO) Truncate(length int64) error {
	if err := unix.Ftruncate(r.fd, length); err != nil {
		return fmt.Errorf("Ftruncate: %w", err)
	}
	return nil
}

// Close releases the descriptor if owned. Safe to call more than once;
// a borrowed descriptor is never closed.
func (r *RawIO) Close() error {
	if !r.owned || r.fd < 0 {
		return nil
	}
	fd := r.fd
	r.fd = -1
	if err := unix.Close(fd); err != nil {
		return fmt.Errorf("Close: %w", err)
	}
	return nil
}
