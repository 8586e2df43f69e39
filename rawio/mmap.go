//go:build unix
// +build unix

// File: rawio/mmap.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Memory-mapped regions, file-backed or anonymous.

package rawio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mmap is a mapped memory region. File-backed mappings keep an owned
// duplicate of the descriptor until Close.
type Mmap struct {
	data []byte
	io   *RawIO
}

// MapFile maps length bytes of f starting at offset zero. The mapping
// is MAP_SHARED, so writes through Bytes land in the file. The
// descriptor is duplicated; f may be closed while the mapping lives.
func MapFile(f *os.File, length int, writable bool) (*Mmap, error) {
	rio, err := FromFile(f)
	if err != nil {
		return nil, err
	}
	prot := unix.PROT_READ
	if writable {
		prot |= unix.PROT_WRITE
	}
	data, err := unix.Mmap(rio.Fd(), 0, length, prot, unix.MAP_SHARED)
	if err != nil {
		rio.Close()
		return nil, fmt.Errorf("Mmap: %w", err)
	}
	return &Mmap{data: data, io: rio}, nil
}

// MapAnonymous maps length bytes of zeroed private memory not backed by
// any file.
func MapAnonymous(length int) (*Mmap, error) {
	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("Mmap: %w", err)
	}
	return &Mmap{data: data}, nil
}

// Bytes returns the mapped region. The slice dies with Close.
func (m *Mmap) Bytes() []byte {
	return m.data
}

// Len returns the mapping length in bytes.
func (m *Mmap) Len() int {
	return len(m.data)
}

// Advise passes an access-pattern hint (unix.MADV_*) to the kernel.
func (m *Mmap) Advise(advice int) error {
	if err := unix.Madvise(m.data, advice); err != nil {
		return fmt.Errorf("Madvise: %w", err)
	}
	return nil
}

// Sync flushes mapped pages with the given unix.MS_* flags.
func (m *Mmap) Sync(flags int) error {
	if err := unix.Msync(m.data, flags); err != nil {
		return fmt.Errorf("Msync: %w", err)
	}
	return nil
}

// Close unmaps the region and releases the owned descriptor, if any.
// Safe to call more than once.
func (m *Mmap) Close() error {
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	var err error
	if e := unix.Munmap(data); e != nil {
		err = fmt.Errorf("Munmap: %w", e)
	}
	if m.io != nil {
		if cerr := m.io.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
