//go:build linux
// +build linux

// File: rawio/splice_linux.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Kernel-side copy paths available only on Linux.

package rawio

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// spliceMaxChunk caps a single splice call; the kernel rejects larger
// requests.
const spliceMaxChunk = 0x7ffff000

// Allocate reserves disk space for the byte range without writing data.
func (r *RawIO) Allocate(offset, length int64) error {
	if err := unix.Fallocate(r.fd, 0, offset, length); err != nil {
		return fmt.Errorf("Fallocate: %w", err)
	}
	return nil
}

// SpliceCopy moves up to length bytes from src to dst inside the
// kernel; at least one side must be a pipe. Stops early when src
// drains, returning the bytes moved.
func SpliceCopy(src, dst *RawIO, length int64) (int64, error) {
	var total int64
	remaining := length
	for remaining > 0 {
		chunk := remaining
		if chunk > spliceMaxChunk {
			chunk = spliceMaxChunk
		}
		n, err := unix.Splice(src.fd, nil, dst.fd, nil, int(chunk), unix.SPLICE_F_MOVE)
		if err != nil {
			return total, fmt.Errorf("Splice: %w", err)
		}
		if n == 0 {
			break
		}
		total += n
		remaining -= n
	}
	return total, nil
}
