//go:build unix && !linux
// +build unix,!linux

// File: rawio/splice_stub.go
// Author: wyattgill9 <wyattgill9@gmail.com>
//
// Stubs for the kernel-side copy paths not available off Linux.

package rawio

import (
	"fmt"

	"github.com/wyattgill9/utils/api"
)

// Allocate is only available on Linux.
func (r *RawIO) Allocate(offset, length int64) error {
	return fmt.Errorf("Fallocate: %w", api.ErrNotSupported)
}

// SpliceCopy is only available on Linux.
func SpliceCopy(src, dst *RawIO, length int64) (int64, error) {
	return 0, fmt.Errorf("Splice: %w", api.ErrNotSupported)
}
