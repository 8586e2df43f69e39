//go:build unix
// +build unix

// File: rawio/copy.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0

package rawio

import "io"

// defaultCopyBufSize is used when DirectCopy gets a non-positive buffer
// size.
const defaultCopyBufSize = 32 * 1024

// DirectCopy reads src to end of file and writes everything to dst,
// returning the byte count that reached dst. Short writes are retried
// until the chunk is fully written; a zero-length write aborts with
// io.ErrShortWrite.
func DirectCopy(src, dst *RawIO, bufSize int) (int64, error) {
	if bufSize <= 0 {
		bufSize = defaultCopyBufSize
	}
	buf := make([]byte, bufSize)
	var total int64
	for {
		n, err := src.Read(buf)
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
		written := 0
		for written < n {
			w, err := dst.Write(buf[written:n])
			if err != nil {
				return total + int64(written), err
			}
			if w == 0 {
				return total + int64(written), io.ErrShortWrite
			}
			written += w
		}
		total += int64(n)
	}
}
