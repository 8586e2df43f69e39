// File: rawio/doc.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0

// Package rawio exposes file descriptors and memory mappings with the
// thinnest possible wrappers over the raw system calls.
//
// Nothing here retries, buffers, or hides partial transfers: Read and
// Write report exactly what the kernel did, and a zero-byte read means
// end of file. The package exists for code that wants syscall-level
// control with Go-native error handling.
//
// The package is Unix-only. Allocate and SpliceCopy additionally need
// Linux; elsewhere they fail with api.ErrNotSupported.
package rawio
