// File: mem/doc.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0

// Package mem provides low-level memory helpers: page-aligned blocks
// mapped straight from the kernel, and unaligned typed access into
// arbitrary byte slices.
package mem
