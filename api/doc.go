// File: api/doc.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Public contracts for the utils library: lock-free container interfaces,
// pooling abstractions, executor contract, and shared error values.
// Concrete implementations live in lfs, pool, and executor; this package
// holds only types, interfaces, and errors so that consumers can depend on
// stable contracts without pulling in implementation details.
package api
