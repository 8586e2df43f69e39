// File: executor/errors.go
// Author: wyattgill9 <wyattgill9@gmail.com>

package executor

import "fmt"

// ErrSaturated reports a Submit that found the worker ring full while
// the global overflow queue is disabled.
var ErrSaturated = fmt.Errorf("executor: all queues full")
