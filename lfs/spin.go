// File: lfs/spin.go
// Author: wyattgill9
//
// Progressive yield hint for contended CAS retry loops.

package lfs

import "runtime"

// spinner spaces out failed CAS attempts. The first few retries stay on
// the CPU; after that each retry yields the goroutine's slice so a stalled
// peer can finish publishing.
type spinner int

const spinLimit = 4

func (s *spinner) spin() {
	if *s < spinLimit {
		*s++
		return
	}
	runtime.Gosched()
}
