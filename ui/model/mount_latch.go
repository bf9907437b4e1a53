package model

import (
	"sync/atomic"
)

// MountLatch is a one-shot "already started" flag. The zero value is unset and usable.
// Atomic because mount may run on the UI thread while retries arrive from elsewhere.
type MountLatch struct{ started atomic.Bool }

// TryStart sets the latch and reports whether this call was the one that set it.
func (m *MountLatch) TryStart() bool {
	if m == nil {
		return false
	}
	return m.started.CompareAndSwap(false, true)
}

// Started reports whether the latch has been set.
func (m *MountLatch) Started() bool {
	if m == nil {
		return false
	}
	return m.started.Load()
}
