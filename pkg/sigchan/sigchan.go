// Package sigchan provides a non-blocking signal channel for waking up a
// worker loop without accumulating duplicate signals.
package sigchan

type Chan chan struct{}

func New(cap int) Chan {
	return make(Chan, cap)
}

// Emit sends a signal without blocking. If the channel buffer is full, the
// receiver already has a pending signal and the new one is dropped.
func (c Chan) Emit() {
	select {
	case c <- struct{}{}:
	default:
	}
}

func (c Chan) Close() {
	close(c)
}
