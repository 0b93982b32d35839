package frontdesk

import "sync"

// viewState guards a view's fields. Callers take a sequence number before a
// remote call and release the lock while it runs; apply later accepts the
// result only if no newer call has been applied.
type viewState struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
	closed  bool
}

// begin must be called with mu held.
func (v *viewState) begin() (uint64, error) {
	if v.closed {
		return 0, ErrViewClosed
	}
	v.issued++
	return v.issued, nil
}

// accept must be called with mu held. It reports whether the result of call
// seq may replace the view's state.
func (v *viewState) accept(seq uint64) (bool, error) {
	if v.closed {
		return false, ErrViewClosed
	}
	if seq <= v.applied {
		return false, nil
	}
	v.applied = seq
	return true, nil
}

// invalidate makes every call issued so far stale.
func (v *viewState) invalidate() {
	v.issued++
	v.applied = v.issued
}

func (v *viewState) close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
