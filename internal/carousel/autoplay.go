package carousel

// Autoplay tracks the handle of the repeating autoplay timer. The runtime
// owns the actual clock; ticks carry the handle they were armed with and
// are dropped once it is no longer live.
type Autoplay struct {
	handle int
	seq    int
}

// Start arms a new handle. It is a no-op while a handle is live.
func (a *Autoplay) Start() (int, bool) {
	if a.handle != 0 {
		return a.handle, false
	}
	a.seq++
	a.handle = a.seq
	return a.handle, true
}

// Stop clears the live handle. It is a no-op when nothing is running.
func (a *Autoplay) Stop() bool {
	if a.handle == 0 {
		return false
	}
	a.handle = 0
	return true
}

// Running reports whether a handle is live
func (a *Autoplay) Running() bool {
	return a.handle != 0
}

// Handle returns the live handle, 0 when stopped
func (a *Autoplay) Handle() int {
	return a.handle
}

// Accept reports whether a tick armed with handle should still fire
func (a *Autoplay) Accept(handle int) bool {
	return handle != 0 && handle == a.handle
}
