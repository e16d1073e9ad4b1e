package carousel

import (
	"fmt"
	"time"
)

// TransitionNone is the transition of a silent frame
const TransitionNone = "none"

// Frame is the visual state the render layer draws. Building one never
// mutates the engine, so it can be called as often as needed.
type Frame struct {
	Index         int
	OffsetPercent float64
	Transition    string
	Duration      time.Duration
	Instant       bool
	RefreshNav    bool // false on silent frames, the indicators already show the right page
	ActivePage    int
}

// Frame projects the current state. Instant frames carry no transition and
// do not ask for an indicator refresh.
func (e *Engine) Frame(instant bool) Frame {
	f := Frame{
		Index:         e.current,
		OffsetPercent: e.OffsetPercent(),
		Instant:       instant,
		RefreshNav:    e.opts.Navigation && !instant,
		ActivePage:    e.ActivePage(),
	}
	if instant {
		f.Transition = TransitionNone
	} else {
		f.Transition = fmt.Sprintf("transform %dms ease", e.opts.Speed.Milliseconds())
		f.Duration = e.opts.Speed
	}
	return f
}

// Offset returns the track translation in percent of the viewport
func Offset(current, item int) float64 {
	if current == 0 {
		return 0
	}
	return -(float64(current) * (100 / float64(item)))
}

// PageCount returns the number of indicator pages for real slides
func PageCount(real, item int) int {
	if item < 1 || real < 1 {
		return 0
	}
	return (real + item - 1) / item
}

// RealIndex maps a collection index onto the real slides, removing the loop
// offset and wrapping clone positions.
func RealIndex(current, item, real int, loop bool) int {
	if !loop || real < 1 {
		return current
	}
	return mod(current-item, real)
}

// ActivePage returns the indicator page that contains current
func ActivePage(current, item, real int, loop bool) int {
	if item < 1 {
		return 0
	}
	return RealIndex(current, item, real, loop) / item
}
