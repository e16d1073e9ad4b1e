package ui

import (
	"time"

	"slidex/internal/carousel"
)

// transitionDoneMsg fires once the transition of plan has run for its duration
type transitionDoneMsg struct {
	plan carousel.TransitionPlan
}

// autoplayTickMsg is one tick of the autoplay timer armed with handle
type autoplayTickMsg struct {
	handle int
}

// animFrameMsg is sent on a timer while a transition is being drawn
type animFrameMsg time.Time

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
