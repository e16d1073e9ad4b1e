package logic

import (
	"slidex/internal/carousel"
)

// Indicator is one page dot
type Indicator struct {
	Page   int
	Active bool
}

// Navigator projects engine position onto page indicators. It only reads
// from the engine; clicks are turned into engine moves by the caller.
type Navigator struct {
	engine     *carousel.Engine
	indicators []Indicator
}

// NewNavigator creates one indicator per page with the first page active
func NewNavigator(engine *carousel.Engine) *Navigator {
	n := &Navigator{engine: engine}
	if !engine.ShowNavigation() {
		return n
	}
	n.indicators = make([]Indicator, engine.PageCount())
	for i := range n.indicators {
		n.indicators[i] = Indicator{Page: i, Active: i == 0}
	}
	return n
}

// Visible reports whether indicators are rendered at all
func (n *Navigator) Visible() bool {
	return len(n.indicators) > 0
}

// Indicators returns a copy of the current indicator state
func (n *Navigator) Indicators() []Indicator {
	return append([]Indicator(nil), n.indicators...)
}

// Apply refreshes the indicators from a frame. Silent frames are skipped:
// the correction jumps to an index the indicators already show.
func (n *Navigator) Apply(frame carousel.Frame) {
	if !frame.RefreshNav {
		return
	}
	n.Refresh()
}

// Refresh marks exactly one indicator active, the page containing the
// engine's real index
func (n *Navigator) Refresh() {
	active := n.engine.ActivePage()
	for i := range n.indicators {
		n.indicators[i].Active = i == active
	}
}

// Active returns the active page, -1 when nothing is rendered
func (n *Navigator) Active() int {
	for _, ind := range n.indicators {
		if ind.Active {
			return ind.Page
		}
	}
	return -1
}

// Target returns the collection index a click on page jumps to
func (n *Navigator) Target(page int) (int, bool) {
	if page < 0 || page >= len(n.indicators) {
		return 0, false
	}
	return n.engine.PageStart(page), true
}
