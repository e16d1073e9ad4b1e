package carousel

import (
	"errors"
	"time"

	"slidex/internal/domain"
)

// ErrNoSlides is returned when a carousel is built without content
var ErrNoSlides = errors.New("carousel has no slides")

// Phase is the transition state of the engine
type Phase int

const (
	Idle Phase = iota
	Animating
)

func (p Phase) String() string {
	if p == Animating {
		return "animating"
	}
	return "idle"
}

// TransitionPlan describes an accepted move. The runtime shows Visual with an
// animated transition and hands the plan back to Complete after Duration.
type TransitionPlan struct {
	ID              int
	From            int
	Visual          int
	Corrected       int // equal to Visual when no correction is needed
	NeedsCorrection bool
	Duration        time.Duration
}

// Engine owns the slide collection, the current index and the transition gate.
// It never schedules anything itself.
type Engine struct {
	opts     Options
	slides   []domain.Slide
	real     int
	current  int
	phase    Phase
	planSeq  int
	inflight int
}

// New builds an engine over the given slides. In loop mode the collection is
// extended with Item clones on each side.
func New(slides []domain.Slide, opts Options) (*Engine, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	opts = opts.Normalize()

	e := &Engine{
		opts: opts,
		real: len(slides),
	}
	if opts.Loop {
		e.slides = extend(slides, opts.Item)
		e.current = opts.Item
	} else {
		e.slides = append([]domain.Slide(nil), slides...)
	}
	return e, nil
}

// extend returns [clones of the last item slides] + slides + [clones of the first item slides].
// Clone indexes wrap so each side always holds exactly item slides.
func extend(slides []domain.Slide, item int) []domain.Slide {
	n := len(slides)
	out := make([]domain.Slide, 0, n+2*item)
	for i := 0; i < item; i++ {
		out = append(out, slides[mod(n-item+i, n)].Copy())
	}
	out = append(out, slides...)
	for i := 0; i < item; i++ {
		out = append(out, slides[i%n].Copy())
	}
	return out
}

// MoveSlide requests a move by step slides. It returns false and changes
// nothing while a transition is in flight.
func (e *Engine) MoveSlide(step int) (TransitionPlan, bool) {
	if e.phase == Animating {
		return TransitionPlan{}, false
	}
	e.phase = Animating
	e.planSeq++
	e.inflight = e.planSeq

	from := e.current
	e.current = clamp(e.current+step, 0, e.MaxIndex())

	plan := TransitionPlan{
		ID:        e.inflight,
		From:      from,
		Visual:    e.current,
		Corrected: e.current,
		Duration:  e.opts.Speed,
	}
	if corrected, ok := e.correction(e.current); ok {
		plan.Corrected = corrected
		plan.NeedsCorrection = true
	}
	return plan, true
}

// correction maps an index inside a clone region to the real index showing
// the same slide
func (e *Engine) correction(index int) (int, bool) {
	if !e.opts.Loop {
		return index, false
	}
	if index >= e.opts.Item && index < e.opts.Item+e.real {
		return index, false
	}
	return e.opts.Item + mod(index-e.opts.Item, e.real), true
}

// Complete finishes the transition described by plan. It applies the silent
// correction when one is due and always returns the engine to Idle. The
// returned bool reports whether a silent frame has to be drawn. Plans that
// are not the one in flight are ignored.
func (e *Engine) Complete(plan TransitionPlan) (Frame, bool) {
	if e.phase != Animating || plan.ID != e.inflight {
		return e.Frame(true), false
	}
	e.phase = Idle
	e.inflight = 0

	if !plan.NeedsCorrection {
		return e.Frame(true), false
	}
	e.current = plan.Corrected
	return e.Frame(true), true
}

// GoToPage moves to the first slide of a page through the same gate as MoveSlide
func (e *Engine) GoToPage(page int) (TransitionPlan, bool) {
	return e.MoveSlide(e.PageStart(page) - e.current)
}

// Next advances by the resolved step size
func (e *Engine) Next() (TransitionPlan, bool) {
	return e.MoveSlide(e.Step())
}

// Prev retreats by the resolved step size
func (e *Engine) Prev() (TransitionPlan, bool) {
	return e.MoveSlide(-e.Step())
}

// Step returns the resolved SlideBy
func (e *Engine) Step() int {
	return e.opts.SlideBy.Resolve(e.opts.Item)
}

// PageStart returns the collection index a page indicator jumps to
func (e *Engine) PageStart(page int) int {
	start := page * e.opts.Item
	if e.opts.Loop {
		start += e.opts.Item
	}
	return start
}

// MaxIndex is the last index at which a full page is still in view
func (e *Engine) MaxIndex() int {
	last := len(e.slides) - e.opts.Item
	if last < 0 {
		return 0
	}
	return last
}

// Options returns the normalised options
func (e *Engine) Options() Options { return e.opts }

// Current returns the index into the (possibly extended) collection
func (e *Engine) Current() int { return e.current }

// Phase returns Idle or Animating
func (e *Engine) Phase() Phase { return e.phase }

// IsAnimating reports whether a transition is waiting for Complete
func (e *Engine) IsAnimating() bool { return e.phase == Animating }

// RealCount returns the number of non-clone slides
func (e *Engine) RealCount() int { return e.real }

// Len returns the collection length including clones
func (e *Engine) Len() int { return len(e.slides) }

// Slides returns a copy of the collection including clones
func (e *Engine) Slides() []domain.Slide { return append([]domain.Slide(nil), e.slides...) }

// PageCount returns the number of indicator pages
func (e *Engine) PageCount() int { return PageCount(e.real, e.opts.Item) }

// RealIndex returns the current position within the real slides
func (e *Engine) RealIndex() int { return RealIndex(e.current, e.opts.Item, e.real, e.opts.Loop) }

// ActivePage returns the page index the indicators highlight
func (e *Engine) ActivePage() int { return ActivePage(e.current, e.opts.Item, e.real, e.opts.Loop) }

// OffsetPercent returns the track shift for Current, in percent of the viewport
func (e *Engine) OffsetPercent() float64 { return Offset(e.current, e.opts.Item) }

// ShowNavigation reports whether page indicators should be rendered at all
func (e *Engine) ShowNavigation() bool { return e.opts.Navigation && e.real > e.opts.Item }

// Slide returns the collection entry at i
func (e *Engine) Slide(i int) (domain.Slide, bool) {
	if i < 0 || i >= len(e.slides) {
		return domain.Slide{}, false
	}
	return e.slides[i], true
}

// Visible returns the slides currently in view, at most Item of them
func (e *Engine) Visible() []domain.Slide {
	end := e.current + e.opts.Item
	if end > len(e.slides) {
		end = len(e.slides)
	}
	return append([]domain.Slide(nil), e.slides[e.current:end]...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
