package carousel

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlideByPage advances one full page per step
const SlideByPage = "page"

// SlideBy is the step size of a control click or autoplay tick,
// either a literal slide count or a full page.
type SlideBy struct {
	page  bool
	count int
}

// Slides returns a literal step size
func Slides(n int) SlideBy {
	return SlideBy{count: n}
}

// Page returns the step size that advances one full page
func Page() SlideBy {
	return SlideBy{page: true}
}

// IsPage reports whether the step advances a full page
func (s SlideBy) IsPage() bool {
	return s.page
}

// Resolve returns the step in slides for the given page size
func (s SlideBy) Resolve(item int) int {
	if s.page {
		return item
	}
	return s.count
}

// String renders the value the way it is written in config files
func (s SlideBy) String() string {
	if s.page {
		return SlideByPage
	}
	return strconv.Itoa(s.count)
}

// ParseSlideBy accepts an integer, a numeric string or "page"
func ParseSlideBy(v any) (SlideBy, error) {
	switch val := v.(type) {
	case nil:
		return Slides(1), nil
	case SlideBy:
		return val, nil
	case int:
		return Slides(val), nil
	case int64:
		return Slides(int(val)), nil
	case float64:
		if val != float64(int(val)) {
			return SlideBy{}, fmt.Errorf("slide_by must be a whole number, got %v", val)
		}
		return Slides(int(val)), nil
	case string:
		s := strings.TrimSpace(strings.ToLower(val))
		if s == SlideByPage {
			return Page(), nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return SlideBy{}, fmt.Errorf("slide_by must be a number or %q, got %q", SlideByPage, val)
		}
		return Slides(n), nil
	default:
		return SlideBy{}, fmt.Errorf("unsupported slide_by value %v (%T)", v, v)
	}
}

// Options configure a carousel. They are fixed once the engine is built.
type Options struct {
	Item               int           // slides per page
	Speed              time.Duration // transition duration
	Loop               bool
	Navigation         bool
	Control            bool
	ControlText        [2]string // prev, next
	PrevKeys           []string  // custom prev control, replaces the generated one
	NextKeys           []string  // custom next control, replaces the generated one
	SlideBy            SlideBy
	Autoplay           bool
	AutoplayTimeout    time.Duration
	AutoplayHoverPause bool
}

// DefaultOptions returns the documented defaults
func DefaultOptions() Options {
	return Options{
		Item:               1,
		Speed:              300 * time.Millisecond,
		Loop:               false,
		Navigation:         true,
		Control:            true,
		ControlText:        [2]string{"<", ">"},
		SlideBy:            Slides(1),
		Autoplay:           false,
		AutoplayTimeout:    3000 * time.Millisecond,
		AutoplayHoverPause: true,
	}
}

// Normalize fills values that have no meaningful zero with defaults.
func (o Options) Normalize() Options {
	def := DefaultOptions()
	if o.Item < 1 {
		o.Item = def.Item
	}
	if o.Speed < 0 {
		o.Speed = 0
	}
	if o.AutoplayTimeout <= 0 {
		o.AutoplayTimeout = def.AutoplayTimeout
	}
	if o.ControlText[0] == "" {
		o.ControlText[0] = def.ControlText[0]
	}
	if o.ControlText[1] == "" {
		o.ControlText[1] = def.ControlText[1]
	}
	if !o.SlideBy.page && o.SlideBy.count == 0 {
		o.SlideBy = def.SlideBy
	}
	return o
}
