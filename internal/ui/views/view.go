package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"slidex/internal/domain"
	"slidex/internal/ui/logic"
)

const minContentHeight = 5

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width      int
	Height     int
	Title      string
	Strip      []domain.Slide // slides spanned by the current transition
	Shift      float64        // track offset into Strip, in slides
	Item       int
	ShowPrev   bool
	ShowNext   bool
	PrevText   string
	NextText   string
	Indicators []logic.Indicator
	Position   string
	Autoplay   string // "", "playing" or "paused"
	Status     string
	Help       string
}

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell x,y is inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout records where the clickable parts ended up
type Layout struct {
	Area  Rect // the carousel itself, used for hover pause
	Track Rect
	Prev  Rect
	Next  Rect
	Dots  []Rect
}

// DotAt returns the page of the indicator under x,y
func (l Layout) DotAt(x, y int) (int, bool) {
	for i, r := range l.Dots {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	slides *SlideRenderer
}

// NewRenderer creates a new renderer. theme is a glamour style name.
func NewRenderer(theme string) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		slides: NewSlideRenderer(styles, theme),
	}
}

// Render draws the carousel and returns the hit regions of its controls
func (r *Renderer) Render(vs ViewState) (string, Layout) {
	var layout Layout
	item := vs.Item
	if item < 1 {
		item = 1
	}

	helpLines := 0
	if vs.Help != "" {
		helpLines = lipgloss.Height(vs.Help)
	}
	navLines := 0
	if len(vs.Indicators) > 0 {
		navLines = 1
	}
	contentH := vs.Height - 1 - navLines - helpLines
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	prev := ""
	if vs.ShowPrev {
		prev = r.styles.Prev.Height(contentH).AlignVertical(lipgloss.Center).Render(vs.PrevText)
	}
	next := ""
	if vs.ShowNext {
		next = r.styles.Next.Height(contentH).AlignVertical(lipgloss.Center).Render(vs.NextText)
	}
	pw, nw := lipgloss.Width(prev), lipgloss.Width(next)

	cardW := (vs.Width - pw - nw) / item
	if cardW < 6 {
		cardW = 6
	}
	trackW := cardW * item

	track := r.renderTrack(vs.Strip, vs.Shift, cardW, contentH, trackW)
	content := r.styles.Content.Render(lipgloss.JoinHorizontal(lipgloss.Top, prev, track, next))
	contentW := pw + trackW + nw

	layout.Prev = Rect{X: 0, Y: 1, W: pw, H: contentH}
	layout.Track = Rect{X: pw, Y: 1, W: trackW, H: contentH}
	layout.Next = Rect{X: pw + trackW, Y: 1, W: nw, H: contentH}
	layout.Area = Rect{X: 0, Y: 1, W: contentW, H: contentH + navLines}

	sections := []string{r.renderHeader(vs, contentW), content}
	if navLines > 0 {
		nav, dots := r.renderNav(vs.Indicators, contentW, 1+contentH)
		layout.Dots = dots
		sections = append(sections, nav)
	}
	if helpLines > 0 {
		sections = append(sections, r.styles.Help.Render(vs.Help))
	}

	return r.styles.Wrapper.Render(strings.Join(sections, "\n")), layout
}

// renderHeader draws the deck title on the left and position/autoplay on the right
func (r *Renderer) renderHeader(vs ViewState, width int) string {
	right := vs.Position
	switch vs.Autoplay {
	case "playing":
		right += " " + r.styles.Playing.Render("▶ auto")
	case "paused":
		right += " " + r.styles.Paused.Render("⏸ auto")
	}
	if vs.Status != "" {
		right = r.styles.Status.Render(vs.Status) + "  " + right
	}

	rightW := lipgloss.Width(right)
	title := ansi.Truncate(vs.Title, max(width-rightW-1, 0), "…")
	left := r.styles.Header.Render(title)
	gap := width - lipgloss.Width(left) - rightW
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderTrack lays the strip out side by side and cuts the visible window
// starting shift slides in.
func (r *Renderer) renderTrack(strip []domain.Slide, shift float64, cardW, height, trackW int) string {
	if len(strip) == 0 {
		return lipgloss.NewStyle().Width(trackW).Height(height).Render("")
	}

	cards := make([]string, len(strip))
	for i, s := range strip {
		cards[i] = r.slides.Card(s, cardW, height)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	left := int(math.Round(shift * float64(cardW)))
	lines := strings.Split(row, "\n")
	for i, line := range lines {
		cut := ansi.Cut(line, left, left+trackW)
		if w := ansi.StringWidth(cut); w < trackW {
			cut += strings.Repeat(" ", trackW-w)
		}
		lines[i] = cut
	}
	return r.styles.Track.Render(strings.Join(lines, "\n"))
}

// renderNav draws one dot per page, centred under the track
func (r *Renderer) renderNav(indicators []logic.Indicator, width, y int) (string, []Rect) {
	dots := make([]string, len(indicators))
	for i, ind := range indicators {
		if ind.Active {
			dots[i] = r.styles.DotActive.Render("●")
		} else {
			dots[i] = r.styles.Dot.Render("○")
		}
	}
	row := strings.Join(dots, " ")
	pad := (width - lipgloss.Width(row)) / 2
	if pad < 0 {
		pad = 0
	}

	rects := make([]Rect, len(indicators))
	for i := range indicators {
		rects[i] = Rect{X: pad + 2*i, Y: y, W: 1, H: 1}
	}
	return r.styles.Nav.Render(strings.Repeat(" ", pad) + row), rects
}

// Position formats the 1-based real slide position
func Position(realIndex, real int) string {
	return fmt.Sprintf("%d/%d", realIndex+1, real)
}
