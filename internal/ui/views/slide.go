package views

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"slidex/internal/domain"
)

// SlideRenderer draws single slide cards. Markdown bodies go through glamour
// and are cached per slide ID and width, so clones render exactly like the
// slide they copy.
type SlideRenderer struct {
	styles *Styles
	theme  string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
	bodies    map[bodyKey]string
}

type bodyKey struct {
	id    string
	width int
}

// NewSlideRenderer creates a slide renderer using the given glamour theme.
// "auto" picks a style from the terminal background.
func NewSlideRenderer(styles *Styles, theme string) *SlideRenderer {
	if theme == "" {
		theme = "auto"
	}
	return &SlideRenderer{
		styles:    styles,
		theme:     theme,
		renderers: make(map[int]*glamour.TermRenderer),
		bodies:    make(map[bodyKey]string),
	}
}

// Card renders s into a bordered box exactly width cells wide and height lines tall
func (r *SlideRenderer) Card(s domain.Slide, width, height int) string {
	style := r.styles.Slide
	innerW := width - style.GetHorizontalFrameSize()
	innerH := height - style.GetVerticalFrameSize()
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	var lines []string
	if title := s.DisplayTitle(); title != "" {
		lines = append(lines, r.styles.Title.Render(runewidth.Truncate(title, innerW, "…")))
	}
	for _, line := range strings.Split(r.body(s, innerW), "\n") {
		if len(lines) >= innerH {
			break
		}
		lines = append(lines, ansi.Truncate(line, innerW, ""))
	}

	return style.
		Width(width - style.GetHorizontalBorderSize()).
		Height(height - style.GetVerticalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

// body returns the rendered markdown for s, trimmed of blank edges
func (r *SlideRenderer) body(s domain.Slide, width int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := bodyKey{id: s.ID, width: width}
	if out, ok := r.bodies[key]; ok {
		return out
	}

	// the title line is drawn by Card
	out := s.Body
	if s.Title != "" {
		out = strings.Replace(out, "# "+s.Title, "", 1)
	}
	if tr, err := r.renderer(width); err != nil {
		log.Debug("markdown renderer unavailable", "error", err)
	} else if rendered, err := tr.Render(out); err != nil {
		log.Debug("failed to render slide", "slide", s.ID, "error", err)
	} else {
		out = rendered
	}
	out = strings.Trim(out, "\n")
	r.bodies[key] = out
	return out
}

func (r *SlideRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.renderers[width]; ok {
		return tr, nil
	}

	style := glamour.WithStandardStyle(r.theme)
	if r.theme == "auto" {
		style = glamour.WithAutoStyle()
	}
	tr, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	r.renderers[width] = tr
	return tr, nil
}
