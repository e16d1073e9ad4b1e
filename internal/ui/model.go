package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"slidex/internal/carousel"
	"slidex/internal/domain"
	"slidex/internal/eventbus"
	"slidex/internal/logging"
	"slidex/internal/ui/input"
	inputtypes "slidex/internal/ui/input/types"
	"slidex/internal/ui/logic"
	"slidex/internal/ui/views"
)

const frameInterval = time.Second / 30

// Autoplay states shown in the header
const (
	autoplayPlaying = "playing"
	autoplayPaused  = "paused"
)

// animation is the transition currently being drawn
type animation struct {
	plan  carousel.TransitionPlan
	start time.Time
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	logger *log.Logger
	engine *carousel.Engine
	title  string

	// UI-specific state
	width       int
	height      int
	help        help.Model
	status      string
	inPagerMode bool
	layout      views.Layout
	anim        *animation

	// autoplayOn is the user's intent; the timer itself may be paused by hover
	autoplay   carousel.Autoplay
	autoplayOn bool
	hovering   bool

	navigator    *logic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program

	now func() time.Time
}

// NewModel creates a new UI model around a built engine. theme is the glamour
// style used for slide bodies.
func NewModel(engine *carousel.Engine, title, theme string, bus eventbus.EventBus, logger *log.Logger) *Model {
	if logger == nil {
		logger = logging.NewNop()
	}
	opts := engine.Options()
	return &Model{
		bus:          bus,
		logger:       logger,
		engine:       engine,
		title:        title,
		help:         help.New(),
		autoplayOn:   opts.Autoplay,
		navigator:    logic.NewNavigator(engine),
		renderer:     views.NewRenderer(theme),
		inputHandler: input.New(input.NewKeyMap(opts)),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
		now:          time.Now,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init starts autoplay when it is configured
func (m *Model) Init() tea.Cmd {
	if m.autoplayOn {
		return m.startAutoplay()
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleKey(msg, m) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.BlurMsg:
		// The pointer has left the terminal, so it has left the carousel too
		return m, m.setHover(false)
	}

	return m.handleNonKeyboardMsg(msg)
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transitionDoneMsg:
		m.finishTransition(msg.plan)
		return m, nil

	case animFrameMsg:
		if m.anim == nil || m.inPagerMode {
			return m, nil
		}
		return m, animTick()

	case autoplayTickMsg:
		if !m.autoplay.Accept(msg.handle) {
			m.logger.Debug("dropping stale autoplay tick", "handle", msg.handle)
			return m, nil
		}
		return m, tea.Batch(m.move(m.engine.Step()), m.autoplayTick(msg.handle))

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Error("help pager failed", "error", msg.err)
			return m, m.setStatus(fmt.Sprintf("pager failed: %v", msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		if m.autoplay.Running() {
			m.stopAutoplay("pager")
		}
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		if m.autoplayOn && !(m.hovering && m.engine.Options().AutoplayHoverPause) {
			return m, m.startAutoplay()
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}
	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if a.Direction == "prev" {
			return m.move(-m.engine.Step())
		}
		return m.move(m.engine.Step())

	case inputtypes.GoToPageAction:
		return m.goToPage(a.Page)

	case inputtypes.ToggleAutoplayAction:
		return m.toggleAutoplay()

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		return nil

	case inputtypes.OpenHelpPagerAction:
		if m.program == nil {
			return m.setStatus("pager unavailable")
		}
		return m.fetchHelpPager()

	case inputtypes.QuitAction:
		m.stopAutoplay("quit")
		return tea.Quit
	}
	return nil
}

// move asks the engine for a move by step and starts drawing it
func (m *Model) move(step int) tea.Cmd {
	plan, ok := m.engine.MoveSlide(step)
	if !ok {
		m.logger.Debug("move rejected while animating", "step", step)
		m.publish(eventbus.MoveRejectedEvent{Step: step})
		return nil
	}
	return m.startTransition(plan)
}

// goToPage moves to the first slide of page through the same gate as move
func (m *Model) goToPage(page int) tea.Cmd {
	if _, ok := m.navigator.Target(page); !ok {
		return nil
	}
	plan, ok := m.engine.GoToPage(page)
	if !ok {
		m.logger.Debug("page jump rejected while animating", "page", page)
		m.publish(eventbus.MoveRejectedEvent{Step: m.engine.PageStart(page) - m.engine.Current()})
		return nil
	}
	return m.startTransition(plan)
}

// startTransition refreshes the indicators for the animated frame and
// schedules the completion after the plan's duration
func (m *Model) startTransition(plan carousel.TransitionPlan) tea.Cmd {
	frame := m.engine.Frame(false)
	m.navigator.Apply(frame)
	m.logger.Debug("transition", "from", plan.From, "to", plan.Visual, "transition", frame.Transition)
	m.publish(eventbus.SlideChangedEvent{From: plan.From, To: plan.Visual, ActivePage: frame.ActivePage})

	if plan.Duration <= 0 {
		return func() tea.Msg { return transitionDoneMsg{plan: plan} }
	}
	m.anim = &animation{plan: plan, start: m.now()}
	return tea.Batch(
		tea.Tick(plan.Duration, func(time.Time) tea.Msg { return transitionDoneMsg{plan: plan} }),
		animTick(),
	)
}

// finishTransition hands the plan back to the engine and applies the silent
// correction frame when one is due
func (m *Model) finishTransition(plan carousel.TransitionPlan) {
	if m.anim != nil && m.anim.plan.ID == plan.ID {
		m.anim = nil
	}
	frame, corrected := m.engine.Complete(plan)
	m.navigator.Apply(frame)
	if corrected {
		m.logger.Debug("loop corrected", "from", plan.Visual, "to", plan.Corrected)
		m.publish(eventbus.LoopCorrectedEvent{From: plan.Visual, To: plan.Corrected})
	}
}

func animTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return animFrameMsg(t)
	})
}

// startAutoplay arms the autoplay timer unless one is already live
func (m *Model) startAutoplay() tea.Cmd {
	handle, ok := m.autoplay.Start()
	if !ok {
		return nil
	}
	m.publish(eventbus.AutoplayStartedEvent{Timer: handle})
	return m.autoplayTick(handle)
}

// stopAutoplay cancels future ticks; a transition already running completes
func (m *Model) stopAutoplay(reason string) {
	if m.autoplay.Stop() {
		m.publish(eventbus.AutoplayStoppedEvent{Reason: reason})
	}
}

func (m *Model) autoplayTick(handle int) tea.Cmd {
	return tea.Tick(m.engine.Options().AutoplayTimeout, func(time.Time) tea.Msg {
		return autoplayTickMsg{handle: handle}
	})
}

func (m *Model) toggleAutoplay() tea.Cmd {
	if m.autoplayOn {
		m.autoplayOn = false
		m.stopAutoplay("toggled")
		return nil
	}
	m.autoplayOn = true
	if m.hovering && m.engine.Options().AutoplayHoverPause {
		return nil
	}
	return m.startAutoplay()
}

// setHover records whether the pointer is over the carousel. Entering pauses
// autoplay and leaving resumes it when hover pause is on.
func (m *Model) setHover(inside bool) tea.Cmd {
	if inside == m.hovering {
		return nil
	}
	m.hovering = inside
	// the pager owns the terminal; resumeRenderingMsg restarts autoplay
	if m.inPagerMode || !m.autoplayOn || !m.engine.Options().AutoplayHoverPause {
		return nil
	}
	if inside {
		m.stopAutoplay("hover")
		return nil
	}
	return m.startAutoplay()
}

// handleMouse tracks hover and turns clicks on controls and dots into moves
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	cmds := []tea.Cmd{m.setHover(m.layout.Area.Contains(msg.X, msg.Y))}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		switch {
		case m.layout.Prev.Contains(msg.X, msg.Y):
			cmds = append(cmds, m.move(-m.engine.Step()))
		case m.layout.Next.Contains(msg.X, msg.Y):
			cmds = append(cmds, m.move(m.engine.Step()))
		default:
			if page, ok := m.layout.DotAt(msg.X, msg.Y); ok {
				cmds = append(cmds, m.goToPage(page))
			}
		}
	}
	return tea.Batch(cmds...)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager() tea.Cmd {
	content := m.helpRenderer.Render(m.inputHandler.Keys(), m.engine.Options())
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) publish(event domain.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// PageCount implements the input context
func (m *Model) PageCount() int {
	return m.engine.PageCount()
}

// NavigationVisible implements the input context
func (m *Model) NavigationVisible() bool {
	return m.navigator.Visible()
}

// ControlsEnabled implements the input context
func (m *Model) ControlsEnabled() bool {
	return m.engine.Options().Control
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	opts := m.engine.Options()
	strip, shift := m.track()
	state := views.ViewState{
		Width:      m.width,
		Height:     m.height,
		Title:      m.title,
		Strip:      strip,
		Shift:      shift,
		Item:       opts.Item,
		ShowPrev:   opts.Control && len(opts.PrevKeys) == 0,
		ShowNext:   opts.Control && len(opts.NextKeys) == 0,
		PrevText:   opts.ControlText[0],
		NextText:   opts.ControlText[1],
		Indicators: m.navigator.Indicators(),
		Position:   views.Position(m.engine.RealIndex(), m.engine.RealCount()),
		Autoplay:   m.autoplayState(),
		Status:     m.status,
		Help:       m.help.View(m.inputHandler.Keys()),
	}

	out, layout := m.renderer.Render(state)
	m.layout = layout
	return out
}

func (m *Model) autoplayState() string {
	switch {
	case m.autoplay.Running():
		return autoplayPlaying
	case m.autoplayOn:
		return autoplayPaused
	}
	return ""
}

// track returns the slides to lay out and how far into them the viewport
// starts. While animating it spans both ends of the move.
func (m *Model) track() ([]domain.Slide, float64) {
	if m.anim == nil {
		return m.engine.Visible(), 0
	}

	plan := m.anim.plan
	progress := 1.0
	if plan.Duration > 0 {
		progress = float64(m.now().Sub(m.anim.start)) / float64(plan.Duration)
	}
	progress = min(max(progress, 0), 1)
	pos := float64(plan.From) + float64(plan.Visual-plan.From)*ease(progress)

	lo := min(plan.From, plan.Visual)
	hi := min(max(plan.From, plan.Visual)+m.engine.Options().Item, m.engine.Len())
	strip := make([]domain.Slide, 0, hi-lo)
	for i := lo; i < hi; i++ {
		if s, ok := m.engine.Slide(i); ok {
			strip = append(strip, s)
		}
	}
	return strip, pos - float64(lo)
}

// ease approximates the CSS "ease" timing curve
func ease(t float64) float64 {
	return t * t * (3 - 2*t)
}
