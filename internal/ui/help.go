package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"slidex/internal/carousel"
	"slidex/internal/ui/input"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// Render generates the full help page for the pager: every enabled binding
// followed by the options the carousel runs with.
func (r *HelpRenderer) Render(keys input.KeyMap, opts carousel.Options) string {
	var help strings.Builder

	help.WriteString(r.title.Render("Slidex Help"))
	help.WriteString("\n")

	help.WriteString(r.section.Render("Navigation"))
	help.WriteString("\n")
	r.writeBindings(&help, keys.Prev, keys.Next, keys.Page)
	help.WriteString("\n")

	help.WriteString(r.section.Render("Playback"))
	help.WriteString("\n")
	r.writeBindings(&help, keys.Autoplay)
	if opts.AutoplayHoverPause {
		help.WriteString(r.desc.Render("  Autoplay pauses while the pointer is over the carousel"))
		help.WriteString("\n")
	}
	help.WriteString("\n")

	help.WriteString(r.section.Render("Other"))
	help.WriteString("\n")
	r.writeBindings(&help, keys.Help, keys.Pager, keys.Quit)
	help.WriteString("\n")

	help.WriteString(r.section.Render("Options"))
	help.WriteString("\n")
	r.writeOption(&help, "item", fmt.Sprint(opts.Item))
	r.writeOption(&help, "speed", opts.Speed.String())
	r.writeOption(&help, "loop", fmt.Sprint(opts.Loop))
	r.writeOption(&help, "navigation", fmt.Sprint(opts.Navigation))
	r.writeOption(&help, "control", fmt.Sprint(opts.Control))
	r.writeOption(&help, "slide by", opts.SlideBy.String())
	r.writeOption(&help, "autoplay", fmt.Sprint(opts.Autoplay))
	r.writeOption(&help, "autoplay timeout", opts.AutoplayTimeout.String())

	return strings.TrimRight(help.String(), "\n")
}

func (r *HelpRenderer) writeBindings(b *strings.Builder, bindings ...key.Binding) {
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		h := kb.Help()
		fmt.Fprintf(b, "  %-12s %s\n", r.key.Render(h.Key), r.desc.Render(h.Desc))
	}
}

func (r *HelpRenderer) writeOption(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  %-18s %s\n", r.desc.Render(name), r.key.Render(value))
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// SetProgram sets the program whose terminal is released while the pager runs
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
