package input

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"slidex/internal/ui/input/types"
)

// Handler turns key presses into actions
type Handler struct {
	keys KeyMap
}

func New(keys KeyMap) *Handler {
	return &Handler{keys: keys}
}

// Keys returns the key map, used by the help bar
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey maps a key to actions. Unbound keys produce nothing.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}
	}

	switch {
	case key.Matches(msg, h.keys.Prev):
		if !ctx.ControlsEnabled() {
			return nil
		}
		return []types.Action{types.NavigateAction{Direction: "prev"}}

	case key.Matches(msg, h.keys.Next):
		if !ctx.ControlsEnabled() {
			return nil
		}
		return []types.Action{types.NavigateAction{Direction: "next"}}

	case key.Matches(msg, h.keys.Page):
		if !ctx.NavigationVisible() {
			return nil
		}
		n, err := strconv.Atoi(msg.String())
		if err != nil || n < 1 || n > ctx.PageCount() {
			return nil
		}
		return []types.Action{types.GoToPageAction{Page: n - 1}}

	case key.Matches(msg, h.keys.Autoplay):
		return []types.Action{types.ToggleAutoplayAction{}}

	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}

	case key.Matches(msg, h.keys.Pager):
		return []types.Action{types.OpenHelpPagerAction{}}

	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}
	}
	return nil
}
