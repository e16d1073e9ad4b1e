package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"slidex/internal/carousel"
	"slidex/internal/ui/input/types"
)

type fakeContext struct {
	pages    int
	nav      bool
	controls bool
}

func (c fakeContext) PageCount() int          { return c.pages }
func (c fakeContext) NavigationVisible() bool { return c.nav }
func (c fakeContext) ControlsEnabled() bool   { return c.controls }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultBindings(t *testing.T) {
	h := New(NewKeyMap(carousel.DefaultOptions()))
	ctx := fakeContext{pages: 3, nav: true, controls: true}

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []types.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, []types.Action{types.NavigateAction{Direction: "prev"}}},
		{"h", runes("h"), []types.Action{types.NavigateAction{Direction: "prev"}}},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, []types.Action{types.NavigateAction{Direction: "next"}}},
		{"l", runes("l"), []types.Action{types.NavigateAction{Direction: "next"}}},
		{"page 2", runes("2"), []types.Action{types.GoToPageAction{Page: 1}}},
		{"page out of range", runes("4"), nil},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []types.Action{types.ToggleAutoplayAction{}}},
		{"help", runes("?"), []types.Action{types.ToggleHelpAction{}}},
		{"pager", runes("H"), []types.Action{types.OpenHelpPagerAction{}}},
		{"q", runes("q"), []types.Action{types.QuitAction{}}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, []types.Action{types.QuitAction{Force: true}}},
		{"unbound", runes("z"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.HandleKey(tt.msg, ctx))
		})
	}
}

func TestCustomControlKeysReplaceDefaults(t *testing.T) {
	opts := carousel.DefaultOptions()
	opts.PrevKeys = []string{"b"}
	opts.NextKeys = []string{"n"}
	h := New(NewKeyMap(opts))
	ctx := fakeContext{pages: 3, nav: true, controls: true}

	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "prev"}}, h.HandleKey(runes("b"), ctx))
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "next"}}, h.HandleKey(runes("n"), ctx))
	assert.Nil(t, h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, ctx))
}

func TestDisabledControlsAndNavigation(t *testing.T) {
	opts := carousel.DefaultOptions()
	opts.Control = false
	opts.Navigation = false
	h := New(NewKeyMap(opts))
	ctx := fakeContext{pages: 3}

	assert.Nil(t, h.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, ctx))
	assert.Nil(t, h.HandleKey(runes("1"), ctx))
}

func TestHelpBindings(t *testing.T) {
	km := NewKeyMap(carousel.DefaultOptions())
	assert.Len(t, km.ShortHelp(), 5)
	assert.Len(t, km.FullHelp(), 2)
	assert.Equal(t, "←/h", km.Prev.Help().Key)
}

func TestSpaceAsCustomControlKey(t *testing.T) {
	opts := carousel.DefaultOptions()
	opts.NextKeys = []string{"n", "space"}
	km := NewKeyMap(opts)
	h := New(km)
	ctx := fakeContext{pages: 3, nav: true, controls: true}

	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "next"}}, h.HandleKey(space, ctx))
	assert.Equal(t, []types.Action{types.ToggleAutoplayAction{}}, h.HandleKey(runes("p"), ctx))
	assert.Equal(t, "n/space", km.Next.Help().Key)
	assert.Equal(t, "p", km.Autoplay.Help().Key)
}

func TestCustomKeysTakeEveryAutoplayKey(t *testing.T) {
	opts := carousel.DefaultOptions()
	opts.PrevKeys = []string{"p"}
	opts.NextKeys = []string{" "}
	km := NewKeyMap(opts)
	h := New(km)
	ctx := fakeContext{pages: 3, nav: true, controls: true}

	assert.False(t, km.Autoplay.Enabled())
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "prev"}}, h.HandleKey(runes("p"), ctx))
}
