package input

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"slidex/internal/carousel"
)

// KeyMap holds the carousel key bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Page     key.Binding
	Autoplay key.Binding
	Help     key.Binding
	Pager    key.Binding
	Quit     key.Binding
}

// NewKeyMap builds the bindings for opts. Custom prev/next keys replace the
// defaults; with controls disabled prev/next are not bound at all. A custom
// key that is also an autoplay key is taken away from autoplay.
func NewKeyMap(opts carousel.Options) KeyMap {
	prevKeys := []string{"left", "h"}
	if len(opts.PrevKeys) > 0 {
		prevKeys = normalizeKeys(opts.PrevKeys)
	}
	nextKeys := []string{"right", "l"}
	if len(opts.NextKeys) > 0 {
		nextKeys = normalizeKeys(opts.NextKeys)
	}

	autoplayKeys := []string{" ", "p"}
	if opts.Control {
		autoplayKeys = without(autoplayKeys, prevKeys, nextKeys)
	}

	km := KeyMap{
		Prev: key.NewBinding(
			key.WithKeys(prevKeys...),
			key.WithHelp(helpKeys(prevKeys), "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys(nextKeys...),
			key.WithHelp(helpKeys(nextKeys), "next"),
		),
		Page: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "page"),
		),
		Autoplay: key.NewBinding(
			key.WithKeys(autoplayKeys...),
			key.WithHelp(helpKeys(autoplayKeys), "autoplay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Pager: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "help in pager"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
	if !opts.Control {
		km.Prev.SetEnabled(false)
		km.Next.SetEnabled(false)
	}
	if !opts.Navigation {
		km.Page.SetEnabled(false)
	}
	if len(autoplayKeys) == 0 {
		km.Autoplay.SetEnabled(false)
	}
	return km
}

// normalizeKeys maps key names to what tea.KeyMsg.String reports. Space
// arrives as " ", never as "space".
func normalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" || strings.EqualFold(k, "space") {
			k = " "
		}
		out = append(out, k)
	}
	return out
}

func without(keys []string, taken ...[]string) []string {
	var out []string
	for _, k := range keys {
		if !slices.ContainsFunc(taken, func(t []string) bool { return slices.Contains(t, k) }) {
			out = append(out, k)
		}
	}
	return out
}

func helpKeys(keys []string) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case "left":
			out[i] = "←"
		case "right":
			out[i] = "→"
		case " ":
			out[i] = "space"
		default:
			out[i] = k
		}
	}
	return strings.Join(out, "/")
}

// ShortHelp returns the bindings shown in the compact help bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Autoplay, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Page},
		{k.Autoplay, k.Help, k.Pager, k.Quit},
	}
}
