package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/trickywords/internal/session"
)

type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Choose key.Binding
	Known  key.Binding
	Skip   key.Binding
	Review key.Binding
	Back   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev group"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next group"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter/1-9", "choose"),
		),
		Known: key.NewBinding(
			key.WithKeys("k", "y", "enter", "right"),
			key.WithHelp("k/enter/→", "I know it"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s", "n", " ", "left"),
			key.WithHelp("s/space/←", "skip"),
		),
		Review: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "review skipped"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// enableFor turns on only the bindings that act in state.
func (k *keyMap) enableFor(state session.State) {
	idle := state == session.Idle
	k.Prev.SetEnabled(idle)
	k.Next.SetEnabled(idle)
	k.Choose.SetEnabled(idle)
	k.Known.SetEnabled(state == session.InProgress)
	k.Skip.SetEnabled(state == session.InProgress)
	k.Review.SetEnabled(state == session.ReviewPrompt)
	k.Back.SetEnabled(!idle)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Known, k.Skip, k.Review, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Choose},
		{k.Known, k.Skip, k.Review},
		{k.Back, k.Help, k.Quit},
	}
}
