package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// keyMap defines the [key.Binding] mapping for the TUI.
//
// Printable keys are left to the URL input, so every action uses enter, a control key or a named key.
type keyMap struct {
	submit   key.Binding
	copy     key.Binding
	nextPage key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "fetch lyrics")),
		copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy lyrics")),
		nextPage: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch page")),
		pageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		pageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// viewportKeys restricts the lyrics viewport to keys the URL input does not consume.
func (k keyMap) viewportKeys() viewport.KeyMap {
	return viewport.KeyMap{
		PageUp:   k.pageUp,
		PageDown: k.pageDown,
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.copy, k.nextPage, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.submit, k.copy},
		{k.pageUp, k.pageDown},
		{k.nextPage, k.quit},
	}
}
