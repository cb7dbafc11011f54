package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	click     key.Binding
	buildInfo key.Binding
	esc       key.Binding
	quit      key.Binding
}

var keys = keyMap{
	click:     key.NewBinding(key.WithKeys("enter", " ", "space")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
