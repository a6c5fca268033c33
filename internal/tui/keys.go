package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit      key.Binding
	flush     key.Binding
	buildInfo key.Binding
	esc       key.Binding

	// conflict overlay
	overwrite  key.Binding
	takeServer key.Binding
	copy       key.Binding
}

var keys = keyMap{
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	flush:     key.NewBinding(key.WithKeys("ctrl+s")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	esc:       key.NewBinding(key.WithKeys("esc")),

	overwrite:  key.NewBinding(key.WithKeys("o")),
	takeServer: key.NewBinding(key.WithKeys("t")),
	copy:       key.NewBinding(key.WithKeys("y")),
}
