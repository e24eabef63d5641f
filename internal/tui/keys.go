package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	copy     key.Binding
	search   key.Binding
	addURI   key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	qr       key.Binding
	saveQR   key.Binding
	export   key.Binding
	importKb key.Binding
	info     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	copy:     key.NewBinding(key.WithKeys("c", "enter")),
	search:   key.NewBinding(key.WithKeys("/")),
	addURI:   key.NewBinding(key.WithKeys("a")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d", "delete")),
	qr:       key.NewBinding(key.WithKeys("r")),
	saveQR:   key.NewBinding(key.WithKeys("s")),
	export:   key.NewBinding(key.WithKeys("x")),
	importKb: key.NewBinding(key.WithKeys("i")),
	info:     key.NewBinding(key.WithKeys("v")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
