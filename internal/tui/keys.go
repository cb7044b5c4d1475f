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
	lock     key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	search   key.Binding
	filter   key.Binding
	reveal   key.Binding
	copy     key.Binding
	copyUser key.Binding
	generate key.Binding
	catMgmt  key.Binding
	settings key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	lock:     key.NewBinding(key.WithKeys("L")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	search:   key.NewBinding(key.WithKeys("/")),
	filter:   key.NewBinding(key.WithKeys("f")),
	reveal:   key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyUser: key.NewBinding(key.WithKeys("u")),
	generate: key.NewBinding(key.WithKeys("g")),
	catMgmt:  key.NewBinding(key.WithKeys("t")),
	settings: key.NewBinding(key.WithKeys("s")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
