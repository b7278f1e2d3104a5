package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	New      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Toggle   key.Binding
	Filter   key.Binding
	FetchAPI key.Binding
	Demo     key.Binding
	Quit     key.Binding

	Submit    key.Binding
	NextField key.Binding
	Cancel    key.Binding

	Confirm key.Binding
	Deny    key.Binding
}

func defaultKeys() *keyMap {
	return &keyMap{
		New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "important")),
		Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "important only")),
		FetchAPI: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "api data")),
		Demo:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "demo data")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		NextField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "delete")),
		Deny:    key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "keep")),
	}
}

func (k *keyMap) listKeys() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Delete, k.Toggle, k.Filter, k.FetchAPI, k.Demo, k.Quit}
}

// setLoading greys out the source switches while a load is in flight.
func (k *keyMap) setLoading(loading bool) {
	k.FetchAPI.SetEnabled(!loading)
	k.Demo.SetEnabled(!loading)
}

func (k *keyMap) setFiltered(on bool) {
	if on {
		k.Filter.SetHelp("f", "show all")
	} else {
		k.Filter.SetHelp("f", "important only")
	}
}
