package views

import (
	"github.com/charmbracelet/bubbles/key"
)

// ListingKeys are the footer hints on the listing screen
type ListingKeys struct {
	Move    key.Binding
	Page    key.Binding
	Details key.Binding
	Filter  key.Binding
	Clear   key.Binding
	Profile key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// NewListingKeys creates the listing key hints
func NewListingKeys() ListingKeys {
	return ListingKeys{
		Move:    key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "move")),
		Page:    key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "page")),
		Details: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		Profile: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "profile")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k ListingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Page, k.Details, k.Filter, k.Clear, k.Profile, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k ListingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Page, k.Details},
		{k.Filter, k.Clear, k.Refresh},
		{k.Profile, k.Help, k.Quit},
	}
}
