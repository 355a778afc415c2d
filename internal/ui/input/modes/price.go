package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"homelyhub/internal/ui/input/types"
)

// PriceMode types a price bound into the filter editor
type PriceMode struct {
	TextInputMode
}

func NewPriceMinMode(ti *textinput.Model) *PriceMode {
	return &PriceMode{
		TextInputMode: NewTextInputMode(types.ModePriceMin, "price-min", "Min ₹ ", types.ModeFilter, ti),
	}
}

func NewPriceMaxMode(ti *textinput.Model) *PriceMode {
	return &PriceMode{
		TextInputMode: NewTextInputMode(types.ModePriceMax, "price-max", "Max ₹ ", types.ModeFilter, ti),
	}
}

// Enter limits input to something that can hold a price
func (m *PriceMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.CharLimit = 6
	}
	return actions
}

// Exit lifts the character limit for the next text mode
func (m *PriceMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.CharLimit = 0
	}
	return m.TextInputMode.Exit(ctx)
}
