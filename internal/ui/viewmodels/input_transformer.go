package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"homelyhub/internal/ui/input/types"
)

// InputTransformer turns the shared text input into the string a view embeds
type InputTransformer struct {
	mode      types.Mode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode types.Mode) {
	it.mode = mode
}

// Mode returns the current input mode
func (it *InputTransformer) Mode() types.Mode {
	return it.mode
}

// PriceInput returns the price text input, empty outside the price modes
func (it *InputTransformer) PriceInput() string {
	switch it.mode {
	case types.ModePriceMin, types.ModePriceMax:
		return it.textInput.View() + "  (enter to set, esc to cancel)"
	}
	return ""
}

// FieldInput returns the profile field text input, empty outside the editor
func (it *InputTransformer) FieldInput() string {
	if it.mode == types.ModeProfileEdit {
		return it.textInput.View()
	}
	return ""
}
