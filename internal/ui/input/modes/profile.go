package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"homelyhub/internal/ui/input/types"
)

// ProfileMode is the read-only profile screen
type ProfileMode struct{}

func NewProfileMode() *ProfileMode {
	return &ProfileMode{}
}

func (m *ProfileMode) Name() string {
	return "profile"
}

func (m *ProfileMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ProfileMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ProfileMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q", "P":
		return []types.Action{
			types.CloseProfileAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "e":
		if !ctx.HasUser() {
			return nil, true
		}
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeProfileEdit},
			types.BeginProfileEditAction{},
		}, true
	case "r":
		return []types.Action{types.ReloadUserAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, true
}

// ProfileEditMode edits name, phone number and avatar. The shared text
// input holds the focused field's value.
type ProfileEditMode struct {
	textInput *textinput.Model
}

func NewProfileEditMode(ti *textinput.Model) *ProfileEditMode {
	return &ProfileEditMode{textInput: ti}
}

func (m *ProfileEditMode) Name() string {
	return "profile-edit"
}

func (m *ProfileEditMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Prompt = ""
	}
	return nil
}

func (m *ProfileEditMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m *ProfileEditMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	field := ctx.ProfileFocus()

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc":
		return []types.Action{
			types.CancelProfileEditAction{},
			types.ChangeModeAction{Mode: types.ModeProfile},
		}, true

	case "tab", "down":
		return []types.Action{types.ProfileFocusAction{Field: field.NextField(1)}}, true

	case "shift+tab", "up":
		return []types.Action{types.ProfileFocusAction{Field: field.NextField(-1)}}, true

	case "ctrl+o":
		if field == types.FieldAvatarPath && m.textInput != nil {
			return []types.Action{types.LoadAvatarAction{Path: m.textInput.Value()}}, true
		}
		return nil, true

	case "ctrl+s":
		return []types.Action{types.SubmitProfileAction{}}, true

	case "enter":
		switch field {
		case types.FieldSubmit:
			return []types.Action{types.SubmitProfileAction{}}, true
		case types.FieldAvatarPath:
			if m.textInput != nil && m.textInput.Value() != "" {
				return []types.Action{types.LoadAvatarAction{Path: m.textInput.Value()}}, true
			}
		}
		return []types.Action{types.ProfileFocusAction{Field: field.NextField(1)}}, true
	}

	if !field.IsText() {
		// nothing to type into on the submit row
		return nil, true
	}
	return nil, false
}
