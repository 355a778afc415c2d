package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"homelyhub/internal/domain"
	"homelyhub/internal/ui/input/types"
)

// Price steps for the slider keys
const (
	PriceStep      = 100
	PriceLargeStep = 1000
)

// FilterMode drives the filter editor modal. The focus lives in app
// state so that it survives a detour through the price text modes.
type FilterMode struct{}

func NewFilterMode() *FilterMode {
	return &FilterMode{}
}

func (m *FilterMode) Name() string {
	return "filter"
}

func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FilterMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// OptionCount is the number of focusable options in a section
func OptionCount(section types.FilterSection) int {
	switch section {
	case types.SectionPrice:
		return 2
	case types.SectionPropertyType:
		return len(domain.PropertyTypeOptions)
	case types.SectionRoomType:
		return len(domain.RoomTypeOptions)
	case types.SectionAmenities:
		return len(domain.AmenityOptions)
	case types.SectionButtons:
		return 2
	}
	return 0
}

func optionValue(section types.FilterSection, option int) string {
	var opts []domain.Option
	switch section {
	case types.SectionPropertyType:
		opts = domain.PropertyTypeOptions
	case types.SectionRoomType:
		opts = domain.RoomTypeOptions
	case types.SectionAmenities:
		opts = domain.AmenityOptions
	}
	if option < 0 || option >= len(opts) {
		return ""
	}
	return opts[option].Value
}

func (m *FilterMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	section, option := ctx.FilterFocus()

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		return []types.Action{
			types.CloseFilterEditorAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "tab", "down", "j":
		return []types.Action{types.FilterFocusAction{Section: section.NextSection(1)}}, true

	case "shift+tab", "up", "k":
		return []types.Action{types.FilterFocusAction{Section: section.NextSection(-1)}}, true

	case "left", "h":
		if option > 0 {
			return []types.Action{types.FilterFocusAction{Section: section, Option: option - 1}}, true
		}
		return nil, true

	case "right", "l":
		if option < OptionCount(section)-1 {
			return []types.Action{types.FilterFocusAction{Section: section, Option: option + 1}}, true
		}
		return nil, true

	case " ", "enter":
		return m.activate(section, option), true

	case "[":
		return []types.Action{types.NudgePriceAction{Delta: -PriceStep}}, true
	case "]":
		return []types.Action{types.NudgePriceAction{Delta: PriceStep}}, true
	case "{":
		return []types.Action{types.NudgePriceAction{Max: true, Delta: -PriceStep}}, true
	case "}":
		return []types.Action{types.NudgePriceAction{Max: true, Delta: PriceStep}}, true

	case "pgdown", "pgup":
		if section != types.SectionPrice {
			return nil, true
		}
		delta := PriceLargeStep
		if msg.String() == "pgdown" {
			delta = -PriceLargeStep
		}
		return []types.Action{types.NudgePriceAction{Max: option == types.PriceOptionMax, Delta: delta}}, true

	case "m":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePriceMin}}, true
	case "M":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePriceMax}}, true

	case "x":
		return []types.Action{types.ClearFilterDraftAction{}}, true

	case "a":
		return m.apply(), true
	}

	// the modal swallows everything else
	return nil, true
}

func (m *FilterMode) activate(section types.FilterSection, option int) []types.Action {
	switch section {
	case types.SectionPrice:
		if option == types.PriceOptionMax {
			return []types.Action{types.ChangeModeAction{Mode: types.ModePriceMax}}
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModePriceMin}}
	case types.SectionButtons:
		if option == types.ButtonApply {
			return m.apply()
		}
		return []types.Action{types.ClearFilterDraftAction{}}
	}
	if v := optionValue(section, option); v != "" {
		return []types.Action{types.ToggleFilterOptionAction{Section: section, Value: v}}
	}
	return nil
}

func (m *FilterMode) apply() []types.Action {
	return []types.Action{
		types.ApplyFiltersAction{},
		types.ChangeModeAction{Mode: types.ModeNormal},
	}
}
