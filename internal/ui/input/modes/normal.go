package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"homelyhub/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return nil, false

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return m.page(-1, ctx)

	case tea.KeyRight:
		return m.page(1, ctx)

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if ctx.TotalItems() > 0 {
			return []types.Action{types.ShowDetailAction{}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return m.page(-1, ctx)

	case "l":
		return m.page(1, ctx)

	case "f":
		return []types.Action{
			types.OpenFilterEditorAction{},
			types.ChangeModeAction{Mode: types.ModeFilter},
		}, true

	case "c":
		if ctx.HasFilters() {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, true

	case "r":
		return []types.Action{types.RefreshAction{}}, true

	case "P":
		return []types.Action{
			types.OpenProfileAction{},
			types.ChangeModeAction{Mode: types.ModeProfile},
		}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "H":
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		m.lastKeyWasG = false
	}

	return nil, false
}

// page emits a page change unless the direction is disabled
func (m *NormalMode) page(delta int, ctx types.Context) ([]types.Action, bool) {
	if delta < 0 && !ctx.CanPrevPage() {
		return nil, true
	}
	if delta > 0 && !ctx.CanNextPage() {
		return nil, true
	}
	return []types.Action{types.PageAction{Delta: delta}}, true
}
