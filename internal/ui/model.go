package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"homelyhub/internal/config"
	"homelyhub/internal/domain"
	"homelyhub/internal/eventbus"
	"homelyhub/internal/listing"
	"homelyhub/internal/profile"
	"homelyhub/internal/ui/commands"
	"homelyhub/internal/ui/handlers"
	"homelyhub/internal/ui/input"
	inputtypes "homelyhub/internal/ui/input/types"
	"homelyhub/internal/ui/logic"
	"homelyhub/internal/ui/state"
	"homelyhub/internal/ui/viewmodels"
	"homelyhub/internal/ui/views"
)

// How long toast-style status messages stay visible
const statusDisplayTime = 3 * time.Second

// Lines around the card list: padding, title, filter tags, scroll hints, pager and footer
const listingChrome = 15

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	logger *zap.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	inPagerMode bool
	animation   bool
	stagger     time.Duration

	seq          *listing.Sequencer
	deriver      *listing.Deriver
	editor       *logic.FilterEditor
	navigator    *logic.Navigator
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler

	// Program reference for terminal management
	program *tea.Program
	now     func() time.Time
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	appState := state.NewAppState(cfg.Scope())
	seq := &listing.Sequencer{}

	deriver, err := listing.NewDeriver(64)
	if err != nil {
		// Derive without memoization
		logger.Warn("listing cache disabled", zap.Error(err))
		deriver = nil
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		logger:       logger.Named("ui"),
		help:         help.New(),
		animation:    cfg.UI.Animation,
		stagger:      cfg.Stagger(),
		seq:          seq,
		deriver:      deriver,
		editor:       logic.NewFilterEditor(),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
		now:          time.Now,
	}

	m.eventHandler = handlers.NewEventHandler(appState, seq, logger)
	m.cmdExecutor = commands.NewExecutor(appState, bus, seq)

	// placeholder text input, the live one is owned by the input handler
	m.viewModel = viewmodels.NewViewModel(appState, deriver, m.editor, textinput.New())
	m.viewModel.SetHelp(m.help)
	m.viewModel.SetHelpContent(m.helpRenderer.RenderHelpContent())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// State exposes the application state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Init requests the first listing page and the signed-in user
func (m *Model) Init() tea.Cmd {
	m.cmdExecutor.ExecuteFetchPage(m.state.Page)
	m.cmdExecutor.ExecuteLoadUser()
	return tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help)
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		// Popups take the keyboard first
		if m.state.ShowHelp {
			return m, m.handleHelpKey(msg)
		}
		if m.state.ShowDetail {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "enter", "q":
				m.state.ShowDetail = false
			}
			return m, nil
		}

		ctx := m.inputContext()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		m.syncInput()
		return m, tea.Batch(cmds...)

	default:
		cmd := m.inputHandler.Update(msg)
		m.syncInput()
		model, next := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(cmd, next)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.state.Revealed = m.revealed(m.now())
	m.syncInput()
	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State: m.state,
		View:  m.viewModel.CurrentView(),
	}
}

// syncInput hands the current mode and text input to the view model
func (m *Model) syncInput() {
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "?", "q":
		m.state.ShowHelp = false
		m.state.HelpScrollOffset = 0
	case "j", "down":
		m.state.HelpScrollOffset++
	case "k", "up":
		if m.state.HelpScrollOffset > 0 {
			m.state.HelpScrollOffset--
		}
	case "H":
		m.state.ShowHelp = false
		return m.fetchHelpPager()
	}
	return nil
}

// updateViewportHeight fits as many cards as the terminal allows
func (m *Model) updateViewportHeight() {
	cards := (m.height - listingChrome) / views.CardHeight
	if cards < 1 {
		cards = 1
	}
	m.state.ViewportHeight = cards
	m.ensureSelectedVisible()
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		len(m.viewModel.CurrentView().Items),
	)
}

// ensureSelectedVisible ensures the selected item is visible in the viewport
func (m *Model) ensureSelectedVisible() {
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SelectedIndex(), m.navigator.ViewportOffset()
}

// changePage moves the page cursor. Page scope fetches the new page;
// catalog scope re-slices what is already loaded.
func (m *Model) changePage(delta int) tea.Cmd {
	if m.state.Loading {
		return nil
	}
	view := m.viewModel.CurrentView()
	if (delta < 0 && !view.CanPrev) || (delta > 0 && !view.CanNext) {
		return nil
	}

	m.state.Page = view.Page + delta
	m.state.ResetSelection()
	m.state.ShowDetail = false
	if m.state.Scope == domain.ScopePage {
		return m.cmdExecutor.ExecuteFetchPage(m.state.Page)
	}
	m.state.RestartReveal(m.now())
	return nil
}

// toast schedules the current status message to be cleared
func (m *Model) toast() tea.Cmd {
	message := m.state.StatusMessage
	return tea.Tick(statusDisplayTime, func(time.Time) tea.Msg {
		return clearStatusMsg{message: message}
	})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("processAction", zap.String("action", action.Type()))

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		switch a.Direction {
		case "up":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(-1)
		case "down":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(1)
		case "home":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Home()
		case "end":
			m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.End()
		}

	case inputtypes.PageAction:
		return m.changePage(a.Delta)

	case inputtypes.RefreshAction:
		return m.cmdExecutor.ExecuteFetchPage(m.state.Page)

	case inputtypes.ShowDetailAction:
		if len(m.viewModel.CurrentView().Items) > 0 {
			m.state.ShowDetail = true
		}

	case inputtypes.ClearFiltersAction:
		m.cmdExecutor.ExecuteClearFilters()
		m.state.RestartReveal(m.now())
		m.state.SetStatus(state.StatusInfo, "Filters cleared")
		return m.toast()

	case inputtypes.OpenFilterEditorAction:
		// every opening starts from the defaults
		m.editor.Reset()
		m.state.FilterOpen = true
		m.state.FilterSection = inputtypes.SectionPrice
		m.state.FilterOption = inputtypes.PriceOptionMin

	case inputtypes.CloseFilterEditorAction:
		m.state.FilterOpen = false
		m.editor.Reset()

	case inputtypes.FilterFocusAction:
		m.state.FilterSection = a.Section
		m.state.FilterOption = a.Option

	case inputtypes.ToggleFilterOptionAction:
		switch a.Section {
		case inputtypes.SectionPropertyType:
			m.editor.TogglePropertyType(a.Value)
		case inputtypes.SectionRoomType:
			m.editor.ToggleRoomType(a.Value)
		case inputtypes.SectionAmenities:
			m.editor.ToggleAmenity(a.Value)
		}

	case inputtypes.NudgePriceAction:
		if a.Max {
			m.editor.NudgeMax(a.Delta)
		} else {
			m.editor.NudgeMin(a.Delta)
		}

	case inputtypes.ClearFilterDraftAction:
		m.editor.ClearAll()

	case inputtypes.ApplyFiltersAction:
		criteria := m.editor.Apply()
		m.state.FilterOpen = false
		m.cmdExecutor.ExecuteApplyFilters(criteria)
		m.editor.Reset()
		m.state.RestartReveal(m.now())

	case inputtypes.SubmitTextAction:
		// out-of-range prices are ignored
		switch a.Mode {
		case inputtypes.ModePriceMin:
			m.editor.SetMin(a.Text)
		case inputtypes.ModePriceMax:
			m.editor.SetMax(a.Text)
		}

	case inputtypes.CancelTextAction:
		// nothing to undo, the draft is only touched on submit

	case inputtypes.UpdateTextAction:
		m.updateProfileField(a.Text)

	case inputtypes.OpenProfileAction:
		m.state.ShowProfile = true
		m.state.ShowDetail = false
		if m.state.User == nil {
			return m.cmdExecutor.ExecuteLoadUser()
		}

	case inputtypes.CloseProfileAction:
		m.state.ShowProfile = false

	case inputtypes.BeginProfileEditAction:
		if m.state.Form == nil && m.state.User != nil {
			m.state.Form = profile.NewForm(*m.state.User)
		}
		if m.state.Form == nil {
			return nil
		}
		m.state.Form.Edit()
		m.state.AvatarPath = ""
		m.focusProfileField(inputtypes.FieldName)

	case inputtypes.CancelProfileEditAction:
		if m.state.Form != nil {
			m.state.Form.Cancel()
		}
		m.state.AvatarPath = ""
		m.state.ProfileField = inputtypes.FieldName

	case inputtypes.ProfileFocusAction:
		m.focusProfileField(a.Field)

	case inputtypes.LoadAvatarAction:
		if m.state.Form == nil {
			return nil
		}
		if err := m.state.Form.LoadAvatar(a.Path); err != nil {
			m.logger.Info("avatar rejected", zap.String("path", a.Path), zap.Error(err))
			m.state.SetStatus(state.StatusError, profile.UserMessage(err))
			return m.toast()
		}
		m.state.SetStatus(state.StatusSuccess, "Avatar loaded")
		return m.toast()

	case inputtypes.SubmitProfileAction:
		m.cmdExecutor.ExecuteSubmitProfile()
		if m.state.StatusLevel == state.StatusError {
			return m.toast()
		}

	case inputtypes.ReloadUserAction:
		return m.cmdExecutor.ExecuteLoadUser()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case inputtypes.OpenHelpPagerAction:
		return m.fetchHelpPager()

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// focusProfileField moves the editor focus and loads the field's value
// into the text input
func (m *Model) focusProfileField(field inputtypes.ProfileField) {
	m.state.ProfileField = field
	if m.state.Form == nil {
		return
	}
	draft := m.state.Form.Draft()
	switch field {
	case inputtypes.FieldName:
		m.inputHandler.SetText(draft.Name)
	case inputtypes.FieldPhoneNumber:
		m.inputHandler.SetText(draft.PhoneNumber)
	case inputtypes.FieldAvatarPath:
		m.inputHandler.SetText(m.state.AvatarPath)
	default:
		m.inputHandler.SetText("")
	}
}

// updateProfileField writes typed text into the focused profile field
func (m *Model) updateProfileField(text string) {
	if m.inputHandler.CurrentMode() != inputtypes.ModeProfileEdit || m.state.Form == nil {
		return
	}
	switch m.state.ProfileField {
	case inputtypes.FieldName:
		m.state.Form.SetName(text)
	case inputtypes.FieldPhoneNumber:
		m.state.Form.SetPhoneNumber(text)
	case inputtypes.FieldAvatarPath:
		m.state.AvatarPath = text
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager() tea.Cmd {
	if m.program == nil {
		m.state.ShowHelp = true
		return nil
	}
	program := m.program
	content := m.helpRenderer.RenderHelpContent()
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := NewHelpOps(program).ShowHelpInPager(content)
		program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		switch msg.Event.(type) {
		case eventbus.PropertiesLoadedEvent:
			m.state.ShowDetail = false
			m.ensureSelectedVisible()
		case eventbus.ProfileUpdatedEvent, eventbus.PropertiesLoadFailedEvent, eventbus.ErrorEvent:
			return m, tea.Batch(cmd, m.toast())
		}
		return m, cmd

	case handlers.ProfileSavedMsg:
		// back to the read-only profile screen
		m.state.ShowProfile = true
		m.state.ProfileField = inputtypes.FieldName
		m.inputHandler.ChangeMode(inputtypes.ModeProfile, m.inputContext())
		m.syncInput()
		return m, nil

	case handlers.ErrorsShownMsg:
		m.state.AckErrors()
		if m.state.StatusLevel == state.StatusError {
			m.state.ClearStatus()
		}
		return m, nil

	case tickMsg:
		m.state.Revealed = m.revealed(time.Time(msg))
		if m.inPagerMode {
			return m, nil
		}
		return m, tick()

	case helpPagerMsg:
		if msg.err != nil {
			// fall back to the popup
			m.logger.Warn("help pager failed", zap.Error(msg.err))
			m.state.ShowHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, tick()

	case clearStatusMsg:
		if m.state.StatusMessage == msg.message {
			m.state.ClearStatus()
		}
		return m, nil
	}

	return m, nil
}

// revealed is the number of cards the entrance animation shows at now
func (m *Model) revealed(now time.Time) int {
	total := len(m.viewModel.CurrentView().Items)
	if !m.animation {
		return total
	}
	return viewmodels.RevealedAt(m.state.RevealStart, now, m.stagger, total)
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
