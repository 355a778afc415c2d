package viewmodels

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"homelyhub/internal/listing"
	"homelyhub/internal/ui/input/types"
	"homelyhub/internal/ui/logic"
	"homelyhub/internal/ui/state"
	"homelyhub/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	deriver          *listing.Deriver
	editor           *logic.FilterEditor
	width            int
	height           int
	help             help.Model
	keys             views.ListingKeys
	helpContent      string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, deriver *listing.Deriver, editor *logic.FilterEditor, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		deriver:          deriver,
		editor:           editor,
		keys:             views.NewListingKeys(),
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetHelpContent sets the text of the help popup
func (vm *ViewModel) SetHelpContent(content string) {
	vm.helpContent = content
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// CurrentView derives the page on screen from the snapshot and the applied filters
func (vm *ViewModel) CurrentView() listing.View {
	snap := vm.state.CurrentSnapshot()
	if vm.deriver == nil {
		return listing.Derive(snap, vm.state.Filters())
	}
	return vm.deriver.Derive(snap, vm.state.Filters())
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.state
	vs := views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		View:             vm.CurrentView(),
		HasFilters:       s.Filters() != nil,
		Loading:          s.Loading,
		LoadedOnce:       s.LoadedOnce,
		LoadError:        s.LoadError,
		SelectedIndex:    s.SelectedIndex,
		ViewportOffset:   s.ViewportOffset,
		ViewportHeight:   s.ViewportHeight,
		Revealed:         s.Revealed,
		StatusMessage:    s.StatusMessage,
		StatusLevel:      s.StatusLevel,
		Errors:           s.Errors,
		ShowHelp:         s.ShowHelp,
		HelpScrollOffset: s.HelpScrollOffset,
		HelpContent:      vm.helpContent,
		HelpModel:        vm.help,
		Keys:             vm.keys,
	}

	if c := s.Filters(); c != nil {
		vs.Tags = c.Tags()
	}

	if s.ShowDetail && s.SelectedIndex >= 0 && s.SelectedIndex < len(vs.View.Items) {
		p := vs.View.Items[s.SelectedIndex]
		vs.Detail = &p
	}

	if s.FilterOpen && vm.editor != nil {
		vs.Filter = &views.FilterModalState{
			Draft:   vm.editor.Draft(),
			Section: s.FilterSection,
			Option:  s.FilterOption,
			Input:   vm.inputTransformer.PriceInput(),
		}
	}

	if s.ShowProfile {
		ps := &views.ProfileViewState{
			User:       s.User,
			Editing:    vm.inputTransformer.Mode() == types.ModeProfileEdit,
			Field:      s.ProfileField,
			AvatarPath: s.AvatarPath,
			Input:      vm.inputTransformer.FieldInput(),
		}
		if s.Form != nil {
			ps.Draft = s.Form.Draft()
			ps.Preview = s.Form.Preview()
			ps.Status = s.Form.Status()
		}
		vs.Profile = ps
	}

	return vs
}

// RevealedAt returns how many cards the entrance animation shows at now
func RevealedAt(start, now time.Time, stagger time.Duration, total int) int {
	if stagger <= 0 || start.IsZero() {
		return total
	}
	n := int(now.Sub(start)/stagger) + 1
	if n < 0 {
		n = 0
	}
	if n > total {
		n = total
	}
	return n
}
