package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// PageAction moves the page cursor by Delta pages
type PageAction struct {
	Delta int
}

func (a PageAction) Type() string { return "page" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Listing actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ShowDetailAction struct{}

func (a ShowDetailAction) Type() string { return "show_detail" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// Filter editor actions
type OpenFilterEditorAction struct{}

func (a OpenFilterEditorAction) Type() string { return "open_filter_editor" }

type CloseFilterEditorAction struct{}

func (a CloseFilterEditorAction) Type() string { return "close_filter_editor" }

type FilterFocusAction struct {
	Section FilterSection
	Option  int
}

func (a FilterFocusAction) Type() string { return "filter_focus" }

type ToggleFilterOptionAction struct {
	Section FilterSection
	Value   string
}

func (a ToggleFilterOptionAction) Type() string { return "toggle_filter_option" }

type NudgePriceAction struct {
	Max   bool // false nudges the minimum
	Delta int
}

func (a NudgePriceAction) Type() string { return "nudge_price" }

type ClearFilterDraftAction struct{}

func (a ClearFilterDraftAction) Type() string { return "clear_filter_draft" }

type ApplyFiltersAction struct{}

func (a ApplyFiltersAction) Type() string { return "apply_filters" }

// Profile actions
type OpenProfileAction struct{}

func (a OpenProfileAction) Type() string { return "open_profile" }

type CloseProfileAction struct{}

func (a CloseProfileAction) Type() string { return "close_profile" }

type BeginProfileEditAction struct{}

func (a BeginProfileEditAction) Type() string { return "begin_profile_edit" }

type CancelProfileEditAction struct{}

func (a CancelProfileEditAction) Type() string { return "cancel_profile_edit" }

type ProfileFocusAction struct {
	Field ProfileField
}

func (a ProfileFocusAction) Type() string { return "profile_focus" }

type LoadAvatarAction struct {
	Path string
}

func (a LoadAvatarAction) Type() string { return "load_avatar" }

type SubmitProfileAction struct{}

func (a SubmitProfileAction) Type() string { return "submit_profile" }

type ReloadUserAction struct{}

func (a ReloadUserAction) Type() string { return "reload_user" }

// Help actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
