package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter
	ModePriceMin
	ModePriceMax
	ModeProfile
	ModeProfileEdit
)

// FilterSection is a focusable row of the filter editor
type FilterSection int

const (
	SectionPrice FilterSection = iota
	SectionPropertyType
	SectionRoomType
	SectionAmenities
	SectionButtons
	sectionCount
)

// Buttons in the SectionButtons row
const (
	ButtonClearAll = iota
	ButtonApply
)

// Options in the SectionPrice row
const (
	PriceOptionMin = iota
	PriceOptionMax
)

// NextSection cycles forward or backward through the sections
func (s FilterSection) NextSection(delta int) FilterSection {
	n := (int(s) + delta) % int(sectionCount)
	if n < 0 {
		n += int(sectionCount)
	}
	return FilterSection(n)
}

// ProfileField is a focusable row of the profile editor
type ProfileField int

const (
	FieldName ProfileField = iota
	FieldPhoneNumber
	FieldAvatarPath
	FieldSubmit
	fieldCount
)

// NextField cycles forward or backward through the fields
func (f ProfileField) NextField(delta int) ProfileField {
	n := (int(f) + delta) % int(fieldCount)
	if n < 0 {
		n += int(fieldCount)
	}
	return ProfileField(n)
}

// IsText reports whether the field is edited through the text input
func (f ProfileField) IsText() bool {
	return f != FieldSubmit
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	CanPrevPage() bool
	CanNextPage() bool
	HasFilters() bool
	FilterFocus() (FilterSection, int)
	ProfileFocus() ProfileField
	HasUser() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
