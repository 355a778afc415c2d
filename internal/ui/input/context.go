package input

import (
	"homelyhub/internal/listing"
	"homelyhub/internal/ui/input/types"
	"homelyhub/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
	View  listing.View // the page currently on screen
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of cards on the current page
func (c *ModelContext) TotalItems() int {
	return len(c.View.Items)
}

func (c *ModelContext) CanPrevPage() bool {
	return !c.State.Loading && c.View.CanPrev
}

func (c *ModelContext) CanNextPage() bool {
	return !c.State.Loading && c.View.CanNext
}

// HasFilters reports whether criteria are applied
func (c *ModelContext) HasFilters() bool {
	return c.State.Filters() != nil
}

// FilterFocus returns the focused filter editor section and option
func (c *ModelContext) FilterFocus() (types.FilterSection, int) {
	return c.State.FilterSection, c.State.FilterOption
}

// ProfileFocus returns the focused profile editor field
func (c *ModelContext) ProfileFocus() types.ProfileField {
	return c.State.ProfileField
}

func (c *ModelContext) HasUser() bool {
	return c.State.User != nil
}
