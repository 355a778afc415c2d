package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"homelyhub/internal/domain"
	"homelyhub/internal/eventbus"
	"homelyhub/internal/listing"
	"homelyhub/internal/profile"
	"homelyhub/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
	Seq   *listing.Sequencer
}

// FetchPageCommand requests a listing page (or the whole catalog)
type FetchPageCommand struct {
	ctx  *CommandContext
	page int
}

// NewFetchPageCommand creates a new fetch command
func NewFetchPageCommand(ctx *CommandContext, page int) *FetchPageCommand {
	return &FetchPageCommand{ctx: ctx, page: page}
}

// Execute marks the listing as loading and publishes the request.
// Any earlier request still in flight is superseded.
func (c *FetchPageCommand) Execute() tea.Cmd {
	s := c.ctx.State
	s.Loading = true
	s.LoadError = ""
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.PageRequestedEvent{
			Seq:   c.ctx.Seq.Next(),
			Page:  c.page,
			Scope: s.Scope,
		})
	}
	return nil
}

// ApplyFiltersCommand replaces the applied criteria
type ApplyFiltersCommand struct {
	ctx      *CommandContext
	criteria domain.FilterCriteria
}

// NewApplyFiltersCommand creates a new apply command
func NewApplyFiltersCommand(ctx *CommandContext, criteria domain.FilterCriteria) *ApplyFiltersCommand {
	return &ApplyFiltersCommand{ctx: ctx, criteria: criteria}
}

// Execute stores the criteria unchanged. Filtering itself happens when the
// view is derived.
func (c *ApplyFiltersCommand) Execute() tea.Cmd {
	s := c.ctx.State
	s.SetFilters(c.criteria)
	if s.Scope == domain.ScopeCatalog {
		s.Page = 1
	}
	s.ResetSelection()
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.FiltersAppliedEvent{Criteria: c.criteria.Clone()})
	}
	return nil
}

// ClearFiltersCommand removes the applied criteria
type ClearFiltersCommand struct {
	ctx *CommandContext
}

// NewClearFiltersCommand creates a new clear command
func NewClearFiltersCommand(ctx *CommandContext) *ClearFiltersCommand {
	return &ClearFiltersCommand{ctx: ctx}
}

// Execute clears the criteria
func (c *ClearFiltersCommand) Execute() tea.Cmd {
	s := c.ctx.State
	s.ClearFilters()
	if s.Scope == domain.ScopeCatalog {
		s.Page = 1
	}
	s.ResetSelection()
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.FiltersClearedEvent{})
	}
	return nil
}

// LoadUserCommand requests the signed-in user
type LoadUserCommand struct {
	ctx *CommandContext
}

// NewLoadUserCommand creates a new load command
func NewLoadUserCommand(ctx *CommandContext) *LoadUserCommand {
	return &LoadUserCommand{ctx: ctx}
}

// Execute publishes the request
func (c *LoadUserCommand) Execute() tea.Cmd {
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.UserRequestedEvent{})
	}
	return nil
}

// SubmitProfileCommand sends the changed profile fields
type SubmitProfileCommand struct {
	ctx *CommandContext
}

// NewSubmitProfileCommand creates a new submit command
func NewSubmitProfileCommand(ctx *CommandContext) *SubmitProfileCommand {
	return &SubmitProfileCommand{ctx: ctx}
}

// Execute validates locally. A rejected submission never reaches the bus.
func (c *SubmitProfileCommand) Execute() tea.Cmd {
	s := c.ctx.State
	if s.Form == nil {
		return nil
	}
	update, err := s.Form.Submit()
	if err != nil {
		s.SetStatus(state.StatusError, profile.UserMessage(err))
		return nil
	}
	s.SetStatus(state.StatusInfo, "Saving profile...")
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.ProfileUpdateRequestedEvent{Update: update})
	}
	return nil
}
