package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"homelyhub/internal/domain"
	"homelyhub/internal/eventbus"
	"homelyhub/internal/listing"
	"homelyhub/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus, seq *listing.Sequencer) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
			Seq:   seq,
		},
	}
}

// ExecuteFetchPage creates and executes a fetch command
func (e *Executor) ExecuteFetchPage(page int) tea.Cmd {
	return NewFetchPageCommand(e.ctx, page).Execute()
}

// ExecuteApplyFilters creates and executes an apply command
func (e *Executor) ExecuteApplyFilters(criteria domain.FilterCriteria) tea.Cmd {
	return NewApplyFiltersCommand(e.ctx, criteria).Execute()
}

// ExecuteClearFilters creates and executes a clear command
func (e *Executor) ExecuteClearFilters() tea.Cmd {
	return NewClearFiltersCommand(e.ctx).Execute()
}

// ExecuteLoadUser creates and executes a user load command
func (e *Executor) ExecuteLoadUser() tea.Cmd {
	return NewLoadUserCommand(e.ctx).Execute()
}

// ExecuteSubmitProfile creates and executes a profile submit command
func (e *Executor) ExecuteSubmitProfile() tea.Cmd {
	return NewSubmitProfileCommand(e.ctx).Execute()
}
