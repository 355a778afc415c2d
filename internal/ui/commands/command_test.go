package commands

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homelyhub/internal/domain"
	"homelyhub/internal/eventbus"
	"homelyhub/internal/listing"
	"homelyhub/internal/profile"
	"homelyhub/internal/ui/state"
)

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }
func (b *recordingBus) Close()                                                   {}

func newExecutor(scope domain.FilterScope) (*Executor, *state.AppState, *recordingBus, *listing.Sequencer) {
	s := state.NewAppState(scope)
	bus := &recordingBus{}
	seq := &listing.Sequencer{}
	return NewExecutor(s, bus, seq), s, bus, seq
}

func TestFetchPagePublishesSequencedRequest(t *testing.T) {
	e, s, bus, seq := newExecutor(domain.ScopePage)

	e.ExecuteFetchPage(2)
	e.ExecuteFetchPage(3)

	assert.True(t, s.Loading)
	require.Len(t, bus.events, 2)
	second := bus.events[1].(eventbus.PageRequestedEvent)
	assert.Equal(t, 3, second.Page)
	assert.Equal(t, domain.ScopePage, second.Scope)
	assert.True(t, seq.IsLatest(second.Seq))
	assert.False(t, seq.IsLatest(bus.events[0].(eventbus.PageRequestedEvent).Seq))
}

func TestApplyFiltersResetsPageInCatalogScope(t *testing.T) {
	e, s, bus, _ := newExecutor(domain.ScopeCatalog)
	s.Page = 3
	s.SelectedIndex = 5

	c := domain.DefaultFilterCriteria()
	c.PropertyType = domain.PropertyTypeHouse
	e.ExecuteApplyFilters(c)

	require.NotNil(t, s.Filters())
	assert.Equal(t, c, *s.Filters())
	assert.Equal(t, 1, s.Page)
	assert.Zero(t, s.SelectedIndex)
	require.Len(t, bus.events, 1)
	assert.IsType(t, eventbus.FiltersAppliedEvent{}, bus.events[0])
}

func TestApplyFiltersKeepsPageInPageScope(t *testing.T) {
	e, s, _, _ := newExecutor(domain.ScopePage)
	s.Page = 3

	e.ExecuteApplyFilters(domain.DefaultFilterCriteria())
	assert.Equal(t, 3, s.Page)
}

func TestClearFilters(t *testing.T) {
	e, s, bus, _ := newExecutor(domain.ScopeCatalog)
	s.SetFilters(domain.DefaultFilterCriteria())

	e.ExecuteClearFilters()
	assert.Nil(t, s.Filters())
	assert.IsType(t, eventbus.FiltersClearedEvent{}, bus.events[0])
}

func TestSubmitProfileWithoutChangesNeverPublishes(t *testing.T) {
	e, s, bus, _ := newExecutor(domain.ScopeCatalog)
	s.Form = profile.NewForm(domain.User{Name: "Asha"})

	e.ExecuteSubmitProfile()

	assert.Empty(t, bus.events)
	assert.Equal(t, state.StatusError, s.StatusLevel)
	assert.Equal(t, "No changes made", s.StatusMessage)
}

func TestSubmitProfilePublishesChanges(t *testing.T) {
	e, s, bus, _ := newExecutor(domain.ScopeCatalog)
	s.Form = profile.NewForm(domain.User{Name: "Asha"})
	s.Form.SetName("Asha R")

	e.ExecuteSubmitProfile()

	require.Len(t, bus.events, 1)
	ev := bus.events[0].(eventbus.ProfileUpdateRequestedEvent)
	assert.Equal(t, domain.UserUpdate{Name: "Asha R"}, ev.Update)
	assert.Equal(t, profile.StatusSubmitting, s.Form.Status())
}

func TestLoadUser(t *testing.T) {
	e, _, bus, _ := newExecutor(domain.ScopeCatalog)
	e.ExecuteLoadUser()
	assert.IsType(t, eventbus.UserRequestedEvent{}, bus.events[0])
}
