package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageRequested          EventType = "PageRequested"
	EventPropertiesLoaded       EventType = "PropertiesLoaded"
	EventPropertiesLoadFailed   EventType = "PropertiesLoadFailed"
	EventFiltersApplied         EventType = "FiltersApplied"
	EventFiltersCleared         EventType = "FiltersCleared"
	EventUserRequested          EventType = "UserRequested"
	EventUserLoaded             EventType = "UserLoaded"
	EventProfileUpdateRequested EventType = "ProfileUpdateRequested"
	EventProfileUpdated         EventType = "ProfileUpdated"
	EventProfileUpdateFailed    EventType = "ProfileUpdateFailed"
	EventError                  EventType = "Error"
	EventAppReady               EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageRequestedEvent asks the catalog service for a listing page.
// Seq increases with every request; only the latest one is displayed.
type PageRequestedEvent struct {
	Seq   uint64
	Page  int
	Scope FilterScope
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// PropertiesLoadedEvent carries a fetched page (ScopePage) or the whole catalog (ScopeCatalog)
type PropertiesLoadedEvent struct {
	Seq        uint64
	Page       int
	Scope      FilterScope
	Properties []Property
	Total      int
}

func (e PropertiesLoadedEvent) Type() EventType { return EventPropertiesLoaded }

// PropertiesLoadFailedEvent is emitted when a listing fetch fails
type PropertiesLoadFailedEvent struct {
	Seq  uint64
	Page int
	Err  error
}

func (e PropertiesLoadFailedEvent) Type() EventType { return EventPropertiesLoadFailed }

// FiltersAppliedEvent is emitted when new criteria replace the applied ones
type FiltersAppliedEvent struct {
	Criteria FilterCriteria
}

func (e FiltersAppliedEvent) Type() EventType { return EventFiltersApplied }

// FiltersClearedEvent is emitted when the applied criteria are removed
type FiltersClearedEvent struct{}

func (e FiltersClearedEvent) Type() EventType { return EventFiltersCleared }

// UserRequestedEvent asks the account service for the signed-in user
type UserRequestedEvent struct{}

func (e UserRequestedEvent) Type() EventType { return EventUserRequested }

// UserLoadedEvent carries the signed-in user
type UserLoadedEvent struct {
	User User
}

func (e UserLoadedEvent) Type() EventType { return EventUserLoaded }

// ProfileUpdateRequestedEvent carries the changed profile fields
type ProfileUpdateRequestedEvent struct {
	Update UserUpdate
}

func (e ProfileUpdateRequestedEvent) Type() EventType { return EventProfileUpdateRequested }

// ProfileUpdatedEvent is emitted when the backend accepted a profile update
type ProfileUpdatedEvent struct {
	User User
}

func (e ProfileUpdatedEvent) Type() EventType { return EventProfileUpdated }

// ProfileUpdateFailedEvent carries the errors reported for a profile update
type ProfileUpdateFailedEvent struct {
	Messages []string
	Err      error
}

func (e ProfileUpdateFailedEvent) Type() EventType { return EventProfileUpdateFailed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct{}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
