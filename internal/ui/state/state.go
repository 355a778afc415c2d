package state

import (
	"time"

	"homelyhub/internal/domain"
	"homelyhub/internal/listing"
	"homelyhub/internal/profile"
	"homelyhub/internal/ui/input/types"
)

// StatusLevel colours the status bar message
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusSuccess
	StatusError
)

// AppState contains all the application state. Only the UI goroutine
// writes to it.
type AppState struct {
	// Listing data
	Scope       domain.FilterScope
	Snapshot    *listing.Snapshot // latest fetched data, nil until the first load
	Page        int               // 1-based page cursor
	Loading     bool
	LoadError   string
	LoadedOnce  bool
	applied     *domain.FilterCriteria

	// Selection state
	SelectedIndex  int
	ViewportOffset int // in cards
	ViewportHeight int // in cards

	// Filter editor
	FilterOpen    bool
	FilterSection types.FilterSection
	FilterOption  int

	// Profile
	User         *domain.User
	Form         *profile.Form
	ShowProfile  bool
	ProfileField types.ProfileField
	AvatarPath   string

	// Errors reported by the backend, shown once then acknowledged
	Errors []string

	// UI state
	ShowHelp         bool
	HelpScrollOffset int
	ShowDetail       bool
	StatusMessage    string
	StatusLevel      StatusLevel

	// Entrance animation
	RevealStart time.Time
	Revealed    int
}

// NewAppState creates a new application state
func NewAppState(scope domain.FilterScope) *AppState {
	return &AppState{
		Scope:          scope,
		Page:           1,
		ViewportHeight: 4,
	}
}

// Filters returns the applied criteria, nil when nothing is applied
func (s *AppState) Filters() *domain.FilterCriteria {
	return s.applied
}

// SetFilters replaces the applied criteria wholesale. The value is stored
// as a copy so later edits to c cannot leak in.
func (s *AppState) SetFilters(c domain.FilterCriteria) {
	clone := c.Clone()
	s.applied = &clone
}

// ClearFilters removes the applied criteria
func (s *AppState) ClearFilters() {
	s.applied = nil
}

// SetStatus sets the status bar message
func (s *AppState) SetStatus(level StatusLevel, msg string) {
	s.StatusLevel = level
	s.StatusMessage = msg
}

// ClearStatus clears the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusLevel = StatusInfo
}

// AckErrors clears the backend errors once they have been shown
func (s *AppState) AckErrors() {
	s.Errors = nil
}

// CurrentSnapshot returns the snapshot to display. In catalog scope it is
// positioned at the page cursor; in page scope the fetched page is shown
// until the next one arrives.
func (s *AppState) CurrentSnapshot() listing.Snapshot {
	if s.Snapshot == nil {
		return listing.Snapshot{Scope: s.Scope, Page: s.Page}
	}
	snap := *s.Snapshot
	if snap.Scope == domain.ScopeCatalog {
		snap.Page = s.Page
	}
	return snap
}

// ResetSelection puts the cursor back on the first card
func (s *AppState) ResetSelection() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// RestartReveal starts the entrance animation for a new set of cards
func (s *AppState) RestartReveal(now time.Time) {
	s.RevealStart = now
	s.Revealed = 0
}
