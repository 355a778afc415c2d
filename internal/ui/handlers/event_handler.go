package handlers

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"homelyhub/internal/eventbus"
	"homelyhub/internal/listing"
	"homelyhub/internal/profile"
	"homelyhub/internal/ui/state"
)

// How long a backend error stays on screen before it is acknowledged
const errorDisplayTime = 4 * time.Second

// ErrorsShownMsg is delivered once backend errors have been displayed
type ErrorsShownMsg struct{}

// ProfileSavedMsg asks the model to return to the profile view
type ProfileSavedMsg struct{}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state  *state.AppState
	seq    *listing.Sequencer
	logger *zap.Logger
	now    func() time.Time
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, seq *listing.Sequencer, logger *zap.Logger) *EventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHandler{
		state:  appState,
		seq:    seq,
		logger: logger.Named("events"),
		now:    time.Now,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.PropertiesLoadedEvent:
		if !h.seq.IsLatest(e.Seq) {
			h.logger.Debug("dropping stale listing", zap.Uint64("seq", e.Seq), zap.Uint64("latest", h.seq.Latest()))
			return nil
		}
		h.state.Snapshot = &listing.Snapshot{
			Seq:        e.Seq,
			Scope:      e.Scope,
			Page:       e.Page,
			Total:      e.Total,
			Properties: e.Properties,
		}
		h.state.Loading = false
		h.state.LoadError = ""
		h.state.LoadedOnce = true
		h.state.ResetSelection()
		h.state.RestartReveal(h.now())

	case eventbus.PropertiesLoadFailedEvent:
		if !h.seq.IsLatest(e.Seq) {
			return nil
		}
		h.state.Loading = false
		h.state.LoadError = "Failed to load properties"
		h.state.SetStatus(state.StatusError, "Failed to load properties. Press r to retry.")

	case eventbus.UserLoadedEvent:
		user := e.User
		h.state.User = &user
		// an open or in-flight edit keeps its draft
		switch {
		case h.state.Form == nil:
			h.state.Form = profile.NewForm(user)
		case h.state.Form.Status() != profile.StatusEditing && h.state.Form.Status() != profile.StatusSubmitting:
			h.state.Form = profile.NewForm(user)
		}

	case eventbus.ProfileUpdatedEvent:
		user := e.User
		h.state.User = &user
		if h.state.Form == nil {
			h.state.Form = profile.NewForm(user)
		}
		h.state.Form.Succeeded(user)
		h.state.AvatarPath = ""
		h.state.SetStatus(state.StatusSuccess, "Profile Updated")
		return func() tea.Msg { return ProfileSavedMsg{} }

	case eventbus.ProfileUpdateFailedEvent:
		if h.state.Form != nil {
			h.state.Form.Failed()
		}
		h.state.Errors = e.Messages
		h.state.SetStatus(state.StatusError, strings.Join(e.Messages, "; "))
		return tea.Tick(errorDisplayTime, func(time.Time) tea.Msg { return ErrorsShownMsg{} })

	case eventbus.ErrorEvent:
		h.state.SetStatus(state.StatusError, "Error: "+e.Message)
	}

	return nil
}
