// Package account loads and updates the signed-in user's profile.
package account

import (
	"context"
	"time"

	"go.uber.org/zap"

	"homelyhub/internal/api"
	"homelyhub/internal/domain"
	"homelyhub/internal/eventbus"
)

// Backend is the subset of the backend client the service needs
type Backend interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	UpdateUser(ctx context.Context, update domain.UserUpdate) (*domain.User, error)
}

// Service answers UserRequested and ProfileUpdateRequested events
type Service struct {
	bus     eventbus.EventBus
	backend Backend
	logger  *zap.Logger
	timeout time.Duration

	unsubscribe []func()
}

// NewService creates the service and subscribes it to the bus
func NewService(bus eventbus.EventBus, backend Backend, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	s := &Service{
		bus:     bus,
		backend: backend,
		logger:  logger.Named("account"),
		timeout: timeout,
	}

	s.unsubscribe = append(s.unsubscribe,
		bus.Subscribe(eventbus.EventUserRequested, func(e eventbus.DomainEvent) {
			if _, ok := e.(eventbus.UserRequestedEvent); ok {
				s.loadUser()
			}
		}),
		bus.Subscribe(eventbus.EventProfileUpdateRequested, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.ProfileUpdateRequestedEvent); ok {
				s.updateProfile(event.Update)
			}
		}),
	)

	return s
}

// Close unsubscribes the service from the bus
func (s *Service) Close() {
	for _, unsub := range s.unsubscribe {
		unsub()
	}
}

func (s *Service) loadUser() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	user, err := s.backend.CurrentUser(ctx)
	if err != nil {
		s.logger.Error("failed to load user", zap.Error(err))
		s.bus.Publish(eventbus.ErrorEvent{Message: "Failed to load profile", Err: err})
		return
	}
	s.logger.Info("user loaded", zap.String("user_id", user.ID))
	s.bus.Publish(eventbus.UserLoadedEvent{User: *user})
}

func (s *Service) updateProfile(update domain.UserUpdate) {
	if update.IsEmpty() {
		// the form rejects empty updates before they get here
		s.logger.Warn("ignoring empty profile update")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	user, err := s.backend.UpdateUser(ctx, update)
	if err != nil {
		s.logger.Error("profile update failed", zap.Strings("fields", update.Fields()), zap.Error(err))
		s.bus.Publish(eventbus.ProfileUpdateFailedEvent{Messages: api.Messages(err), Err: err})
		return
	}
	s.logger.Info("profile updated", zap.Strings("fields", update.Fields()))
	s.bus.Publish(eventbus.ProfileUpdatedEvent{User: *user})
}
