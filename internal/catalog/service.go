// Package catalog fetches listing pages from the backend on behalf of the UI.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"homelyhub/internal/api"
	"homelyhub/internal/domain"
	"homelyhub/internal/eventbus"
	"homelyhub/internal/listing"
)

// MaxCatalogPages bounds how many backend pages a catalog fetch walks
const MaxCatalogPages = 200

// Lister is the subset of the backend client the service needs
type Lister interface {
	ListProperties(ctx context.Context, page int) (*api.PropertyPage, error)
}

// Options configures the service
type Options struct {
	Timeout time.Duration // per fetch, all pages included
	Workers int           // concurrent page requests in catalog scope
}

// Service answers PageRequested events with PropertiesLoaded or
// PropertiesLoadFailed. A new request cancels the one in flight.
type Service struct {
	bus     eventbus.EventBus
	lister  Lister
	logger  *zap.Logger
	timeout time.Duration
	workers chan struct{}

	mu       sync.Mutex
	cancel   context.CancelFunc
	inflight uint64

	unsubscribe func()
}

// NewService creates the service and subscribes it to the bus
func NewService(bus eventbus.EventBus, lister Lister, opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}

	s := &Service{
		bus:     bus,
		lister:  lister,
		logger:  logger.Named("catalog"),
		timeout: opts.Timeout,
		workers: make(chan struct{}, opts.Workers),
	}

	s.unsubscribe = bus.Subscribe(eventbus.EventPageRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageRequestedEvent); ok {
			s.handle(event)
		}
	})

	return s
}

// Close unsubscribes and cancels any fetch in flight
func (s *Service) Close() {
	s.unsubscribe()
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
}

func (s *Service) handle(event eventbus.PageRequestedEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	s.mu.Lock()
	if event.Seq < s.inflight {
		// an older request arrived after a newer one
		s.mu.Unlock()
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.inflight = event.Seq
	s.mu.Unlock()

	var (
		props []domain.Property
		total int
		err   error
	)
	if event.Scope == domain.ScopePage {
		props, total, err = s.fetchPage(ctx, event.Page)
	} else {
		props, total, err = s.FetchCatalog(ctx)
	}

	if !s.isCurrent(event.Seq) || errors.Is(ctx.Err(), context.Canceled) {
		s.logger.Debug("dropping superseded result", zap.Uint64("seq", event.Seq))
		return
	}

	if err != nil {
		s.logger.Error("listing fetch failed",
			zap.Uint64("seq", event.Seq), zap.Int("page", event.Page), zap.Error(err))
		s.bus.Publish(eventbus.PropertiesLoadFailedEvent{Seq: event.Seq, Page: event.Page, Err: err})
		return
	}

	s.logger.Info("listing loaded",
		zap.Uint64("seq", event.Seq), zap.String("scope", string(event.Scope)),
		zap.Int("page", event.Page), zap.Int("count", len(props)), zap.Int("total", total))
	s.bus.Publish(eventbus.PropertiesLoadedEvent{
		Seq:        event.Seq,
		Page:       event.Page,
		Scope:      event.Scope,
		Properties: props,
		Total:      total,
	})
}

func (s *Service) isCurrent(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight == seq
}

func (s *Service) fetchPage(ctx context.Context, page int) ([]domain.Property, int, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, 0, err
	}
	defer s.release()

	res, err := s.lister.ListProperties(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	return res.Properties, res.Total, nil
}

// FetchCatalog walks every backend page and returns the whole catalog in
// backend order. Page 1 tells how many pages to fetch; the rest are
// requested concurrently.
func (s *Service) FetchCatalog(ctx context.Context) ([]domain.Property, int, error) {
	first, total, err := s.fetchPage(ctx, 1)
	if err != nil {
		return nil, 0, err
	}

	pages := listing.LastPage(total)
	if pages > MaxCatalogPages {
		s.logger.Warn("catalog truncated", zap.Int("pages", pages), zap.Int("max", MaxCatalogPages))
		pages = MaxCatalogPages
	}
	if pages <= 1 || len(first) == 0 {
		return first, total, nil
	}

	results := make([][]domain.Property, pages)
	results[0] = first

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	for page := 2; page <= pages; page++ {
		wg.Add(1)
		go func(page int) {
			defer wg.Done()
			props, _, err := s.fetchPage(ctx, page)
			if err != nil {
				errOnce.Do(func() {
					firstErr = fmt.Errorf("catalog page %d: %w", page, err)
					cancel()
				})
				return
			}
			results[page-1] = props
		}(page)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, 0, firstErr
	}

	all := make([]domain.Property, 0, total)
	for page, props := range results {
		if len(props) == 0 {
			// the catalog changed while we walked it; later pages may still hold data
			s.logger.Debug("empty catalog page", zap.Int("page", page+1))
			continue
		}
		all = append(all, props...)
	}
	return all, len(all), nil
}

func (s *Service) acquire(ctx context.Context) error {
	select {
	case s.workers <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) release() {
	<-s.workers
}
