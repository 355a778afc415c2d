package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"homelyhub/internal/account"
	"homelyhub/internal/api"
	"homelyhub/internal/catalog"
	"homelyhub/internal/config"
	"homelyhub/internal/eventbus"
	"homelyhub/internal/logger"
	"homelyhub/internal/ui"
)

func main() {
	var (
		apiURL     string
		configPath string
		scope      string
	)
	flag.StringVar(&apiURL, "api", "", "Backend base URL (overrides config and "+config.EnvAPIURL+")")
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&scope, "scope", "", "Filter scope: catalog or page")
	flag.Parse()

	// Load configuration
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if scope != "" {
		cfg.Listing.FilterScope = scope
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	log, flush, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Format: cfg.Log.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not set up logging: %v\n", err)
		os.Exit(1)
	}
	defer flush()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := api.NewClient(api.Options{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.RequestTimeout(),
	}, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating API client: %v\n", err)
		os.Exit(1)
	}

	bus := eventbus.New(log)
	defer bus.Close()

	catalogSvc := catalog.NewService(bus, client, catalog.Options{Timeout: cfg.RequestTimeout() * 3}, log)
	defer catalogSvc.Close()
	accountSvc := account.NewService(bus, client, cfg.RequestTimeout(), log)
	defer accountSvc.Close()

	bus.Subscribe(eventbus.EventFiltersApplied, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FiltersAppliedEvent); ok {
			log.Info("filters applied", zap.Strings("tags", event.Criteria.Tags()))
		}
	})
	bus.Subscribe(eventbus.EventFiltersCleared, func(eventbus.DomainEvent) {
		log.Info("filters cleared")
	})
	bus.Subscribe(eventbus.EventAppReady, func(eventbus.DomainEvent) {
		log.Debug("services ready")
	})

	uiModel := ui.NewModel(bus, cfg, log)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward service results to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("event channel full, dropping event", zap.String("type", string(e.Type())))
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventPropertiesLoaded,
		eventbus.EventPropertiesLoadFailed,
		eventbus.EventUserLoaded,
		eventbus.EventProfileUpdated,
		eventbus.EventProfileUpdateFailed,
		eventbus.EventError,
	} {
		bus.Subscribe(t, forward)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			}
		}
	}()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			p.Quit()
		case <-ctx.Done():
		}
	}()

	bus.Publish(eventbus.AppReadyEvent{})
	if os.Getenv("HOMELYHUB_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Info("starting UI", zap.String("api", cfg.API.BaseURL), zap.String("scope", string(cfg.Scope())))
	if _, err := p.Run(); err != nil {
		log.Error("program failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("UI exited normally")
}
