package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"quickboard/internal/backend"
	"quickboard/internal/config"
	"quickboard/internal/dispatch"
	"quickboard/internal/domain"
	"quickboard/internal/errlog"
	"quickboard/internal/eventbus"
	"quickboard/internal/hotkey"
	"quickboard/internal/platform"
	"quickboard/internal/platform/terminal"
	"quickboard/internal/search"
	"quickboard/internal/selection"
	"quickboard/internal/ui"
	"quickboard/internal/window"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&configPath, "c", "", "Path to config file (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("quickboard.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigService()
	cfg := loadOrCreateConfig(configSvc, configPath)

	// Backend client and health/stats poll
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout())
	monitor := backend.NewStatusMonitor(client, bus, cfg.Backend.StatsPoll())

	// Terminal adapter serves all three capabilities in this build
	adapter := terminal.New(bus)

	// Window lifecycle
	opts := platform.WindowOptions{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	}
	windows := window.NewManager(adapter, bus, opts, cfg.Window.ToggleCooldown())

	// Search coordination
	coordinator := search.NewCoordinator(client, bus, cfg.Search.Debounce(), cfg.Search.Refresh(), cfg.Search.Limit)

	// Selection and commit path
	sel := selection.NewService()
	dispatcher := dispatch.NewDispatcher(adapter, client, bus, func() {
		if err := windows.Hide(cfg.Window.Label); err != nil {
			log.Printf("Failed to hide window after commit: %v", err)
		}
	})
	sel.SetCommitFunction(func(index int) {
		items := coordinator.Items()
		if index < 0 || index >= len(items) {
			return
		}
		item := items[index]
		// The image fetch can block, keep it off the UI loop
		go func() {
			_ = dispatcher.Commit(ctx, item)
		}()
	})

	// Hotkey binding: toggles the overlay
	registry := hotkey.NewRegistry(adapter, bus, cfg.Hotkey.Combo, func() {
		if err := windows.Toggle(cfg.Window.Label); err != nil {
			log.Printf("Toggle failed: %v", err)
		}
	}, cfg.Hotkey.Keepalive())

	// Observable error log
	errors := errlog.New(bus)
	defer errors.Close()

	// Create UI model and Bubble Tea program
	pager := ui.NewItemPager()
	model := ui.NewModel(cfg, coordinator, sel, windows, adapter, client, errors, pager)
	p := tea.NewProgram(model, tea.WithAltScreen())
	adapter.SetProgram(p)
	pager.SetProgram(p)

	// Forward bus events to the UI
	eventChan := make(chan domain.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, eventType := range []domain.EventType{
		domain.EventResultsUpdated,
		domain.EventBackendStatus,
		domain.EventStatsUpdated,
		domain.EventWindowShown,
		domain.EventWindowHidden,
		domain.EventItemCopied,
		domain.EventHotkeyStatus,
		domain.EventError,
	} {
		bus.Subscribe(eventType, forward)
	}
	go func() {
		for e := range eventChan {
			p.Send(ui.EventMsg{Event: e})
		}
	}()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
		p.Quit()
	}()

	// Register the activation binding; a failure is retried by keepalive
	if err := registry.Register(); err != nil {
		log.Printf("Initial hotkey registration failed: %v", err)
	}
	registry.Start(ctx)
	monitor.Start(ctx)
	coordinator.Start(ctx)

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	registry.Close()
	cancel()
}

// loadOrCreateConfig loads the config or writes defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService, configPath string) *config.Config {
	if configPath != "" {
		if cfg, err := configSvc.LoadFromPath(configPath); err == nil {
			log.Printf("Loaded config from %s", configPath)
			return cfg
		} else {
			log.Printf("Failed to load config from %s: %v, using defaults", configPath, err)
			return config.DefaultConfig()
		}
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config: %v, using defaults", err)
		return config.DefaultConfig()
	}

	// Persist defaults on first run so the file is there to edit
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg
}
