package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"autosuggest/internal/autocomplete"
	"autosuggest/internal/config"
	"autosuggest/internal/eventbus"
	"autosuggest/internal/source"
	"autosuggest/internal/ui"
	"autosuggest/internal/ui/views"
)

func main() {
	// Parse command line arguments
	var configPath, sourcePath, mode string
	flag.StringVar(&configPath, "config", "", "Config file (.toml, .yaml or .yml); defaults to the user config directory")
	flag.StringVar(&configPath, "c", "", "Config file (shorthand)")
	flag.StringVar(&sourcePath, "source", "", "Suggestion catalog (.txt or .json); overrides the config")
	flag.StringVar(&sourcePath, "s", "", "Suggestion catalog (shorthand)")
	flag.StringVar(&mode, "mode", "", "Matching mode, prefix or fuzzy; overrides the config")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("autosuggest.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath, bus)
	} else {
		configSvc = config.NewConfigServiceWithBus(bus)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Command line overrides apply to this run only and are never saved
	effective := *cfg
	if sourcePath != "" {
		effective.Source.Path = sourcePath
	}
	if mode != "" {
		effective.Source.Mode = mode
	}
	if err := effective.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(1)
	}

	src, err := source.FromConfig(effective.Source)
	if err != nil {
		log.Printf("Error loading suggestions: %v", err)
		fmt.Fprintf(os.Stderr, "Error loading suggestions: %v\n", err)
		os.Exit(1)
	}

	// Persist list size and delay changes made from the UI.
	// Only this handler writes cfg once the program is running.
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			cfg.Autocomplete.SuggestionListSize = event.SuggestionListSize
			cfg.Autocomplete.SuggestionDelay = event.SuggestionDelay
			if err := configSvc.Save(cfg); err != nil {
				log.Printf("Failed to save config: %v", err)
			} else {
				log.Printf("Config saved to %s", configSvc.Path())
			}
		}
	})

	ac, err := autocomplete.New(src, eventbus.NewSink(bus), cfg.Autocomplete,
		autocomplete.WithBus(bus),
		autocomplete.WithPrompt("> "),
		autocomplete.WithPlaceholder(cfg.UISettings.Placeholder),
		autocomplete.WithWidth(cfg.UISettings.Width),
		autocomplete.WithStyles(views.NewStyles().Dropdown),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating autocomplete: %v\n", err)
		os.Exit(1)
	}

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)

	// Forward events to the event channel
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSuggestionSelected,
		eventbus.EventFetchFailed,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, forwardEvent)
	}

	uiModel := ui.NewModel(bus, cfg, ac)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	log.Printf("Starting UI...")
	_, runErr := p.Run()

	// Cleanup: stop in-flight fetches, drain the bus, then the forwarder
	ac.Detach()
	bus.Close()
	close(eventChan)

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", runErr)
		fmt.Printf("Error running program: %v\n", runErr)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
