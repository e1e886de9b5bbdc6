package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"optgrip/internal/config"
	"optgrip/internal/domain"
	"optgrip/internal/eventbus"
	"optgrip/internal/ui"
)

func main() {
	var (
		configPath string
		logPath    string
		noMouse    bool
	)
	flag.StringVarP(&configPath, "config", "c", config.DefaultFileName, "Config file with the options to choose from")
	flag.StringVar(&logPath, "log", "optgrip.log", "Log file")
	flag.BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")
	flag.Parse()

	absConfig, err := filepath.Abs(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	configSvc := config.NewConfigService()
	cfg := loadOrCreateConfig(configSvc, absConfig)

	bus := eventbus.New()

	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			log.Printf("Selection on %s now %v", event.WidgetID, domain.OptionIDs(event.Selected))
		}
	})

	// The subscriber owns its copy so the UI can keep reading cfg.
	saved := *cfg
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			saved.Selected = event.SelectedIDs
			if err := configSvc.SaveToPath(&saved, absConfig); err != nil {
				log.Printf("Failed to save config: %v", err)
			} else {
				log.Printf("Config saved to %s", absConfig)
			}
		}
	})

	pager := ui.NewOvPager()
	modelOpts := []ui.ModelOption{ui.WithPager(pager)}
	if os.Getenv("OPTGRIP_E2E_TEST") == "1" {
		modelOpts = append(modelOpts, ui.WithReadyMarker())
	}
	uiModel := ui.NewModel(bus, cfg, modelOpts...)

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UISettings.Mouse && !noMouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, programOpts...)
	pager.SetProgram(p)

	log.Printf("Starting UI with %d options from %s", len(cfg.Options), absConfig)
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		bus.Close()
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Deliver pending events (including the last save) before exiting
	bus.Close()

	for _, value := range domain.OptionValues(uiModel.Selected()) {
		fmt.Println(value)
	}
}

// loadOrCreateConfig loads config from path or writes the defaults there
func loadOrCreateConfig(configSvc config.ConfigService, path string) *config.Config {
	if _, err := os.Stat(path); err == nil {
		cfg, err := configSvc.LoadFromPath(path)
		if err == nil {
			log.Printf("Loaded config from %s", path)
			return cfg
		}
		// Keep a broken file for the user to fix instead of overwriting it
		log.Printf("Failed to load config, using defaults: %v", err)
		return config.DefaultConfig()
	}

	log.Printf("Creating new config at %s", path)
	cfg := config.DefaultConfig()
	if err := configSvc.SaveToPath(cfg, path); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg
}
