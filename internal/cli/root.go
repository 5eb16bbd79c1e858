package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"userdeck/internal/config"
	"userdeck/internal/datasource"
	"userdeck/internal/eventbus"
	"userdeck/internal/logging"
	"userdeck/internal/ui"
)

// RootCommand represents the userdeck command
type RootCommand struct {
	cmd *cobra.Command
}

// NewRootCommand creates the root cobra command with its flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "userdeck",
		Short: "Browse and filter a directory of users in the terminal",
		Long: `userdeck fetches a batch of users once and lets you narrow the list by
name, username or email, by nationality and by date of birth.

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  The config file lives at $XDG_CONFIG_HOME/userdeck/config.toml and is created on first run.
  A .env file in the working directory is read before the environment.

    USERDECK_ENDPOINT                      User API endpoint (default: https://randomuser.me/api/)
    USERDECK_SEED                          Seed for a reproducible batch
    USERDECK_TIMEOUT_SECONDS               Request timeout in seconds (default: 10)
    USERDECK_LOG_FILE                      Log file (default: userdeck.log)
    USERDECK_LOG_LEVEL                     debug, info, warn or error (default: info)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd.Context())
		},
	}

	root.addFlags()
	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

func (r *RootCommand) addFlags() {
	flags := r.cmd.Flags()
	flags.String("config", "", "Config file (default: $XDG_CONFIG_HOME/userdeck/config.toml)")
	flags.String("endpoint", "", "User API endpoint (overrides USERDECK_ENDPOINT)")
	flags.String("seed", "", "Seed for a reproducible batch (overrides USERDECK_SEED)")
	flags.Int("timeout", 0, "Request timeout in seconds (overrides USERDECK_TIMEOUT_SECONDS)")
	flags.String("log-file", "", "Log file (overrides USERDECK_LOG_FILE)")
	flags.String("log-level", "", "Log level (overrides USERDECK_LOG_LEVEL)")
}

// resolveConfig loads the config file and environment, then applies flag
// overrides. created reports whether a default file was written.
func (r *RootCommand) resolveConfig() (cfg *config.Config, svc config.ConfigService, created bool, err error) {
	flags := r.cmd.Flags()

	path, _ := flags.GetString("config")
	svc = config.NewConfigService(path)
	if _, statErr := os.Stat(svc.Path()); errors.Is(statErr, os.ErrNotExist) {
		created = true
	}

	cfg, err = svc.Load()
	if err != nil {
		return nil, nil, false, err
	}

	if flags.Changed("endpoint") {
		cfg.Source.Endpoint, _ = flags.GetString("endpoint")
	}
	if flags.Changed("seed") {
		cfg.Source.Seed, _ = flags.GetString("seed")
	}
	if flags.Changed("timeout") {
		cfg.Source.TimeoutSeconds, _ = flags.GetInt("timeout")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	if err := svc.Validate(cfg); err != nil {
		return nil, nil, false, err
	}
	return cfg, svc, created, nil
}

func (r *RootCommand) run(parent context.Context) error {
	cfg, svc, created, err := r.resolveConfig()
	if err != nil {
		return err
	}

	logger, cleanup, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return err
	}
	defer cleanup()
	logger.Infow("starting userdeck", "config", svc.Path(), "endpoint", cfg.Source.Endpoint)

	// Create context for graceful shutdown
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New(logger)
	defer bus.Close()

	uiModel := ui.NewModel(cfg, logger)
	defer uiModel.Dispose()

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	eventChan := forwardEvents(bus, logger,
		eventbus.EventDatasetRequested,
		eventbus.EventDatasetLoaded,
		eventbus.EventDatasetFailed,
		eventbus.EventConfigSaved,
	)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	if created {
		bus.Publish(eventbus.ConfigSavedEvent{Path: svc.Path()})
	}

	client := datasource.NewClient(cfg.Source.Endpoint, cfg.Source.Seed, cfg.Source.Timeout(), logger)
	defer client.Close()
	loader := datasource.NewLoader(client, bus, client.Endpoint(), logger)
	go loader.Load(ctx)

	_, runErr := p.Run()

	// Cleanup
	cancel()
	bus.Close()
	close(eventChan)

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		logger.Errorw("program exited with error", "error", runErr)
		return fmt.Errorf("error running program: %w", runErr)
	}
	logger.Infow("userdeck stopped")
	return nil
}

// forwardEvents subscribes to eventTypes and copies each event into a
// buffered channel. Events are dropped when the channel is full.
func forwardEvents(bus eventbus.EventBus, logger *zap.SugaredLogger, eventTypes ...eventbus.EventType) chan eventbus.DomainEvent {
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, t := range eventTypes {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				logger.Warnw("event channel full, dropping event", "type", e.Type())
			}
		})
	}
	return eventChan
}
