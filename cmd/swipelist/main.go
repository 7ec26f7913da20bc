package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"swipelist/internal/config"
	"swipelist/internal/deck"
	"swipelist/internal/domain"
	"swipelist/internal/eventbus"
	"swipelist/internal/history"
	"swipelist/internal/ui"
)

// options holds the persistent flags
type options struct {
	configPath string
	logFile    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "swipelist [deck.md]",
		Short:        "Page through a markdown deck one card at a time",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		Example: strings.TrimSpace(`
  # Page through placeholder cards
  swipelist

  # Page through a deck; pages are separated by lines containing only ---
  swipelist talk.md

  # Show the most recently displayed pages
  swipelist history -n 10
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckPath := ""
			if len(args) == 1 {
				deckPath = args[0]
			}
			return run(cmd.Context(), opts, deckPath)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path (default: user config dir)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "log file path (overrides log_file in config)")

	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

func configService(opts *options, bus eventbus.EventBus) config.ConfigService {
	if opts.configPath != "" {
		return config.NewConfigServiceWithPath(opts.configPath, bus)
	}
	if bus != nil {
		return config.NewConfigServiceWithBus(bus)
	}
	return config.NewConfigService()
}

// setupLogging sends the standard logger to the log file so it does not
// draw over the UI
func setupLogging(cfg *config.Config, opts *options) func() {
	path := cfg.LogFile
	if opts.logFile != "" {
		path = opts.logFile
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() { _ = logFile.Close() }
}

func loadDeck(path string, cfg *config.Config) (domain.Deck, error) {
	if path == "" {
		return deck.Placeholder(cfg.Deck.PlaceholderItems), nil
	}
	return deck.Load(path)
}

func run(parent context.Context, opts *options, deckPath string) error {
	if parent == nil {
		parent = context.Background()
	}
	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create event bus. Closing it drains queued events into the journal,
	// so the journal closes after it.
	bus := eventbus.New()
	var journal *history.Store
	defer func() {
		bus.Close()
		if journal != nil {
			_ = journal.Close()
		}
	}()

	configSvc := configService(opts, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	closeLog := setupLogging(cfg, opts)
	defer closeLog()

	d, err := loadDeck(deckPath, cfg)
	if err != nil {
		return err
	}
	log.Printf("Loaded deck %q with %d pages", d.Name, d.Len())

	if cfg.History.Enabled {
		store, err := history.Open(ctx, cfg.History.Path)
		if err != nil {
			log.Printf("History disabled: %v", err)
		} else {
			journal = store
			bus.Subscribe(eventbus.EventDisplayItemChanged, func(e eventbus.DomainEvent) {
				if event, ok := e.(eventbus.DisplayItemChangedEvent); ok {
					err := store.Record(context.Background(), history.Entry{
						Deck:   event.Deck,
						Index:  event.Index,
						Offset: event.Offset,
						At:     event.At,
					})
					if err != nil {
						log.Printf("Failed to record display: %v", err)
					}
				}
			})
		}
	}

	// Subscribe to config changes to save automatically
	saved := *cfg
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			saved.List.ScrollDirection = event.ScrollDirection
			saved.List.ScrollEnabled = event.ScrollEnabled
			saved.List.Margin.Left = event.Margin
			saved.List.Margin.Right = event.Margin
			if err := configSvc.Save(&saved); err != nil {
				log.Printf("Failed to save config: %v", err)
			} else {
				log.Printf("Config saved to %s", configSvc.Path())
			}
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s", event.Message)
		}
	})

	var modelOpts []ui.Option
	if deckPath != "" {
		modelOpts = append(modelOpts, ui.WithLoader(func() (domain.Deck, error) {
			return deck.Load(deckPath)
		}))
	}
	model := ui.NewModel(bus, cfg, d, modelOpts...)
	bus.Publish(eventbus.DeckLoadedEvent{Deck: d})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
