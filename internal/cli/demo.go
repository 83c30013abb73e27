package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"combobox/internal/catalog"
	"combobox/internal/domain"
	"combobox/internal/eventbus"
	"combobox/internal/logging"
	"combobox/internal/ui"
	"combobox/internal/ui/widget"
)

// DemoOptions holds the flags only the demo accepts
type DemoOptions struct {
	Placeholder string
	Async       bool
}

func runDemo(opts *RootOptions, demo *DemoOptions, cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	defer bus.Close()

	cfg, err := opts.setup(bus)
	if err != nil {
		return err
	}
	log := logging.Named("demo")

	items, err := opts.loadItems(ctx, cfg, bus)
	if err != nil {
		return err
	}

	wopts := widget.Options{
		Placeholder: demo.Placeholder,
		Bus:         bus,
	}
	if demo.Async || cfg.UISettings.AsyncSearch {
		delay := time.Duration(cfg.UISettings.SearchDelayMS) * time.Millisecond
		wopts.Source = catalog.NewStaticSource(items, delay)
	}

	page := ui.NewModel(cfg, ui.NewWidget(cfg, items, wopts))
	p := tea.NewProgram(page,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	page.SetProgram(p)

	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SelectionChangedEvent); ok {
			log.Info("Selection changed",
				zap.Strings("added", domain.Values(ev.Added)),
				zap.Strings("removed", domain.Values(ev.Removed)),
				zap.Strings("selected", domain.Values(ev.Selected)),
			)
		}
		p.Send(ui.EventMsg{Event: e})
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			log.Error(ev.Message, zap.Error(ev.Err))
		}
		p.Send(ui.EventMsg{Event: e})
	})
	bus.Subscribe(eventbus.EventStaleResult, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.StaleResultEvent); ok {
			log.Debug("Stale search result dropped",
				zap.Uint64("seq", ev.Sequence),
				zap.Uint64("latest", ev.Latest),
			)
		}
	})

	log.Info("Starting UI", zap.Int("items", len(items)), zap.Bool("async", wopts.Source != nil))
	if _, err := p.Run(); err != nil {
		log.Error("Error running program", zap.Error(err))
		return fmt.Errorf("failed to run program: %w", err)
	}
	log.Info("UI exited normally")

	for _, value := range domain.Values(page.Selected()) {
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}
