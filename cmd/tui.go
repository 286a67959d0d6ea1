package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nownext/nownext/internal/store"
	"github.com/nownext/nownext/internal/tui"
	"github.com/nownext/nownext/internal/watcher"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive two-pane view",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	model := tui.New(store.New(cfg))
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Reload pages when another process edits them.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := watcher.New(model.WatchPaths(), func() {
		program.Send(tui.ReloadMsg{})
	})
	if err != nil {
		return fmt.Errorf("watching pages directory: %w", err)
	}
	defer func() { _ = w.Close() }()
	go w.Run(ctx, nil)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
