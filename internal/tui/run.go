package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/focusdeck/internal/clock"
	"github.com/idilsaglam/focusdeck/internal/config"
	"github.com/idilsaglam/focusdeck/internal/store/jsonstore"
	"github.com/idilsaglam/focusdeck/internal/store/watch"
)

// Run starts the dashboard and blocks until the user quits.
func Run(cfg config.Config, store *jsonstore.Store) error {
	watcher, err := watch.New(store.Path())
	if err != nil {
		// The dashboard works without live reload; degrade quietly.
		slog.Warn("state watcher unavailable", "err", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	m := NewModel(cfg, store, watcher, clock.Real())
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
