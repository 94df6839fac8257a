package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"rdms/cmd/rdms/ui"
	"rdms/internal/logging"
)

// formOptions builds the form model options for a session.
func formOptions(s *session) ui.FormOptions {
	return ui.FormOptions{
		Store:        s.store,
		Exporter:     s.exporter(),
		Theme:        ui.ThemeFor(s.cfg.UI.Theme),
		TickInterval: s.cfg.GetTickInterval(),
		FadeSteps:    s.cfg.UI.FadeSteps,
		Tooltips:     s.cfg.UI.Tooltips,
		Status:       s.importSummary(),
	}
}

// runForm starts the interactive entry form and blocks until it exits.
func runForm() error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	p := tea.NewProgram(ui.NewFormModel(formOptions(s)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form exited: %w", err)
	}
	logging.Boot("form closed with %d entries", s.store.Len())
	return nil
}
