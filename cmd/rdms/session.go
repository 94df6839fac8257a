package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"rdms/internal/config"
	"rdms/internal/entry"
	"rdms/internal/interchange"
	"rdms/internal/logging"
)

// session is the state shared by every command: resolved config, the data
// directory and the store hydrated from the import file.
type session struct {
	cfg     *config.Config
	dataDir string
	store   *entry.Store
	result  interchange.Result
}

// openSession loads config, applies flag overrides, starts the category
// logger and imports entries.csv into a fresh store.
func openSession() (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if darkMode {
		cfg.UI.Theme = config.ThemeDark
	}

	dir, err := cfg.DataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}

	if err := logging.Initialize(dir, logging.Settings{
		DebugMode:  cfg.Logging.DebugMode,
		Categories: cfg.Logging.Categories,
		Level:      cfg.Logging.Level,
		JSONFormat: cfg.Logging.JSONFormat,
	}); err != nil {
		return nil, fmt.Errorf("initialize logging: %w", err)
	}
	logging.Boot("data dir %s, theme %s", dir, cfg.UI.Theme)

	store := entry.NewStore()
	res, err := interchange.LoadInto(store, filepath.Join(dir, cfg.Data.ImportFile))
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, dataDir: dir, store: store, result: res}, nil
}

func (s *session) exporter() interchange.Exporter {
	return interchange.Exporter{Dir: s.dataDir, Prefix: s.cfg.Data.ExportPrefix}
}

// importSummary describes the startup import for the status line.
func (s *session) importSummary() string {
	if !s.result.Found {
		return fmt.Sprintf("No %s found; starting with an empty list.", s.cfg.Data.ImportFile)
	}
	msg := fmt.Sprintf("Loaded %d entries from %s.", len(s.result.Entries), s.cfg.Data.ImportFile)
	if n := len(s.result.Skipped); n > 0 {
		lines := make([]string, 0, n)
		for _, rowErr := range s.result.Skipped {
			lines = append(lines, fmt.Sprint(rowErr.Line))
		}
		msg += fmt.Sprintf(" Skipped %d malformed rows (lines %s).", n, strings.Join(lines, ", "))
	}
	return msg
}
