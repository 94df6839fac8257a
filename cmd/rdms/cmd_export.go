package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rdms/internal/interchange"
	"rdms/internal/logging"
)

// exportCmd writes a timestamped snapshot without opening the form
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save the entries in entries.csv as a timestamped snapshot",
	Long: `Loads entries.csv from the data directory and writes the entries to
research_data_YYYYMMDD_HHMMSS.csv (or the configured prefix) next to it.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	path, err := s.exporter().Export(s.store.All())
	if errors.Is(err, interchange.ErrNoEntries) {
		return fmt.Errorf("nothing to export from %s: %w", s.cfg.Data.ImportFile, err)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	logger.Info("Exported entries",
		zap.String("path", path),
		zap.Int("count", s.store.Len()),
		zap.Int("skipped", len(s.result.Skipped)))
	fmt.Printf("Entries have been saved to %s.\n", filepath.Base(path))
	return nil
}
