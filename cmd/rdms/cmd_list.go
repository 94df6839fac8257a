package main

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rdms/internal/entry"
	"rdms/internal/logging"
)

// listCmd prints the entries loaded from the import file
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the entries in entries.csv",
	Long: `Loads entries.csv from the data directory and prints it as a table.
Malformed rows are skipped and reported on stderr.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	for _, rowErr := range s.result.Skipped {
		logger.Warn("Skipped malformed row", zap.Int("line", rowErr.Line), zap.Error(rowErr.Err))
		fmt.Fprintf(os.Stderr, "skipped: %v\n", rowErr)
	}
	logger.Debug("Listing entries",
		zap.String("data_dir", s.dataDir),
		zap.Int("count", s.store.Len()))

	if s.store.Len() == 0 {
		fmt.Println("No entries.")
		return nil
	}
	writeEntryTable(os.Stdout, s.store.All())
	return nil
}

func writeEntryTable(w io.Writer, entries []entry.Entry) {
	data := make([][]string, 0, len(entries))
	for _, e := range entries {
		data = append(data, e.Fields())
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(entry.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
}
