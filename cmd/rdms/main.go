package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rdms/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dataDir    string
	darkMode   bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rdms",
	Short: "Research Data Management System",
	Long: `rdms records research experiment entries.

Each entry has an experiment name, a researcher, a date and a description.
Entries are loaded from entries.csv in the data directory at startup and can
be saved as timestamped CSV snapshots.

Run without arguments to start the interactive form.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The form has its own file logger; zap would write over the screen.
		if cmd == cmd.Root() {
			return nil
		}

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Directory holding entries.csv and saved snapshots (default: current)")
	rootCmd.PersistentFlags().BoolVar(&darkMode, "dark", false, "Start in dark mode")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
