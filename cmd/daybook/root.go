// Root command for the daybook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/daybook/internal/file"
	"github.com/mesh-intelligence/daybook/internal/paths"
	"github.com/mesh-intelligence/daybook/internal/sqlite"
	"github.com/mesh-intelligence/daybook/pkg/daybook"
	"github.com/mesh-intelligence/daybook/pkg/store"
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// configDataDir and configBackend hold values loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use them.
var (
	configDataDir string
	configBackend string
)

// st is the global store instance, opened on startup.
var st *store.Store

var rootCmd = &cobra.Command{
	Use:     "daybook",
	Short:   "Daybook is a local-first journal and goal tracker",
	Version: daybook.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return openStore()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.daybook-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log store internals to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(habitCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(checkinCmd)
}

// openStore loads config, opens the configured snapshot backend, and opens
// the state store over it.
func openStore() error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	configDataDir = cfg.GetString(cfgKeyDataDir)
	configBackend = cfg.GetString(cfgKeyBackend)

	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return err
	}

	storeCfg := types.Config{Backend: configBackend, DataDir: dataDir}
	if err := storeCfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := zap.NewNop()
	if flagVerbose {
		if log, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}

	var backend types.Backend
	switch storeCfg.Backend {
	case types.BackendSQLite:
		backend, err = sqlite.Open(dataDir, sqlite.WithLogger(log))
	case types.BackendFile:
		backend, err = file.Open(dataDir)
	}
	if err != nil {
		return fmt.Errorf("open backend: %w", err)
	}

	st = store.New(backend, store.WithLogger(log))
	st.Open()
	return nil
}

// closeStore waits for in-flight writes and releases the backend.
func closeStore() error {
	if st != nil {
		return st.Close()
	}
	return nil
}
