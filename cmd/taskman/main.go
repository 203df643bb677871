// Package main implements the taskman CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nhaseem/taskman/internal/config"
	"github.com/nhaseem/taskman/internal/kv"
	"github.com/nhaseem/taskman/internal/paths"
	"github.com/nhaseem/taskman/roster"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taskman",
	Short: "Taskman - staff and task tracking",
}

var assumeYes bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Skip confirmation prompts")
}

// openStore loads configuration and opens the roster store backed by
// the resolved data directory.
func openStore() (*roster.Store, error) {
	store, _, err := openStoreWithConfig()
	return store, err
}

// openStoreWithConfig is openStore for commands that also need the
// config, so one read serves both.
func openStoreWithConfig() (*roster.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	dir, err := dataDir(cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := roster.Options{}
	if assumeYes {
		opts.Prompter = roster.AutoConfirm{}
	}
	store, err := roster.Open(kv.NewFile(dir), opts)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// dataDir resolves the data directory. The environment override wins
// over the config file, which wins over the default location.
func dataDir(cfg *config.Config) (string, error) {
	if os.Getenv(paths.DataDirEnv) == "" && cfg.Data.Dir != "" {
		return cfg.Data.Dir, nil
	}
	return paths.DataDir()
}
