// Root command for the mintline CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mintline/mintline/pkg/mintline"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// loadedConfig holds the values read from config.yaml. Set by
// PersistentPreRunE so all subcommands can use them.
var loadedConfig cliConfig

var rootCmd = &cobra.Command{
	Use:     "mintline",
	Short:   "Mintline is a token registry and marketplace ledger",
	Version: mintline.Version,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir := resolveConfigDir()

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		loadedConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: .mintline)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: .mintline-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(mintCmd)
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(feeCmd)
	rootCmd.AddCommand(withdrawCmd)
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(eventsCmd)
}
