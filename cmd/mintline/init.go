// Init command for the mintline CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize mintline configuration and storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// PersistentPreRunE already created the config directory and a
		// default config.yaml; attaching creates the data directory.
		w, err := openWorld()
		if err != nil {
			return err
		}
		defer w.close()

		if err := w.savePolicy(); err != nil {
			return fmt.Errorf("persist fee policy: %w", err)
		}

		fmt.Println("Mintline initialized successfully")
		fmt.Println("  config:", resolveConfigDir())
		fmt.Println("  data:  ", resolveDataDir())
		fmt.Println("  admin: ", loadedConfig.Admin)
		fmt.Println("  fee:   ", w.ledger.FeeAmount())
		return nil
	},
}
