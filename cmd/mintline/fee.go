// Fee commands: read and update the listing fee.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mintline/mintline/pkg/types"
)

var feeSetAs string

var feeCmd = &cobra.Command{
	Use:   "fee",
	Short: "Manage the listing fee",
}

var feeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current listing fee and accrued total",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := openWorld()
		if err != nil {
			return err
		}
		defer w.close()

		if flagJSON {
			return printJSON(map[string]string{
				"amount":  w.ledger.FeeAmount().String(),
				"accrued": w.ledger.AccruedFees().String(),
			})
		}
		fmt.Printf("listing fee: %s (accrued: %s)\n", w.ledger.FeeAmount(), w.ledger.AccruedFees())
		return nil
	},
}

var feeSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Update the listing fee (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}

		w, err := openWorld()
		if err != nil {
			return err
		}
		defer w.close()

		caller := types.Address(feeSetAs)
		if feeSetAs == "" {
			caller = types.Address(loadedConfig.Admin)
		}

		if err := w.ledger.SetFee(caller, amount); err != nil {
			return err
		}
		if err := w.savePolicy(); err != nil {
			return fmt.Errorf("persist fee policy: %w", err)
		}

		fmt.Printf("listing fee set to %s\n", amount)
		return nil
	},
}

func init() {
	feeSetCmd.Flags().StringVar(&feeSetAs, "as", "", "calling address (default: the configured admin)")
	feeCmd.AddCommand(feeGetCmd)
	feeCmd.AddCommand(feeSetCmd)
}
