// Withdraw command drains accrued listing fees to the admin.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mintline/mintline/pkg/types"
)

var withdrawAs string

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraw accrued listing fees (admin only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := openWorld()
		if err != nil {
			return err
		}
		defer w.close()

		caller := types.Address(withdrawAs)
		if withdrawAs == "" {
			caller = types.Address(loadedConfig.Admin)
		}

		amount, err := w.ledger.WithdrawFees(caller)
		if err != nil {
			return err
		}
		if err := w.savePolicy(); err != nil {
			return fmt.Errorf("persist fee policy: %w", err)
		}
		if err := w.saveBalances(caller, w.ledger.Custodian()); err != nil {
			return fmt.Errorf("persist balances: %w", err)
		}

		if amount.IsZero() {
			fmt.Println("nothing to withdraw")
			return nil
		}
		fmt.Printf("withdrew %s to %s\n", amount, caller)
		return nil
	},
}

func init() {
	withdrawCmd.Flags().StringVar(&withdrawAs, "as", "", "calling address (default: the configured admin)")
}
