// Deposit and balance commands for the local wallet.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mintline/mintline/pkg/types"
)

var depositAs string

var depositCmd = &cobra.Command{
	Use:   "deposit <amount>",
	Short: "Credit the local wallet of an address",
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

		addr := types.Address(depositAs)
		if err := w.book.Deposit(addr, amount); err != nil {
			return err
		}
		if err := w.saveBalances(addr); err != nil {
			return fmt.Errorf("persist balance: %w", err)
		}

		fmt.Printf("%s balance: %s\n", addr, w.book.Balance(addr))
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Show the wallet balance of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := openWorld()
		if err != nil {
			return err
		}
		defer w.close()

		balance := w.book.Balance(types.Address(args[0]))
		if flagJSON {
			return printJSON(map[string]string{"address": args[0], "balance": balance.String()})
		}
		fmt.Printf("%s balance: %s\n", args[0], balance)
		return nil
	},
}

func init() {
	depositCmd.Flags().StringVar(&depositAs, "as", "", "address to credit (required)")
	_ = depositCmd.MarkFlagRequired("as")
}
