// List command creates a market item from an owned token.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mintline/mintline/pkg/types"
)

var listAs string

var listCmd = &cobra.Command{
	Use:   "list <token-id> <price>",
	Short: "List a token for sale",
	Long: `List creates a market item for an owned token at a fixed price.
The current listing fee is paid from the seller's wallet and the token
moves into marketplace escrow until it sells.

Example:
  mintline list --as alice 1 1.0`,
	Args: cobra.ExactArgs(2),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listAs, "as", "", "selling address, must own the token (required)")
	_ = listCmd.MarkFlagRequired("as")
}

func runList(cmd *cobra.Command, args []string) error {
	tokenID, err := parseID(args[0])
	if err != nil {
		return err
	}
	price, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	w, err := openWorld()
	if err != nil {
		return err
	}
	defer w.close()

	seller := types.Address(listAs)
	ref := types.TokenRef{Collection: w.registry.Collection(), TokenID: tokenID}
	fee := w.ledger.FeeAmount()

	itemID, err := w.ledger.CreateItem(seller, ref, price, fee)
	if err != nil {
		return err
	}

	if err := w.saveToken(tokenID); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := w.saveItem(itemID); err != nil {
		return fmt.Errorf("persist item: %w", err)
	}
	if err := w.savePolicy(); err != nil {
		return fmt.Errorf("persist fee policy: %w", err)
	}
	if err := w.saveBalances(seller, w.ledger.Custodian()); err != nil {
		return fmt.Errorf("persist balances: %w", err)
	}

	if flagJSON {
		item, err := w.ledger.Item(itemID)
		if err != nil {
			return err
		}
		return printJSON(item)
	}
	fmt.Printf("Listed token %d as item %d at price %s (fee %s)\n", tokenID, itemID, price, fee)
	return nil
}
