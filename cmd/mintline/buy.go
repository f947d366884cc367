// Buy command settles a sale of an open market item.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mintline/mintline/pkg/types"
)

var (
	buyAs    string
	buyValue string
)

var buyCmd = &cobra.Command{
	Use:   "buy <item-id>",
	Short: "Buy an open market item",
	Long: `Buy settles the sale: the asking price moves from the buyer's
wallet to the seller, the token leaves escrow to the buyer, and the
item is marked sold. The supplied value must equal the asking price
exactly; it defaults to the asking price.

Example:
  mintline buy --as bob 1`,
	Args: cobra.ExactArgs(1),
	RunE: runBuy,
}

func init() {
	buyCmd.Flags().StringVar(&buyAs, "as", "", "buying address (required)")
	buyCmd.Flags().StringVar(&buyValue, "value", "", "value to supply (default: the asking price)")
	_ = buyCmd.MarkFlagRequired("as")
}

func runBuy(cmd *cobra.Command, args []string) error {
	itemID, err := parseID(args[0])
	if err != nil {
		return err
	}

	w, err := openWorld()
	if err != nil {
		return err
	}
	defer w.close()

	item, err := w.ledger.Item(itemID)
	if err != nil {
		return err
	}

	value := item.Price
	if buyValue != "" {
		if value, err = parseAmount(buyValue); err != nil {
			return err
		}
	}

	buyer := types.Address(buyAs)
	if err := w.ledger.Settle(buyer, itemID, value); err != nil {
		return err
	}

	if err := w.saveToken(item.TokenRef.TokenID); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := w.saveItem(itemID); err != nil {
		return fmt.Errorf("persist item: %w", err)
	}
	if err := w.saveBalances(buyer, item.Seller); err != nil {
		return fmt.Errorf("persist balances: %w", err)
	}

	if flagJSON {
		sold, err := w.ledger.Item(itemID)
		if err != nil {
			return err
		}
		return printJSON(sold)
	}
	fmt.Printf("Bought item %d (token %d) for %s\n", itemID, item.TokenRef.TokenID, value)
	return nil
}
