// Item and items commands: query views over the market.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mintline/mintline/pkg/types"
)

var (
	itemsSeller string
	itemsOwner  string
	itemsAll    bool
)

var itemCmd = &cobra.Command{
	Use:   "item <item-id>",
	Short: "Show one market item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if flagJSON {
			return printJSON(item)
		}
		printItem(item)
		return nil
	},
}

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List market items",
	Long: `Items lists open market items in ascending id order. With --seller
it lists everything the address listed (sold and unsold); with --owner
it lists the sold items the address owns; with --all, every item.

Example:
  mintline items
  mintline items --seller alice
  mintline items --owner bob`,
	Args: cobra.NoArgs,
	RunE: runItems,
}

func init() {
	itemsCmd.Flags().StringVar(&itemsSeller, "seller", "", "filter to items listed by this address")
	itemsCmd.Flags().StringVar(&itemsOwner, "owner", "", "filter to sold items owned by this address")
	itemsCmd.Flags().BoolVar(&itemsAll, "all", false, "include sold items")
	itemsCmd.MarkFlagsMutuallyExclusive("seller", "owner", "all")
}

func runItems(cmd *cobra.Command, args []string) error {
	w, err := openWorld()
	if err != nil {
		return err
	}
	defer w.close()

	var items []*types.MarketItem
	switch {
	case itemsSeller != "":
		items = w.ledger.ItemsBySeller(types.Address(itemsSeller))
	case itemsOwner != "":
		items = w.ledger.ItemsOwnedBy(types.Address(itemsOwner))
	case itemsAll:
		items = w.ledger.Items()
	default:
		items = w.ledger.OpenItems()
	}

	if flagJSON {
		return printJSON(items)
	}
	if len(items) == 0 {
		fmt.Println("no items")
		return nil
	}
	for _, item := range items {
		printItem(item)
	}
	return nil
}
