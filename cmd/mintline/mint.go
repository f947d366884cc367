// Mint command creates a new token.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mintline/mintline/pkg/types"
)

var mintAs string

var mintCmd = &cobra.Command{
	Use:   "mint <uri>",
	Short: "Mint a new token",
	Long: `Mint allocates the next token identifier and assigns it to the
minting address. The metadata URI is fixed permanently.

Example:
  mintline mint --as alice https://example.com/token/1`,
	Args: cobra.ExactArgs(1),
	RunE: runMint,
}

func init() {
	mintCmd.Flags().StringVar(&mintAs, "as", "", "minting address (required)")
	_ = mintCmd.MarkFlagRequired("as")
}

func runMint(cmd *cobra.Command, args []string) error {
	w, err := openWorld()
	if err != nil {
		return err
	}
	defer w.close()

	tokenID, err := w.registry.Mint(types.Address(mintAs), args[0])
	if err != nil {
		return err
	}
	if err := w.saveToken(tokenID); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{"token_id": tokenID, "owner": mintAs})
	}
	fmt.Printf("Minted token %d for %s\n", tokenID, mintAs)
	return nil
}
