// Approve command authorizes an operator for a token.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mintline/mintline/pkg/types"
)

var approveAs string

var approveCmd = &cobra.Command{
	Use:   "approve <token-id> <operator>",
	Short: "Approve an operator to move a token",
	Long: `Approve authorizes one operator to move the token on the owner's
behalf. The approval clears automatically on any transfer.

Example:
  mintline approve --as alice 1 market`,
	Args: cobra.ExactArgs(2),
	RunE: runApprove,
}

func init() {
	approveCmd.Flags().StringVar(&approveAs, "as", "", "calling address, must be the owner (required)")
	_ = approveCmd.MarkFlagRequired("as")
}

func runApprove(cmd *cobra.Command, args []string) error {
	tokenID, err := parseID(args[0])
	if err != nil {
		return err
	}

	w, err := openWorld()
	if err != nil {
		return err
	}
	defer w.close()

	if err := w.registry.Approve(types.Address(approveAs), tokenID, types.Address(args[1])); err != nil {
		return err
	}
	if err := w.saveToken(tokenID); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	fmt.Printf("Approved %s for token %d\n", args[1], tokenID)
	return nil
}
