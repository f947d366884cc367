// Package main provides the mintline CLI: a token registry and
// marketplace ledger operated from the command line, persisted to a
// local SQLite database.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mintline/mintline/internal/funds"
	"github.com/mintline/mintline/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code: domain failures are user
// errors, everything else is a system error.
func exitCode(err error) int {
	for _, userErr := range []error{
		types.ErrInvalidInput,
		types.ErrUnknownToken,
		types.ErrUnknownItem,
		types.ErrNotOwner,
		types.ErrNotAuthorized,
		types.ErrNotTokenOwner,
		types.ErrNotAdmin,
		types.ErrTokenHeld,
		types.ErrInvalidPrice,
		types.ErrInvalidFee,
		types.ErrFeeMismatch,
		types.ErrPriceMismatch,
		types.ErrAlreadySold,
		funds.ErrInsufficientFunds,
		funds.ErrInvalidAmount,
	} {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}
