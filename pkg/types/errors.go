package types

import "errors"

// Registry operation errors.
var (
	ErrInvalidInput  = errors.New("invalid mint input")
	ErrUnknownToken  = errors.New("unknown token")
	ErrNotOwner      = errors.New("caller is not the token owner")
	ErrNotAuthorized = errors.New("caller is not authorized to move the token")
	ErrTokenHeld     = errors.New("token is held in escrow")
)

// Ledger operation errors. Every failure is terminal and synchronous:
// the call leaves all state exactly as it was, and the caller decides
// whether to retry with corrected input.
var (
	ErrUnknownItem   = errors.New("unknown market item")
	ErrAlreadySold   = errors.New("market item is already sold")
	ErrInvalidPrice  = errors.New("price must be positive")
	ErrFeeMismatch   = errors.New("supplied fee does not match the listing fee")
	ErrPriceMismatch = errors.New("supplied value does not match the asking price")
	ErrNotTokenOwner = errors.New("caller does not own the listed token")
	ErrNotAdmin      = errors.New("caller is not the marketplace admin")
	ErrInvalidFee    = errors.New("listing fee must not be negative")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
