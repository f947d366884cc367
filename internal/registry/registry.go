// Package registry implements the token registry: minting, ownership
// and approval tracking, and the escrow holds used by the marketplace
// ledger. Token identifiers are assigned monotonically from 1 and never
// reused; tokens are never destroyed.
package registry

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mintline/mintline/pkg/types"
)

// Registry tracks tokens for a single collection. Tokens live in an
// append-only slice indexed by TokenID-1, so lookup is O(1) and
// iteration order is deterministic.
type Registry struct {
	mu         sync.RWMutex
	collection string
	tokens     []*types.Token
	log        *zap.Logger
}

// New creates an empty registry for the named collection.
func New(collection string, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{collection: collection, log: log}
}

// Collection returns the registry's collection name.
func (r *Registry) Collection() string {
	return r.collection
}

// Mint allocates the next token identifier for minter with the given
// metadata URI. The URI is fixed permanently. Returns ErrInvalidInput
// when the URI is blank or the minter is None.
func (r *Registry) Mint(minter types.Address, uri string) (uint64, error) {
	if minter.IsNone() {
		return 0, fmt.Errorf("minter: %w", types.ErrInvalidInput)
	}
	if strings.TrimSpace(uri) == "" {
		return 0, fmt.Errorf("uri: %w", types.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	token := &types.Token{
		TokenID:  uint64(len(r.tokens)) + 1,
		Owner:    minter,
		URI:      uri,
		MintedAt: time.Now().UTC(),
	}
	r.tokens = append(r.tokens, token)

	r.log.Info("token minted",
		zap.Uint64("tokenId", token.TokenID),
		zap.String("owner", string(minter)),
		zap.String("uri", uri),
	)
	return token.TokenID, nil
}

// Approve authorizes operator to move the token on the owner's behalf.
// Only the current owner may approve. Approving while the token is held
// in escrow returns ErrTokenHeld.
func (r *Registry) Approve(caller types.Address, tokenID uint64, operator types.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, err := r.get(tokenID)
	if err != nil {
		return err
	}
	if caller != token.Owner {
		return fmt.Errorf("approve token %d: %w", tokenID, types.ErrNotOwner)
	}
	if token.Held() {
		return fmt.Errorf("approve token %d: %w", tokenID, types.ErrTokenHeld)
	}

	token.Approved = operator
	return nil
}

// Transfer moves the token to a new owner and clears any approval.
// The caller must be the owner or the approved operator. Tokens under
// an escrow hold cannot be transferred; the holder releases them
// through Release instead.
func (r *Registry) Transfer(caller types.Address, tokenID uint64, to types.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, err := r.get(tokenID)
	if err != nil {
		return err
	}
	if token.Held() {
		return fmt.Errorf("transfer token %d: %w", tokenID, types.ErrTokenHeld)
	}
	if !token.CanMove(caller) {
		return fmt.Errorf("transfer token %d: %w", tokenID, types.ErrNotAuthorized)
	}

	token.Owner = to
	token.Approved = types.None

	r.log.Info("token transferred",
		zap.Uint64("tokenId", tokenID),
		zap.String("from", string(caller)),
		zap.String("to", string(to)),
	)
	return nil
}

// Hold places the token under an escrow hold for holder. The caller
// must be able to move the token (owner or approved operator); the
// token must not already be held. While held, only Release moves the
// token. Ownership does not change: the owner of record stays the
// seller until the hold is released.
func (r *Registry) Hold(caller types.Address, tokenID uint64, holder types.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, err := r.get(tokenID)
	if err != nil {
		return err
	}
	if token.Held() {
		return fmt.Errorf("hold token %d: %w", tokenID, types.ErrTokenHeld)
	}
	if !token.CanMove(caller) {
		return fmt.Errorf("hold token %d: %w", tokenID, types.ErrNotAuthorized)
	}

	token.HeldBy = holder
	return nil
}

// Release ends an escrow hold, transferring the token to its new owner
// in a single mutation: owner set, approval cleared, hold cleared. Only
// the current holder may release.
func (r *Registry) Release(holder types.Address, tokenID uint64, to types.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, err := r.get(tokenID)
	if err != nil {
		return err
	}
	if token.HeldBy != holder {
		return fmt.Errorf("release token %d: %w", tokenID, types.ErrNotAuthorized)
	}

	token.Owner = to
	token.Approved = types.None
	token.HeldBy = types.None

	r.log.Info("escrow released",
		zap.Uint64("tokenId", tokenID),
		zap.String("to", string(to)),
	)
	return nil
}

// Unhold clears an escrow hold without moving the token. Ownership and
// approval are untouched; the ledger uses this to roll back a listing
// whose fee collection failed. Only the current holder may unhold.
func (r *Registry) Unhold(holder types.Address, tokenID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, err := r.get(tokenID)
	if err != nil {
		return err
	}
	if token.HeldBy != holder {
		return fmt.Errorf("unhold token %d: %w", tokenID, types.ErrNotAuthorized)
	}

	token.HeldBy = types.None
	return nil
}

// OwnerOf returns the token's owner of record.
func (r *Registry) OwnerOf(tokenID uint64) (types.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, err := r.get(tokenID)
	if err != nil {
		return types.None, err
	}
	return token.Owner, nil
}

// TokenURI returns the token's metadata URI.
func (r *Registry) TokenURI(tokenID uint64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, err := r.get(tokenID)
	if err != nil {
		return "", err
	}
	return token.URI, nil
}

// Token returns a copy of the token.
func (r *Registry) Token(tokenID uint64) (*types.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, err := r.get(tokenID)
	if err != nil {
		return nil, err
	}
	return token.Clone(), nil
}

// Tokens returns copies of every token in ascending TokenID order.
func (r *Registry) Tokens() []*types.Token {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*types.Token, len(r.tokens))
	for i, token := range r.tokens {
		out[i] = token.Clone()
	}
	return out
}

// Count returns the number of minted tokens.
func (r *Registry) Count() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint64(len(r.tokens))
}

// Restore replaces the registry contents with previously persisted
// tokens. The slice must be dense and ordered: token N at index N-1.
func (r *Registry) Restore(tokens []*types.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	restored := make([]*types.Token, len(tokens))
	for i, token := range tokens {
		if token.TokenID != uint64(i)+1 {
			return fmt.Errorf("restore: token at index %d has id %d: %w",
				i, token.TokenID, types.ErrUnknownToken)
		}
		restored[i] = token.Clone()
	}
	r.tokens = restored
	return nil
}

// get returns the live token struct. Callers must hold r.mu.
func (r *Registry) get(tokenID uint64) (*types.Token, error) {
	if tokenID == 0 || tokenID > uint64(len(r.tokens)) {
		return nil, fmt.Errorf("token %d: %w", tokenID, types.ErrUnknownToken)
	}
	return r.tokens[tokenID-1], nil
}
