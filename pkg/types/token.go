package types

import "time"

// Token is a uniquely identified digital asset tracked by the registry.
// TokenID is assigned monotonically from 1 and never reused. URI is fixed
// at mint and immutable afterwards. Approved names at most one operator
// temporarily authorized to move the token on the owner's behalf; it is
// cleared by every transfer. HeldBy is the escrow hold: while non-None,
// only the holder may move the token.
type Token struct {
	TokenID  uint64    `json:"token_id"`
	Owner    Address   `json:"owner"`
	URI      string    `json:"uri"`
	Approved Address   `json:"approved"`
	HeldBy   Address   `json:"held_by"`
	MintedAt time.Time `json:"minted_at"`
}

// CanMove reports whether caller is entitled to move the token: the
// owner, or the approved operator.
func (t *Token) CanMove(caller Address) bool {
	return caller == t.Owner || (!t.Approved.IsNone() && caller == t.Approved)
}

// Held reports whether the token is under an escrow hold.
func (t *Token) Held() bool {
	return !t.HeldBy.IsNone()
}

// Clone returns a copy of the token. Views hand out clones so callers
// cannot mutate registry state through the returned pointer.
func (t *Token) Clone() *Token {
	c := *t
	return &c
}

// TokenRef identifies a token across collections: the collection name
// plus the token's registry identifier.
type TokenRef struct {
	Collection string `json:"collection"`
	TokenID    uint64 `json:"token_id"`
}
