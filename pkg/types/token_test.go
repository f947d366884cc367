package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenCanMove(t *testing.T) {
	tests := []struct {
		name   string
		token  Token
		caller Address
		want   bool
	}{
		{
			name:   "owner can move",
			token:  Token{TokenID: 1, Owner: "alice"},
			caller: "alice",
			want:   true,
		},
		{
			name:   "approved operator can move",
			token:  Token{TokenID: 1, Owner: "alice", Approved: "market"},
			caller: "market",
			want:   true,
		},
		{
			name:   "stranger cannot move",
			token:  Token{TokenID: 1, Owner: "alice"},
			caller: "mallory",
			want:   false,
		},
		{
			name:   "none caller never matches a cleared approval",
			token:  Token{TokenID: 1, Owner: "alice"},
			caller: None,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.CanMove(tt.caller))
		})
	}
}

func TestTokenHeld(t *testing.T) {
	token := Token{TokenID: 1, Owner: "alice"}
	assert.False(t, token.Held())

	token.HeldBy = "market"
	assert.True(t, token.Held())
}
