// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proofofexistence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const content = "Hello, world!"

func requireOwner(r *require.Assertions, p *Pallet[string, string], expected string) {
	owner, ok := p.GetClaim(content)
	r.True(ok)
	r.Equal(expected, owner)
}

func TestClaimLifecycle(t *testing.T) {
	r := require.New(t)

	p := New[string, string]()
	_, ok := p.GetClaim(content)
	r.False(ok)

	r.NoError(p.CreateClaim("alice", content))
	requireOwner(r, p, "alice")

	r.ErrorIs(p.CreateClaim("bob", content), ErrAlreadyClaimed)
	requireOwner(r, p, "alice")

	// the owner cannot claim twice either
	r.ErrorIs(p.CreateClaim("alice", content), ErrAlreadyClaimed)
	requireOwner(r, p, "alice")

	r.NoError(p.RevokeClaim("alice", content))
	_, ok = p.GetClaim(content)
	r.False(ok)
	r.Empty(p.Claims())

	r.NoError(p.CreateClaim("bob", content))
	requireOwner(r, p, "bob")
}

func TestRevokeClaim(t *testing.T) {
	tests := []struct {
		name        string
		owner       string
		caller      string
		expectedErr error
	}{
		{
			name:   "owner",
			owner:  "alice",
			caller: "alice",
		},
		{
			name:        "not owner",
			owner:       "alice",
			caller:      "bob",
			expectedErr: ErrNotClaimOwner,
		},
		{
			name:        "not found",
			caller:      "bob",
			expectedErr: ErrClaimNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)

			p := New[string, string]()
			if tt.owner != "" {
				r.NoError(p.CreateClaim(tt.owner, content))
			}

			err := p.RevokeClaim(tt.caller, content)
			r.ErrorIs(err, tt.expectedErr)

			owner, ok := p.GetClaim(content)
			switch {
			case tt.expectedErr == nil:
				r.False(ok)
			case tt.owner != "":
				r.True(ok)
				r.Equal(tt.owner, owner)
			default:
				r.False(ok)
			}
		})
	}
}

func TestClaimsAreIndependent(t *testing.T) {
	r := require.New(t)

	p := New[string, string]()
	r.NoError(p.CreateClaim("alice", "b"))
	r.NoError(p.CreateClaim("alice", "a"))
	r.NoError(p.CreateClaim("bob", "c"))
	r.Equal([]string{"a", "b", "c"}, p.Claims())

	r.ErrorIs(p.RevokeClaim("alice", "c"), ErrNotClaimOwner)
	r.NoError(p.RevokeClaim("alice", "a"))
	r.Equal([]string{"b", "c"}, p.Claims())
}

func TestDispatch(t *testing.T) {
	r := require.New(t)

	p := New[string, string]()
	r.NoError(p.Dispatch("alice", &CreateClaim[string]{Claim: content}))
	requireOwner(r, p, "alice")

	r.ErrorIs(p.Dispatch("bob", &RevokeClaim[string]{Claim: content}), ErrNotClaimOwner)
	r.NoError(p.Dispatch("alice", &RevokeClaim[string]{Claim: content}))
	r.ErrorIs(p.Dispatch("alice", nil), ErrUnknownCall)
}
