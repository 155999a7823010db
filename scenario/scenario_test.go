// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/palletvm/genesis"
	"github.com/ava-labs/palletvm/runtime"
	"github.com/ava-labs/palletvm/trace"
)

const demoYAML = `
genesis:
  allocations:
    - {account: alice, balance: 100}
blocks:
  - number: 1
    extrinsics:
      - {caller: alice, pallet: balances, call: transfer, to: bob, amount: 30}
      - {caller: alice, pallet: balances, call: transfer, to: charlie, amount: 50}
  - number: 2
    extrinsics:
      - {caller: alice, pallet: proof_of_existence, call: create_claim, claim: "Hello, world!"}
      - {caller: bob, pallet: proof_of_existence, call: revoke_claim, claim: "Hello, world!"}
  - number: 3
    extrinsics:
      - {caller: alice, pallet: proof_of_existence, call: revoke_claim, claim: "Hello, world!"}
      - {caller: bob, pallet: proof_of_existence, call: create_claim, claim: "Hello, world!"}
`

func TestParseDemo(t *testing.T) {
	r := require.New(t)

	s, err := Parse([]byte(demoYAML))
	r.NoError(err)
	r.Equal(Demo(), s)
}

func TestParseJSON(t *testing.T) {
	r := require.New(t)

	s, err := Parse([]byte(`{"blocks": [{"number": 1, "extrinsics": [{"caller": "alice", "pallet": "proof_of_existence", "call": "create_claim", "claim": "doc"}]}]}`))
	r.NoError(err)
	r.Equal(genesis.New(nil), s.Genesis)
	r.Len(s.Blocks, 1)

	blks, err := s.RuntimeBlocks()
	r.NoError(err)
	r.Len(blks, 1)
	r.Equal(runtime.CreateClaim("doc"), blks[0].Extrinsics[0].Call)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{
			name:        "unknown pallet",
			input:       `blocks: [{number: 1, extrinsics: [{caller: alice, pallet: staking, call: bond}]}]`,
			expectedErr: ErrUnknownCall,
		},
		{
			name:        "unknown call",
			input:       `blocks: [{number: 1, extrinsics: [{caller: alice, pallet: balances, call: mint}]}]`,
			expectedErr: ErrUnknownCall,
		},
		{
			name:        "transfer without recipient",
			input:       `blocks: [{number: 1, extrinsics: [{caller: alice, pallet: balances, call: transfer, amount: 1}]}]`,
			expectedErr: ErrMissingArg,
		},
		{
			name:        "duplicate genesis allocation",
			input:       `genesis: {allocations: [{account: alice, balance: 1}, {account: alice, balance: 1}]}`,
			expectedErr: genesis.ErrDuplicateAllocation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse([]byte(`blocks: [{number: 1, extrinsic: []}]`))
	require.Error(t, err)
}

func TestRunDemo(t *testing.T) {
	r := require.New(t)

	var failures []*runtime.ExtrinsicError
	rt, err := runtime.New(runtime.WithFailureHandler(func(extErr *runtime.ExtrinsicError) {
		failures = append(failures, extErr)
	}))
	r.NoError(err)
	r.NoError(Demo().Run(context.Background(), trace.Noop(), rt))

	r.Len(failures, 1)
	r.Equal(uint32(2), failures[0].BlockNumber)
	r.Equal(1, failures[0].Index)

	state, err := rt.Snapshot()
	r.NoError(err)
	r.Equal(&runtime.State{
		BlockNumber:   3,
		TotalIssuance: 100,
		Accounts: []*runtime.AccountState{
			{Account: "alice", Nonce: 4, Balance: 20},
			{Account: "bob", Nonce: 2, Balance: 30},
			{Account: "charlie", Nonce: 0, Balance: 50},
		},
		Claims: []*runtime.Claim{
			{Content: DemoClaim, Owner: "bob"},
		},
	}, state)
}

func TestRunStopsAtRejectedBlock(t *testing.T) {
	r := require.New(t)

	s := Demo()
	s.Blocks[1].Number = 5

	rt, err := runtime.New()
	r.NoError(err)
	r.ErrorIs(s.Run(context.Background(), trace.Noop(), rt), runtime.ErrInvalidBlockNumber)

	// block 3 never ran
	r.Equal(uint32(2), rt.System().BlockNumber())
	_, ok := rt.ProofOfExistence().GetClaim(DemoClaim)
	r.False(ok)
}
