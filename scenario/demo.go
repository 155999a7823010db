// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scenario

import (
	"github.com/ava-labs/palletvm/balances"
	"github.com/ava-labs/palletvm/consts"
	"github.com/ava-labs/palletvm/genesis"
	"github.com/ava-labs/palletvm/proofofexistence"
)

const DemoClaim = "Hello, world!"

// Demo funds alice, has her pay bob and charlie, then passes a claim from
// alice to bob. Bob's first revoke fails because he does not own the claim.
func Demo() *Scenario {
	return &Scenario{
		Genesis: genesis.Default(),
		Blocks: []*Block{
			{
				Number: 1,
				Extrinsics: []*Extrinsic{
					transfer("alice", "bob", 30),
					transfer("alice", "charlie", 50),
				},
			},
			{
				Number: 2,
				Extrinsics: []*Extrinsic{
					claim("alice", proofofexistence.CreateClaimCall),
					claim("bob", proofofexistence.RevokeClaimCall),
				},
			},
			{
				Number: 3,
				Extrinsics: []*Extrinsic{
					claim("alice", proofofexistence.RevokeClaimCall),
					claim("bob", proofofexistence.CreateClaimCall),
				},
			},
		},
	}
}

func transfer(from, to consts.AccountID, amount consts.Balance) *Extrinsic {
	return &Extrinsic{
		Caller: from,
		Pallet: consts.BalancesPallet,
		Call:   balances.TransferCall,
		To:     to,
		Amount: amount,
	}
}

func claim(caller consts.AccountID, call string) *Extrinsic {
	return &Extrinsic{
		Caller: caller,
		Pallet: consts.ProofOfExistencePallet,
		Call:   call,
		Claim:  DemoClaim,
	}
}
