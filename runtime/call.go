// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"github.com/ava-labs/palletvm/balances"
	"github.com/ava-labs/palletvm/consts"
	"github.com/ava-labs/palletvm/proofofexistence"
	"github.com/ava-labs/palletvm/support"
)

type (
	Header    = support.Header[consts.BlockNumber]
	Extrinsic = support.Extrinsic[consts.AccountID, RuntimeCall]
	Block     = support.Block[Header, Extrinsic]
)

// RuntimeCall is the closed set of calls the runtime can dispatch. Each
// variant wraps the call type of exactly one pallet.
type RuntimeCall interface {
	// Pallet is the name of the pallet the call is routed to.
	Pallet() string
	// Name is the call's name within its pallet.
	Name() string

	isRuntimeCall()
}

var (
	_ RuntimeCall = (*BalancesCall)(nil)
	_ RuntimeCall = (*ProofOfExistenceCall)(nil)
)

type BalancesCall struct {
	Call balances.Call[consts.AccountID, consts.Balance]
}

func (*BalancesCall) Pallet() string {
	return consts.BalancesPallet
}

func (c *BalancesCall) Name() string {
	if c == nil || c.Call == nil {
		return ""
	}
	return c.Call.Name()
}

func (*BalancesCall) isRuntimeCall() {}

type ProofOfExistenceCall struct {
	Call proofofexistence.Call[consts.Content]
}

func (*ProofOfExistenceCall) Pallet() string {
	return consts.ProofOfExistencePallet
}

func (c *ProofOfExistenceCall) Name() string {
	if c == nil || c.Call == nil {
		return ""
	}
	return c.Call.Name()
}

func (*ProofOfExistenceCall) isRuntimeCall() {}

func Transfer(to consts.AccountID, amount consts.Balance) RuntimeCall {
	return &BalancesCall{
		Call: &balances.Transfer[consts.AccountID, consts.Balance]{To: to, Amount: amount},
	}
}

func CreateClaim(claim consts.Content) RuntimeCall {
	return &ProofOfExistenceCall{
		Call: &proofofexistence.CreateClaim[consts.Content]{Claim: claim},
	}
}

func RevokeClaim(claim consts.Content) RuntimeCall {
	return &ProofOfExistenceCall{
		Call: &proofofexistence.RevokeClaim[consts.Content]{Claim: claim},
	}
}
