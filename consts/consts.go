// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import "github.com/ava-labs/avalanchego/version"

const (
	Name   = "palletvm"
	Symbol = "UNIT"
)

// Concrete types the runtime instantiates every pallet with.
type (
	AccountID   = string
	Balance     = uint64
	BlockNumber = uint32
	Nonce       = uint32
	Content     = string
)

// Pallet names used to route calls and label logs.
const (
	SystemPallet           = "system"
	BalancesPallet         = "balances"
	ProofOfExistencePallet = "proof_of_existence"
)

var Version = &version.Semantic{
	Major: 0,
	Minor: 1,
	Patch: 0,
}
