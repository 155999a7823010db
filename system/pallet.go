// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package system tracks the global block number and a nonce per account.
package system

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// Pallet is the account state pallet. The zero value is not usable; use [New].
type Pallet[AccountID cmp.Ordered, BlockNumber, Nonce constraints.Unsigned] struct {
	blockNumber BlockNumber
	// nonces only holds accounts that submitted at least one extrinsic
	nonces map[AccountID]Nonce
}

func New[AccountID cmp.Ordered, BlockNumber, Nonce constraints.Unsigned]() *Pallet[AccountID, BlockNumber, Nonce] {
	return &Pallet[AccountID, BlockNumber, Nonce]{
		nonces: make(map[AccountID]Nonce),
	}
}

func (p *Pallet[_, B, _]) BlockNumber() B {
	return p.blockNumber
}

// IncBlockNumber advances the block number by one.
//
// Panics if the block number would wrap.
func (p *Pallet[_, _, _]) IncBlockNumber() {
	next, err := smath.Add(p.blockNumber, 1)
	if err != nil {
		panic(fmt.Errorf("%w: current=%d", ErrBlockNumberOverflow, p.blockNumber))
	}
	p.blockNumber = next
}

// Nonce returns the nonce of [account], or 0 if it was never incremented.
func (p *Pallet[A, _, N]) Nonce(account A) N {
	return p.nonces[account]
}

// IncNonce increments the nonce of [account].
//
// Panics if the nonce would wrap.
func (p *Pallet[A, _, _]) IncNonce(account A) {
	current := p.nonces[account]
	next, err := smath.Add(current, 1)
	if err != nil {
		panic(fmt.Errorf("%w: account=%v, current=%d", ErrNonceOverflow, account, current))
	}
	p.nonces[account] = next
}

// Accounts returns every account with a stored nonce, in ascending order.
func (p *Pallet[A, _, _]) Accounts() []A {
	accounts := maps.Keys(p.nonces)
	slices.Sort(accounts)
	return accounts
}
