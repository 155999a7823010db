// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package balances implements a ledger of per-account balances with checked
// transfers between accounts.
package balances

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

type Pallet[AccountID cmp.Ordered, Balance constraints.Unsigned] struct {
	balances map[AccountID]Balance
}

func New[AccountID cmp.Ordered, Balance constraints.Unsigned]() *Pallet[AccountID, Balance] {
	return &Pallet[AccountID, Balance]{
		balances: make(map[AccountID]Balance),
	}
}

// Balance returns the balance of [account], or 0 if none was ever stored.
func (p *Pallet[A, B]) Balance(account A) B {
	return p.balances[account]
}

// SetBalance overwrites the balance of [account].
//
// This bypasses every check and is only meant for seeding genesis state.
func (p *Pallet[A, B]) SetBalance(account A, value B) {
	p.balances[account] = value
}

// Transfer moves [amount] from [caller] to [to].
//
// Both resulting balances are computed before either is written, so a failed
// transfer never leaves a partial update behind.
func (p *Pallet[A, B]) Transfer(caller A, to A, amount B) error {
	callerBalance := p.balances[caller]
	newCallerBalance, err := smath.Sub(callerBalance, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not subtract balance (bal=%d, account=%v, amount=%d)",
			ErrInsufficientBalance,
			callerBalance,
			caller,
			amount,
		)
	}

	// A self transfer debits and credits the same entry; crediting the
	// debited value keeps the balance as it was.
	toBalance := p.balances[to]
	if to == caller {
		toBalance = newCallerBalance
	}
	newToBalance, err := smath.Add(toBalance, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not add balance (bal=%d, account=%v, amount=%d)",
			ErrOverflow,
			toBalance,
			to,
			amount,
		)
	}

	p.balances[caller] = newCallerBalance
	p.balances[to] = newToBalance
	return nil
}

// TotalIssuance sums every stored balance.
func (p *Pallet[A, B]) TotalIssuance() (B, error) {
	var total B
	for account, balance := range p.balances {
		next, err := smath.Add(total, balance)
		if err != nil {
			return 0, fmt.Errorf("%w: total issuance exceeded at account=%v", ErrOverflow, account)
		}
		total = next
	}
	return total, nil
}

// Accounts returns every account with a stored balance, in ascending order.
func (p *Pallet[A, _]) Accounts() []A {
	accounts := maps.Keys(p.balances)
	slices.Sort(accounts)
	return accounts
}
