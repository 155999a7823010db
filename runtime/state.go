// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"slices"

	"github.com/ava-labs/palletvm/consts"
)

// State is a point-in-time copy of every pallet's storage, ordered so that
// two runtimes in the same state always produce the same value.
type State struct {
	BlockNumber   consts.BlockNumber `json:"blockNumber"`
	TotalIssuance consts.Balance     `json:"totalIssuance"`
	Accounts      []*AccountState    `json:"accounts"`
	Claims        []*Claim           `json:"claims"`
}

type AccountState struct {
	Account consts.AccountID `json:"account"`
	Nonce   consts.Nonce     `json:"nonce"`
	Balance consts.Balance   `json:"balance"`
}

type Claim struct {
	Content consts.Content   `json:"content"`
	Owner   consts.AccountID `json:"owner"`
}

// Snapshot copies the current state of the runtime.
func (r *Runtime) Snapshot() (*State, error) {
	issuance, err := r.balances.TotalIssuance()
	if err != nil {
		return nil, err
	}

	accounts := append(r.system.Accounts(), r.balances.Accounts()...)
	slices.Sort(accounts)
	accounts = slices.Compact(accounts)

	s := &State{
		BlockNumber:   r.system.BlockNumber(),
		TotalIssuance: issuance,
		Accounts:      make([]*AccountState, 0, len(accounts)),
	}
	for _, account := range accounts {
		s.Accounts = append(s.Accounts, &AccountState{
			Account: account,
			Nonce:   r.system.Nonce(account),
			Balance: r.balances.Balance(account),
		})
	}
	claims := r.proofOfExistence.Claims()
	s.Claims = make([]*Claim, 0, len(claims))
	for _, content := range claims {
		owner, _ := r.proofOfExistence.GetClaim(content)
		s.Claims = append(s.Claims, &Claim{Content: content, Owner: owner})
	}
	return s, nil
}
