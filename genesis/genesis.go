// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/trace"

	"github.com/ava-labs/palletvm/consts"

	safemath "github.com/ava-labs/avalanchego/utils/math"
)

var (
	ErrDuplicateAllocation = errors.New("duplicate allocation")
	ErrEmptyAccount        = errors.New("allocation account is empty")
)

// BalanceSetter is the privileged balance write genesis needs.
type BalanceSetter interface {
	SetBalance(account consts.AccountID, value consts.Balance)
}

type Allocation struct {
	Account consts.AccountID `json:"account" yaml:"account"`
	Balance consts.Balance   `json:"balance" yaml:"balance"`
}

type Genesis struct {
	Allocations []*Allocation `json:"allocations" yaml:"allocations"`
}

func New(allocations []*Allocation) *Genesis {
	return &Genesis{Allocations: allocations}
}

// Default funds alice with 100 units.
func Default() *Genesis {
	return New([]*Allocation{
		{Account: "alice", Balance: 100},
	})
}

func Load(genesisBytes []byte) (*Genesis, error) {
	g := &Genesis{}
	if err := json.Unmarshal(genesisBytes, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Verify checks the allocations without touching any state and returns the
// total supply they create.
func (g *Genesis) Verify() (consts.Balance, error) {
	seen := make(map[consts.AccountID]struct{}, len(g.Allocations))
	supply := consts.Balance(0)
	for i, alloc := range g.Allocations {
		if alloc.Account == "" {
			return 0, fmt.Errorf("%w: index=%d", ErrEmptyAccount, i)
		}
		if _, ok := seen[alloc.Account]; ok {
			return 0, fmt.Errorf("%w: account=%s", ErrDuplicateAllocation, alloc.Account)
		}
		seen[alloc.Account] = struct{}{}

		var err error
		supply, err = safemath.Add(supply, alloc.Balance)
		if err != nil {
			return 0, fmt.Errorf("%w: account=%s, bal=%d", err, alloc.Account, alloc.Balance)
		}
	}
	return supply, nil
}

// Initialize seeds every allocation into [balances]. Nothing is written
// unless all allocations are valid.
func (g *Genesis) Initialize(ctx context.Context, tracer trace.Tracer, balances BalanceSetter) error {
	_, span := tracer.Start(ctx, "Genesis.Initialize")
	defer span.End()

	if _, err := g.Verify(); err != nil {
		return err
	}
	for _, alloc := range g.Allocations {
		balances.SetBalance(alloc.Account, alloc.Balance)
	}
	return nil
}
