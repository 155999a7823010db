// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package scenario describes a genesis plus an ordered list of blocks in a
// YAML (or JSON) document and replays it against a runtime.
package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/trace"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/palletvm/balances"
	"github.com/ava-labs/palletvm/consts"
	"github.com/ava-labs/palletvm/genesis"
	"github.com/ava-labs/palletvm/proofofexistence"
	"github.com/ava-labs/palletvm/runtime"
)

var (
	ErrUnknownCall = errors.New("unknown call")
	ErrMissingArg  = errors.New("missing call argument")
)

type Extrinsic struct {
	Caller consts.AccountID `yaml:"caller"`
	Pallet string           `yaml:"pallet"`
	Call   string           `yaml:"call"`

	// balances.transfer
	To     consts.AccountID `yaml:"to,omitempty"`
	Amount consts.Balance   `yaml:"amount,omitempty"`

	// proof_of_existence.create_claim / revoke_claim
	Claim consts.Content `yaml:"claim,omitempty"`
}

type Block struct {
	Number     consts.BlockNumber `yaml:"number"`
	Extrinsics []*Extrinsic       `yaml:"extrinsics"`
}

type Scenario struct {
	Genesis *genesis.Genesis `yaml:"genesis"`
	Blocks  []*Block         `yaml:"blocks"`
}

// Parse decodes and validates a scenario. Fields that do not belong to the
// schema are rejected.
func Parse(b []byte) (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.UnmarshalStrict(b, s); err != nil {
		return nil, err
	}
	if s.Genesis == nil {
		s.Genesis = genesis.New(nil)
	}
	if _, err := s.Genesis.Verify(); err != nil {
		return nil, err
	}
	if _, err := s.RuntimeBlocks(); err != nil {
		return nil, err
	}
	return s, nil
}

// RuntimeCall resolves the pallet and call names of [e].
func (e *Extrinsic) RuntimeCall() (runtime.RuntimeCall, error) {
	switch e.Pallet {
	case consts.BalancesPallet:
		if e.Call == balances.TransferCall {
			if e.To == "" {
				return nil, fmt.Errorf("%w: %s.%s requires to", ErrMissingArg, e.Pallet, e.Call)
			}
			return runtime.Transfer(e.To, e.Amount), nil
		}
	case consts.ProofOfExistencePallet:
		switch e.Call {
		case proofofexistence.CreateClaimCall:
			return runtime.CreateClaim(e.Claim), nil
		case proofofexistence.RevokeClaimCall:
			return runtime.RevokeClaim(e.Claim), nil
		}
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrUnknownCall, e.Pallet, e.Call)
}

func (s *Scenario) RuntimeBlocks() ([]runtime.Block, error) {
	blks := make([]runtime.Block, 0, len(s.Blocks))
	for i, b := range s.Blocks {
		blk := runtime.Block{
			Header:     runtime.Header{BlockNumber: b.Number},
			Extrinsics: make([]runtime.Extrinsic, 0, len(b.Extrinsics)),
		}
		for j, e := range b.Extrinsics {
			call, err := e.RuntimeCall()
			if err != nil {
				return nil, fmt.Errorf("block %d, extrinsic %d: %w", i, j, err)
			}
			blk.Extrinsics = append(blk.Extrinsics, runtime.Extrinsic{
				Caller: e.Caller,
				Call:   call,
			})
		}
		blks = append(blks, blk)
	}
	return blks, nil
}

// Run seeds the genesis into [rt] and executes every block in order. It stops
// at the first block the runtime rejects.
func (s *Scenario) Run(ctx context.Context, tracer trace.Tracer, rt *runtime.Runtime) error {
	ctx, span := tracer.Start(ctx, "Scenario.Run")
	defer span.End()

	if s.Genesis != nil {
		if err := s.Genesis.Initialize(ctx, tracer, rt.Balances()); err != nil {
			return fmt.Errorf("unable to initialize genesis: %w", err)
		}
	}
	blks, err := s.RuntimeBlocks()
	if err != nil {
		return err
	}
	for _, blk := range blks {
		if err := rt.ExecuteBlock(ctx, blk); err != nil {
			return err
		}
	}
	return nil
}
