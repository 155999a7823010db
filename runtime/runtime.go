// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package runtime composes the pallets into a single state transition
// function: it routes calls to the pallet they target and executes blocks of
// extrinsics against the pallets' state.
//
// A Runtime is not safe for concurrent use.
package runtime

import (
	"fmt"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/palletvm/balances"
	"github.com/ava-labs/palletvm/consts"
	"github.com/ava-labs/palletvm/proofofexistence"
	"github.com/ava-labs/palletvm/support"
	"github.com/ava-labs/palletvm/system"

	ptrace "github.com/ava-labs/palletvm/trace"
)

var _ support.Dispatcher[consts.AccountID, RuntimeCall] = (*Runtime)(nil)

type Runtime struct {
	log       logging.Logger
	tracer    trace.Tracer
	registry  *prometheus.Registry
	metrics   *metrics
	onFailure func(*ExtrinsicError)

	system           *system.Pallet[consts.AccountID, consts.BlockNumber, consts.Nonce]
	balances         *balances.Pallet[consts.AccountID, consts.Balance]
	proofOfExistence *proofofexistence.Pallet[consts.AccountID, consts.Content]
}

// New returns a runtime whose pallets are all empty and whose block number is
// 0.
func New(opts ...Option) (*Runtime, error) {
	r := &Runtime{
		log:    logging.NoLog{},
		tracer: ptrace.Noop(),

		system:           system.New[consts.AccountID, consts.BlockNumber, consts.Nonce](),
		balances:         balances.New[consts.AccountID, consts.Balance](),
		proofOfExistence: proofofexistence.New[consts.AccountID, consts.Content](),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = prometheus.NewRegistry()
	}
	m, err := newMetrics(r.registry)
	if err != nil {
		return nil, fmt.Errorf("unable to register runtime metrics: %w", err)
	}
	r.metrics = m
	return r, nil
}

func (r *Runtime) System() *system.Pallet[consts.AccountID, consts.BlockNumber, consts.Nonce] {
	return r.system
}

func (r *Runtime) Balances() *balances.Pallet[consts.AccountID, consts.Balance] {
	return r.balances
}

func (r *Runtime) ProofOfExistence() *proofofexistence.Pallet[consts.AccountID, consts.Content] {
	return r.proofOfExistence
}

func (r *Runtime) Registry() *prometheus.Registry {
	return r.registry
}

// Dispatch forwards [call] to the pallet it belongs to and returns the
// pallet's result unchanged. It never touches state itself.
func (r *Runtime) Dispatch(caller consts.AccountID, call RuntimeCall) error {
	switch c := call.(type) {
	case *BalancesCall:
		if c == nil {
			return ErrUnknownCall
		}
		return r.balances.Dispatch(caller, c.Call)
	case *ProofOfExistenceCall:
		if c == nil {
			return ErrUnknownCall
		}
		return r.proofOfExistence.Dispatch(caller, c.Call)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCall, call)
	}
}
