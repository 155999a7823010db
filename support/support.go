// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package support holds the block primitives shared by every runtime.
package support

// Header only carries the block number. Real chains would also commit to the
// parent hash, state root and extrinsics root.
type Header[BlockNumber any] struct {
	BlockNumber BlockNumber `json:"blockNumber" yaml:"number"`
}

// Extrinsic is an externally submitted call together with its (already
// authenticated) caller.
type Extrinsic[Caller, Call any] struct {
	Caller Caller `json:"caller"`
	Call   Call   `json:"call"`
}

type Block[Header, Extrinsic any] struct {
	Header Header `json:"header"`
	// Extrinsics are executed in order.
	Extrinsics []Extrinsic `json:"extrinsics"`
}

// Dispatcher routes a call made by [caller] to the state transition it
// targets.
type Dispatcher[Caller, Call any] interface {
	Dispatch(caller Caller, call Call) error
}
