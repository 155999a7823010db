// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ExecuteBlock applies [blk] to the runtime state.
//
// The block number is incremented before it is compared to the header and is
// not rolled back if the comparison fails: a rejected block still consumes a
// block number. The only error returned is [ErrInvalidBlockNumber]; failing
// extrinsics are logged, passed to the failure handler and skipped.
func (r *Runtime) ExecuteBlock(ctx context.Context, blk Block) error {
	_, span := r.tracer.Start(ctx, "Runtime.ExecuteBlock")
	defer span.End()

	r.system.IncBlockNumber()
	current := r.system.BlockNumber()
	span.SetAttributes(
		attribute.Int64("blockNumber", int64(current)),
		attribute.Int("extrinsics", len(blk.Extrinsics)),
	)
	if current != blk.Header.BlockNumber {
		r.metrics.blocksRejected.Inc()
		r.log.Error("rejecting block",
			zap.Uint32("expected", current),
			zap.Uint32("got", blk.Header.BlockNumber),
		)
		return fmt.Errorf("%w: expected=%d, got=%d", ErrInvalidBlockNumber, current, blk.Header.BlockNumber)
	}

	failed := 0
	for i, ext := range blk.Extrinsics {
		// The nonce is consumed even if the call fails.
		r.system.IncNonce(ext.Caller)
		if err := r.Dispatch(ext.Caller, ext.Call); err != nil {
			failed++
			r.reportFailure(&ExtrinsicError{
				BlockNumber: current,
				Index:       i,
				Caller:      ext.Caller,
				Pallet:      palletName(ext.Call),
				Call:        callName(ext.Call),
				Err:         err,
			})
			continue
		}
		r.metrics.extrinsicsSucceeded.Inc()
	}

	r.metrics.blocksExecuted.Inc()
	r.log.Info("executed block",
		zap.Uint32("blockNumber", current),
		zap.Int("extrinsics", len(blk.Extrinsics)),
		zap.Int("failed", failed),
	)
	return nil
}

func (r *Runtime) reportFailure(extErr *ExtrinsicError) {
	r.metrics.extrinsicsFailed.Inc()
	r.log.Warn("extrinsic failed",
		zap.Uint32("blockNumber", extErr.BlockNumber),
		zap.Int("index", extErr.Index),
		zap.String("caller", extErr.Caller),
		zap.String("pallet", extErr.Pallet),
		zap.String("call", extErr.Call),
		zap.Error(extErr.Err),
	)
	if r.onFailure != nil {
		r.onFailure(extErr)
	}
}

func palletName(call RuntimeCall) string {
	if call == nil {
		return ""
	}
	return call.Pallet()
}

func callName(call RuntimeCall) string {
	if call == nil {
		return ""
	}
	return call.Name()
}
