// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"fmt"

	"github.com/ava-labs/palletvm/consts"
)

// ExtrinsicError records an extrinsic that failed to dispatch. The failure is
// not fatal to the block that contained it.
type ExtrinsicError struct {
	BlockNumber consts.BlockNumber
	Index       int
	Caller      consts.AccountID
	Pallet      string
	Call        string
	Err         error
}

func (e *ExtrinsicError) Error() string {
	return fmt.Sprintf(
		"extrinsic error: block=%d, index=%d, call=%s.%s: %v",
		e.BlockNumber,
		e.Index,
		e.Pallet,
		e.Call,
		e.Err,
	)
}

func (e *ExtrinsicError) Unwrap() error {
	return e.Err
}
