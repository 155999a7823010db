// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "errors"

var (
	ErrInvalidBlockNumber = errors.New("invalid block number")
	ErrUnknownCall        = errors.New("unknown runtime call")
)
