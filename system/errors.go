// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package system

import "errors"

var (
	ErrBlockNumberOverflow = errors.New("block number overflow")
	ErrNonceOverflow       = errors.New("nonce overflow")
)
