// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proofofexistence

import "errors"

var (
	ErrAlreadyClaimed = errors.New("content already claimed")
	ErrClaimNotFound  = errors.New("claim does not exist")
	ErrNotClaimOwner  = errors.New("caller is not the owner of the claim")
	ErrUnknownCall    = errors.New("unknown proof of existence call")
)
