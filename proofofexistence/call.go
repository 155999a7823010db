// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proofofexistence

import "fmt"

const (
	CreateClaimCall = "create_claim"
	RevokeClaimCall = "revoke_claim"
)

type Call[Content any] interface {
	Name() string

	isProofOfExistenceCall()
}

var (
	_ Call[string] = (*CreateClaim[string])(nil)
	_ Call[string] = (*RevokeClaim[string])(nil)
)

type CreateClaim[Content any] struct {
	Claim Content `json:"claim" yaml:"claim"`
}

func (*CreateClaim[_]) Name() string {
	return CreateClaimCall
}

func (*CreateClaim[_]) isProofOfExistenceCall() {}

type RevokeClaim[Content any] struct {
	Claim Content `json:"claim" yaml:"claim"`
}

func (*RevokeClaim[_]) Name() string {
	return RevokeClaimCall
}

func (*RevokeClaim[_]) isProofOfExistenceCall() {}

// Dispatch routes [call] to the pallet method it targets.
func (p *Pallet[A, C]) Dispatch(caller A, call Call[C]) error {
	switch c := call.(type) {
	case *CreateClaim[C]:
		return p.CreateClaim(caller, c.Claim)
	case *RevokeClaim[C]:
		return p.RevokeClaim(caller, c.Claim)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCall, call)
	}
}
