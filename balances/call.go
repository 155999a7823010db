// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package balances

import "fmt"

const TransferCall = "transfer"

// Call is implemented by every dispatchable call of this pallet.
type Call[AccountID, Balance any] interface {
	// Name is the call's name within the pallet.
	Name() string

	isBalancesCall()
}

var _ Call[string, uint64] = (*Transfer[string, uint64])(nil)

type Transfer[AccountID, Balance any] struct {
	// To is the recipient of [Amount].
	To AccountID `json:"to" yaml:"to"`

	Amount Balance `json:"amount" yaml:"amount"`
}

func (*Transfer[_, _]) Name() string {
	return TransferCall
}

func (*Transfer[_, _]) isBalancesCall() {}

// Dispatch routes [call] to the pallet method it targets.
func (p *Pallet[A, B]) Dispatch(caller A, call Call[A, B]) error {
	switch c := call.(type) {
	case *Transfer[A, B]:
		return p.Transfer(caller, c.To, c.Amount)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCall, call)
	}
}
