// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package proofofexistence lets accounts claim exclusive ownership of opaque
// content. Each piece of content has at most one owner at a time; an owner may
// revoke its claim, after which anyone may claim the content again.
package proofofexistence

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

type Pallet[AccountID comparable, Content cmp.Ordered] struct {
	claims map[Content]AccountID
}

func New[AccountID comparable, Content cmp.Ordered]() *Pallet[AccountID, Content] {
	return &Pallet[AccountID, Content]{
		claims: make(map[Content]AccountID),
	}
}

// GetClaim returns the owner of [content], if any.
func (p *Pallet[A, C]) GetClaim(content C) (A, bool) {
	owner, ok := p.claims[content]
	return owner, ok
}

func (p *Pallet[A, C]) CreateClaim(caller A, content C) error {
	if owner, ok := p.claims[content]; ok {
		return fmt.Errorf("%w: content=%v, owner=%v", ErrAlreadyClaimed, content, owner)
	}
	p.claims[content] = caller
	return nil
}

func (p *Pallet[A, C]) RevokeClaim(caller A, content C) error {
	owner, ok := p.claims[content]
	if !ok {
		return fmt.Errorf("%w: content=%v", ErrClaimNotFound, content)
	}
	if owner != caller {
		return fmt.Errorf("%w: content=%v, caller=%v", ErrNotClaimOwner, content, caller)
	}
	delete(p.claims, content)
	return nil
}

// Claims returns every claimed content key, in ascending order.
func (p *Pallet[_, C]) Claims() []C {
	claims := maps.Keys(p.claims)
	slices.Sort(claims)
	return claims
}
