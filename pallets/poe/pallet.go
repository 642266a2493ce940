// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package poe is a proof of existence registry: accounts claim ownership of
// opaque content, and only the owner can revoke a claim.
package poe

import (
	"fmt"

	"github.com/ava-labs/palletsdk/pallets/system"
	"github.com/ava-labs/palletsdk/state"
)

type Pallet[A system.AccountID, C Content] struct {
	// claim -> owner
	claims *state.AccountState[C, A]
}

// New returns an empty registry. Claim changes are recorded in [journal],
// which may be nil.
func New[A system.AccountID, C Content](journal *state.Journal) *Pallet[A, C] {
	return &Pallet[A, C]{
		claims: state.NewAccountState[C, A](journal),
	}
}

// GetClaim returns the owner of [claim], if any.
func (p *Pallet[A, C]) GetClaim(claim C) (A, bool) {
	return p.claims.Get(claim)
}

// CreateClaim records [caller] as the owner of [claim].
func (p *Pallet[A, C]) CreateClaim(caller A, claim C) error {
	if owner, ok := p.claims.Get(claim); ok {
		return fmt.Errorf("%w: claim=%v, owner=%v", ErrAlreadyClaimed, claim, owner)
	}
	p.claims.Put(claim, caller)
	return nil
}

// RevokeClaim removes [claim] if it is owned by [caller]. Revoked content can
// be claimed again by anyone.
func (p *Pallet[A, C]) RevokeClaim(caller A, claim C) error {
	owner, ok := p.claims.Get(claim)
	if !ok {
		return fmt.Errorf("%w: claim=%v", ErrClaimNotFound, claim)
	}
	if owner != caller {
		return fmt.Errorf("%w: claim=%v, owner=%v, caller=%v", ErrNotClaimOwner, claim, owner, caller)
	}
	p.claims.Delete(claim)
	return nil
}
