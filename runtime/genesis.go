// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/set"
	"go.opentelemetry.io/otel/attribute"

	oteltrace "go.opentelemetry.io/otel/trace"
)

type Allocation struct {
	Account AccountID `json:"account" yaml:"account"`
	Balance Balance   `json:"balance" yaml:"balance"`
}

// Genesis is the state a runtime starts from before the first block.
type Genesis struct {
	Allocations []*Allocation `json:"allocations" yaml:"allocations"`
}

func LoadGenesis(b []byte) (*Genesis, error) {
	g := &Genesis{}
	if err := json.Unmarshal(b, g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal genesis: %w", err)
	}
	return g, nil
}

// Verify checks that no account is allocated twice and that the total supply
// fits in a [Balance].
func (g *Genesis) Verify() error {
	accounts := set.NewSet[AccountID](len(g.Allocations))
	supply := Balance{}
	for _, alloc := range g.Allocations {
		if accounts.Contains(alloc.Account) {
			return fmt.Errorf("%w: %s", ErrDuplicateAllocation, alloc.Account)
		}
		accounts.Add(alloc.Account)

		var ok bool
		supply, ok = supply.CheckedAdd(alloc.Balance)
		if !ok {
			return fmt.Errorf("%w: account=%s, balance=%s", ErrSupplyOverflow, alloc.Account, alloc.Balance)
		}
	}
	return nil
}

// Apply writes every allocation into [r]. Nothing is written if the genesis
// does not verify.
func (g *Genesis) Apply(ctx context.Context, r *Runtime) error {
	_, span := r.tracer.Start(
		ctx, "Genesis.Apply",
		oteltrace.WithAttributes(
			attribute.Int("allocations", len(g.Allocations)),
		),
	)
	defer span.End()

	if err := g.Verify(); err != nil {
		return err
	}
	for _, alloc := range g.Allocations {
		r.Balances.SetBalance(alloc.Account, alloc.Balance)
	}
	r.journal.Commit()
	return nil
}
