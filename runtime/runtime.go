// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package runtime composes the system, balances and proof of existence
// pallets into a single state machine that executes blocks.
package runtime

import (
	"context"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/palletsdk/chain"
	"github.com/ava-labs/palletsdk/pallets/balances"
	"github.com/ava-labs/palletsdk/pallets/poe"
	"github.com/ava-labs/palletsdk/pallets/system"
	"github.com/ava-labs/palletsdk/state"
)

type Runtime struct {
	System           *system.Pallet[AccountID, BlockNumber, Nonce]
	Balances         *balances.Pallet[AccountID, Balance]
	ProofOfExistence *poe.Pallet[AccountID, Content]

	log      logging.Logger
	tracer   trace.Tracer
	journal  *state.Journal
	executor *chain.Executor[AccountID, BlockNumber, Call]
}

// New returns a runtime at block 0 with no balances, nonces or claims.
//
// All pallets share one journal so a failed extrinsic can be reverted
// across every pallet it touched.
func New(log logging.Logger, tracer trace.Tracer, registerer prometheus.Registerer) (*Runtime, error) {
	journal := state.NewJournal()
	r := &Runtime{
		System:           system.New[AccountID, BlockNumber, Nonce](journal),
		Balances:         balances.New[AccountID, Balance](journal),
		ProofOfExistence: poe.New[AccountID, Content](journal),
		log:              log,
		tracer:           tracer,
		journal:          journal,
	}
	executor, err := chain.NewExecutor[AccountID, BlockNumber, Call](
		log,
		tracer,
		registerer,
		r.System,
		r,
		journal,
	)
	if err != nil {
		return nil, err
	}
	r.executor = executor
	return r, nil
}

// ExecuteBlock applies [blk] on top of the current state.
//
// A header whose block number is not the successor of the current block
// number is rejected with [chain.ErrBlockNumberMismatch]. The block number
// is still advanced in that case. Failed extrinsics are reverted and
// reported in the returned [ExecutedBlock] without failing the block.
func (r *Runtime) ExecuteBlock(ctx context.Context, blk *Block) (*ExecutedBlock, error) {
	return r.executor.Execute(ctx, blk)
}
