// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/ava-labs/palletsdk/chain"
	"github.com/ava-labs/palletsdk/consts"
	"github.com/ava-labs/palletsdk/pallets/balances"
	"github.com/ava-labs/palletsdk/pallets/poe"

	oteltrace "go.opentelemetry.io/otel/trace"
)

var (
	_ Call = BalancesCall{}
	_ Call = ProofOfExistenceCall{}

	_ chain.Dispatcher[AccountID, Call] = (*Runtime)(nil)
)

// Call is the closed set of calls a [Runtime] can dispatch. There is exactly
// one variant per pallet; each variant wraps that pallet's own call type.
type Call interface {
	chain.Call

	runtimeCall()
}

type BalancesCall struct {
	balances.Call[AccountID, Balance]
}

func (c BalancesCall) Name() string {
	if c.Call == nil {
		return consts.BalancesPallet
	}
	return c.Call.Name()
}

func (BalancesCall) runtimeCall() {}

type ProofOfExistenceCall struct {
	poe.Call[AccountID, Content]
}

func (c ProofOfExistenceCall) Name() string {
	if c.Call == nil {
		return consts.ProofOfExistencePallet
	}
	return c.Call.Name()
}

func (ProofOfExistenceCall) runtimeCall() {}

// Transfer returns a call moving [amount] from the caller to [to].
func Transfer(to AccountID, amount Balance) Call {
	return BalancesCall{balances.Transfer[AccountID, Balance]{To: to, Amount: amount}}
}

// CreateClaim returns a call claiming [claim] for the caller.
func CreateClaim(claim Content) Call {
	return ProofOfExistenceCall{poe.CreateClaim[AccountID, Content]{Claim: claim}}
}

// RevokeClaim returns a call revoking the caller's claim on [claim].
func RevokeClaim(claim Content) Call {
	return ProofOfExistenceCall{poe.RevokeClaim[AccountID, Content]{Claim: claim}}
}

// Dispatch routes [call] to the pallet that owns it and returns the pallet's
// result unchanged.
func (r *Runtime) Dispatch(ctx context.Context, caller AccountID, call Call) error {
	_, span := r.tracer.Start(
		ctx, "Runtime.Dispatch",
		oteltrace.WithAttributes(
			attribute.String("call", callName(call)),
		),
	)
	defer span.End()

	switch c := call.(type) {
	case BalancesCall:
		return r.Balances.Dispatch(caller, c.Call)
	case ProofOfExistenceCall:
		return r.ProofOfExistence.Dispatch(caller, c.Call)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCall, call)
	}
}

func callName(call Call) string {
	if call == nil {
		return "<nil>"
	}
	return call.Name()
}
