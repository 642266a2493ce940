// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ava-labs/palletsdk/chain"
	"github.com/ava-labs/palletsdk/pallets/balances"
	"github.com/ava-labs/palletsdk/pallets/poe"
)

const (
	alice   AccountID = "alice"
	bob     AccountID = "bob"
	charlie AccountID = "charlie"
)

func newTestRuntime(t require.TestingT) *Runtime {
	tracer, err := trace.New(trace.Config{Enabled: false})
	require.NoError(t, err)
	r, err := New(logging.NoLog{}, tracer, prometheus.NewRegistry())
	require.NoError(t, err)
	return r
}

func TestNewRuntimeIsEmpty(t *testing.T) {
	require := require.New(t)

	r := newTestRuntime(t)
	require.Zero(r.System.BlockNumber())
	require.Zero(r.System.Nonce(alice))
	require.True(r.Balances.Balance(alice).IsZero())
	_, ok := r.ProofOfExistence.GetClaim("doc")
	require.False(ok)
}

func TestExecuteBlockTransfers(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	r := newTestRuntime(t)
	r.Balances.SetBalance(alice, NewBalance(100))

	executed, err := r.ExecuteBlock(ctx, NewBlock(
		1,
		NewExtrinsic(alice, Transfer(bob, NewBalance(30))),
		NewExtrinsic(alice, Transfer(charlie, NewBalance(20))),
	))
	require.NoError(err)
	require.Equal(BlockNumber(1), executed.BlockNumber)
	require.Empty(executed.Failures())
	require.Equal(2, executed.Successes())

	require.Equal(NewBalance(50), r.Balances.Balance(alice))
	require.Equal(NewBalance(30), r.Balances.Balance(bob))
	require.Equal(NewBalance(20), r.Balances.Balance(charlie))
	require.Equal(BlockNumber(1), r.System.BlockNumber())
	require.Equal(Nonce(2), r.System.Nonce(alice))
	require.Zero(r.System.Nonce(bob))
}

func TestExecuteBlockNumberMismatch(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	r := newTestRuntime(t)
	r.Balances.SetBalance(alice, NewBalance(100))

	executed, err := r.ExecuteBlock(ctx, NewBlock(
		5,
		NewExtrinsic(alice, Transfer(bob, NewBalance(30))),
	))
	require.ErrorIs(err, chain.ErrBlockNumberMismatch)
	require.Nil(executed)
	require.Equal(NewBalance(100), r.Balances.Balance(alice))
	require.True(r.Balances.Balance(bob).IsZero())
	require.Zero(r.System.Nonce(alice))

	// The rejected block still consumed block number 1
	require.Equal(BlockNumber(1), r.System.BlockNumber())
	_, err = r.ExecuteBlock(ctx, NewBlock(1))
	require.ErrorIs(err, chain.ErrBlockNumberMismatch)

	executed, err = r.ExecuteBlock(ctx, NewBlock(
		3,
		NewExtrinsic(alice, Transfer(bob, NewBalance(30))),
	))
	require.NoError(err)
	require.Equal(BlockNumber(3), executed.BlockNumber)
	require.Equal(NewBalance(30), r.Balances.Balance(bob))
}

func TestExecuteBlockFailedExtrinsic(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	r := newTestRuntime(t)
	r.Balances.SetBalance(charlie, NewBalance(5))

	executed, err := r.ExecuteBlock(ctx, NewBlock(
		1,
		NewExtrinsic(alice, Transfer(bob, NewBalance(10))),
		NewExtrinsic(charlie, Transfer(bob, NewBalance(5))),
	))
	require.NoError(err)
	require.Equal(1, executed.Successes())

	failures := executed.Failures()
	require.Len(failures, 1)
	require.Zero(failures[0].Index)
	require.ErrorIs(failures[0], balances.ErrInsufficientFunds)
	require.Equal("balances.transfer", executed.Results[0].Call)

	require.True(r.Balances.Balance(alice).IsZero())
	require.Equal(NewBalance(5), r.Balances.Balance(bob))
	require.True(r.Balances.Balance(charlie).IsZero())

	// Nonces are consumed whether or not the call succeeded
	require.Equal(Nonce(1), r.System.Nonce(alice))
	require.Equal(Nonce(1), r.System.Nonce(charlie))
}

func TestExecuteBlockClaims(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	r := newTestRuntime(t)
	executed, err := r.ExecuteBlock(ctx, NewBlock(
		1,
		NewExtrinsic(alice, CreateClaim("hello")),
		NewExtrinsic(bob, CreateClaim("hello")),
		NewExtrinsic(bob, RevokeClaim("hello")),
		NewExtrinsic(bob, CreateClaim("world")),
	))
	require.NoError(err)
	require.Equal(2, executed.Successes())

	failures := executed.Failures()
	require.Len(failures, 2)
	require.Equal(1, failures[0].Index)
	require.ErrorIs(failures[0], poe.ErrAlreadyClaimed)
	require.Equal(2, failures[1].Index)
	require.ErrorIs(failures[1], poe.ErrNotClaimOwner)

	owner, ok := r.ProofOfExistence.GetClaim("hello")
	require.True(ok)
	require.Equal(alice, owner)
	owner, ok = r.ProofOfExistence.GetClaim("world")
	require.True(ok)
	require.Equal(bob, owner)

	executed, err = r.ExecuteBlock(ctx, NewBlock(
		2,
		NewExtrinsic(alice, RevokeClaim("hello")),
		NewExtrinsic(alice, RevokeClaim("hello")),
	))
	require.NoError(err)
	require.Len(executed.Failures(), 1)
	require.ErrorIs(executed.Failures()[0], poe.ErrClaimNotFound)
	_, ok = r.ProofOfExistence.GetClaim("hello")
	require.False(ok)
	require.Equal(Nonce(3), r.System.Nonce(alice))
}

func TestDispatchUnknownCall(t *testing.T) {
	require := require.New(t)

	r := newTestRuntime(t)
	require.ErrorIs(r.Dispatch(context.Background(), alice, nil), ErrUnknownCall)
	require.ErrorIs(r.Dispatch(context.Background(), alice, BalancesCall{}), balances.ErrUnknownCall)
	require.ErrorIs(r.Dispatch(context.Background(), alice, ProofOfExistenceCall{}), poe.ErrUnknownCall)

	executed, err := r.ExecuteBlock(context.Background(), NewBlock(1, NewExtrinsic(alice, nil)))
	require.NoError(err)
	require.Len(executed.Failures(), 1)
	require.ErrorIs(executed.Failures()[0], ErrUnknownCall)
	require.Equal(Nonce(1), r.System.Nonce(alice))
}

func TestCallNames(t *testing.T) {
	require := require.New(t)

	require.Equal("balances.transfer", Transfer(bob, NewBalance(1)).Name())
	require.Equal("proof_of_existence.create_claim", CreateClaim("x").Name())
	require.Equal("proof_of_existence.revoke_claim", RevokeClaim("x").Name())
	require.Equal("balances", BalancesCall{}.Name())
	require.Equal("proof_of_existence", ProofOfExistenceCall{}.Name())
}

func TestIndependentRuntimes(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	r1 := newTestRuntime(t)
	r2 := newTestRuntime(t)
	r1.Balances.SetBalance(alice, NewBalance(10))

	_, err := r1.ExecuteBlock(ctx, NewBlock(1, NewExtrinsic(alice, Transfer(bob, NewBalance(10)))))
	require.NoError(err)
	require.Zero(r2.System.BlockNumber())
	require.True(r2.Balances.Balance(bob).IsZero())
}

func TestNonceAndBlockNumberMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		r := newTestRuntime(t)
		accounts := []AccountID{alice, bob, charlie}
		for _, who := range accounts {
			r.Balances.SetBalance(who, NewBalance(50))
		}

		expected := map[AccountID]Nonce{}
		blocks := rapid.IntRange(1, 5).Draw(t, "blocks")
		for i := 1; i <= blocks; i++ {
			n := rapid.IntRange(0, 8).Draw(t, "extrinsics")
			extrinsics := make([]Extrinsic, n)
			for j := range extrinsics {
				caller := rapid.SampledFrom(accounts).Draw(t, "caller")
				to := rapid.SampledFrom(accounts).Draw(t, "to")
				amount := rapid.Uint64Range(0, 80).Draw(t, "amount")
				extrinsics[j] = NewExtrinsic(caller, Transfer(to, NewBalance(amount)))
				expected[caller]++
			}

			executed, err := r.ExecuteBlock(ctx, NewBlock(BlockNumber(i), extrinsics...))
			if err != nil {
				t.Fatalf("block %d: %v", i, err)
			}
			if len(executed.Results) != n {
				t.Fatalf("block %d: expected %d results, got %d", i, n, len(executed.Results))
			}
			if r.System.BlockNumber() != BlockNumber(i) {
				t.Fatalf("expected block number %d, got %d", i, r.System.BlockNumber())
			}
		}

		for _, who := range accounts {
			if got := r.System.Nonce(who); got != expected[who] {
				t.Fatalf("nonce(%s) = %d, expected %d", who, got, expected[who])
			}
		}
		supply, ok := r.Balances.TotalIssuance()
		if !ok || supply != NewBalance(150) {
			t.Fatalf("total issuance changed: %s", supply)
		}
	})
}
