// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package system

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ava-labs/palletsdk/state"
)

type (
	testAccountID   = string
	testBlockNumber = uint32
	testNonce       = uint32
)

func newTestPallet() *Pallet[testAccountID, testBlockNumber, testNonce] {
	return New[testAccountID, testBlockNumber, testNonce](nil)
}

func TestInitSystem(t *testing.T) {
	require := require.New(t)

	system := newTestPallet()
	require.Zero(system.BlockNumber())
	require.Zero(system.Nonce("alice"))

	system.IncBlockNumber()
	system.IncNonce("alice")

	require.Equal(testBlockNumber(1), system.BlockNumber())
	require.Equal(testNonce(1), system.Nonce("alice"))
	require.Zero(system.Nonce("bob"))
}

func TestIncNonceIsNotIdempotent(t *testing.T) {
	require := require.New(t)

	system := newTestPallet()
	for i := 0; i < 5; i++ {
		system.IncNonce("alice")
	}
	system.IncNonce("bob")

	require.Equal(testNonce(5), system.Nonce("alice"))
	require.Equal(testNonce(1), system.Nonce("bob"))
}

func TestNonceRollback(t *testing.T) {
	require := require.New(t)

	journal := state.NewJournal()
	system := New[testAccountID, testBlockNumber, testNonce](journal)
	system.IncNonce("alice")
	checkpoint := journal.OpIndex()
	system.IncNonce("alice")
	system.IncNonce("bob")

	journal.Rollback(checkpoint)
	require.Equal(testNonce(1), system.Nonce("alice"))
	require.Zero(system.Nonce("bob"))
}

func TestWideCounters(t *testing.T) {
	require := require.New(t)

	system := New[testAccountID, uint64, uint8](nil)
	system.IncBlockNumber()
	system.IncBlockNumber()
	system.IncNonce("alice")
	require.Equal(uint64(2), system.BlockNumber())
	require.Equal(uint8(1), system.Nonce("alice"))
}

func TestNonceCountsIncrements(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		system := newTestPallet()
		accounts := []string{"alice", "bob", "charlie"}
		callers := rapid.SliceOf(rapid.SampledFrom(accounts)).Draw(t, "callers")

		expected := make(map[string]testNonce, len(accounts))
		for _, caller := range callers {
			system.IncNonce(caller)
			expected[caller]++
		}
		for _, account := range accounts {
			if got := system.Nonce(account); got != expected[account] {
				t.Fatalf("nonce(%s) = %d, want %d", account, got, expected[account])
			}
		}
	})
}
