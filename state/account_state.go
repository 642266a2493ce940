// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"cmp"

	"github.com/google/btree"
)

const btreeDegree = 32

type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

func entryLess[K cmp.Ordered, V any](a, b entry[K, V]) bool {
	return cmp.Less(a.key, b.key)
}

// AccountState is an ordered key-value store. Iteration always happens in
// ascending key order, so two stores holding the same entries are walked
// identically.
//
// If attached to a [Journal], every mutation is recorded and can be reverted
// with [Journal.Rollback].
type AccountState[K cmp.Ordered, V any] struct {
	tree    *btree.BTreeG[entry[K, V]]
	journal *Journal
}

// NewAccountState returns an empty store that records its mutations in
// [journal]. [journal] may be nil.
func NewAccountState[K cmp.Ordered, V any](journal *Journal) *AccountState[K, V] {
	return &AccountState[K, V]{
		tree:    btree.NewG(btreeDegree, entryLess[K, V]),
		journal: journal,
	}
}

// Get returns the value stored at [key] and whether it exists.
func (s *AccountState[K, V]) Get(key K) (V, bool) {
	e, ok := s.tree.Get(entry[K, V]{key: key})
	return e.value, ok
}

// GetOrDefault returns the value stored at [key] or the zero value of V if
// [key] is absent.
func (s *AccountState[K, V]) GetOrDefault(key K) V {
	v, _ := s.Get(key)
	return v
}

func (s *AccountState[K, V]) Has(key K) bool {
	return s.tree.Has(entry[K, V]{key: key})
}

// Put inserts or replaces the value stored at [key].
func (s *AccountState[K, V]) Put(key K, value V) {
	past, existed := s.tree.ReplaceOrInsert(entry[K, V]{key: key, value: value})
	s.journal.record(func() {
		if existed {
			s.tree.ReplaceOrInsert(past)
			return
		}
		s.tree.Delete(entry[K, V]{key: key})
	})
}

// Delete removes [key] and reports whether it was present.
func (s *AccountState[K, V]) Delete(key K) bool {
	past, existed := s.tree.Delete(entry[K, V]{key: key})
	if !existed {
		// Nothing to revert
		return false
	}
	s.journal.record(func() {
		s.tree.ReplaceOrInsert(past)
	})
	return true
}

func (s *AccountState[K, V]) Len() int {
	return s.tree.Len()
}

// Ascend calls [f] for every entry in ascending key order until [f] returns
// false.
func (s *AccountState[K, V]) Ascend(f func(key K, value V) bool) {
	s.tree.Ascend(func(e entry[K, V]) bool {
		return f(e.key, e.value)
	})
}
