// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

const defaultOps = 16

// op is a single reversible modification recorded by a [Journal].
type op struct {
	undo func()
}

// Journal is an ordered log of modifications performed on one or more
// [AccountState] instances. Tracking operations allows for reverting state
// to a certain point-in-time.
//
// A nil *Journal is valid and records nothing.
type Journal struct {
	ops []*op
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{ops: make([]*op, 0, defaultOps)}
}

func (j *Journal) record(undo func()) {
	if j == nil {
		return
	}
	j.ops = append(j.ops, &op{undo: undo})
}

// OpIndex returns the number of operations recorded since the last [Commit].
func (j *Journal) OpIndex() int {
	if j == nil {
		return 0
	}
	return len(j.ops)
}

// Rollback restores all attached state to the j.ops[restorePoint] operation.
//
// Operations are undone newest-first. A restore point past the end of the
// journal is a no-op.
func (j *Journal) Rollback(restorePoint int) {
	if j == nil {
		return
	}
	if restorePoint < 0 {
		restorePoint = 0
	}
	for i := len(j.ops) - 1; i >= restorePoint; i-- {
		j.ops[i].undo()
	}
	if restorePoint < len(j.ops) {
		j.ops = j.ops[:restorePoint]
	}
}

// Commit forgets every recorded operation. Changes made before Commit can
// no longer be rolled back.
func (j *Journal) Commit() {
	if j == nil {
		return
	}
	clear(j.ops)
	j.ops = j.ops[:0]
}
