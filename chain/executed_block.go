// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// ExecutedBlock is returned for every block accepted by an [Executor],
// regardless of how many of its extrinsics failed.
type ExecutedBlock[B any] struct {
	BlockNumber B
	Results     []*Result
}

func NewExecutedBlock[B any](blockNumber B, results []*Result) *ExecutedBlock[B] {
	return &ExecutedBlock[B]{
		BlockNumber: blockNumber,
		Results:     results,
	}
}

// Failures returns the failed extrinsics in execution order.
func (e *ExecutedBlock[B]) Failures() []*ExtrinsicError[B] {
	var failures []*ExtrinsicError[B]
	for _, result := range e.Results {
		if result.Success {
			continue
		}
		failures = append(failures, &ExtrinsicError[B]{
			BlockNumber: e.BlockNumber,
			Index:       result.Index,
			Err:         result.Error,
		})
	}
	return failures
}

// Successes returns the number of extrinsics that executed without error.
func (e *ExecutedBlock[B]) Successes() int {
	count := 0
	for _, result := range e.Results {
		if result.Success {
			count++
		}
	}
	return count
}
