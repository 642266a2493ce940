// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "fmt"

// Result is the outcome of a single extrinsic.
type Result struct {
	Index   int
	Call    string
	Success bool
	Error   error
}

// ExtrinsicError reports a failed extrinsic with enough context for an
// external observer to locate it.
type ExtrinsicError[B any] struct {
	BlockNumber B
	Index       int
	Err         error
}

func (e *ExtrinsicError[B]) Error() string {
	return fmt.Sprintf("block %v, extrinsic %d: %v", e.BlockNumber, e.Index, e.Err)
}

func (e *ExtrinsicError[B]) Unwrap() error {
	return e.Err
}
