// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "golang.org/x/exp/constraints"

// Header carries the number the block producer assigned to a block.
type Header[B constraints.Unsigned] struct {
	BlockNumber B
}

// Extrinsic is a single call submitted by [Caller].
type Extrinsic[A any, C Call] struct {
	Caller A
	Call   C
}

func NewExtrinsic[A any, C Call](caller A, call C) Extrinsic[A, C] {
	return Extrinsic[A, C]{Caller: caller, Call: call}
}

// Block is an ordered batch of extrinsics. Blocks are consumed once by an
// [Executor] and are not retained.
type Block[A any, B constraints.Unsigned, C Call] struct {
	Header     Header[B]
	Extrinsics []Extrinsic[A, C]
}

func NewBlock[A any, B constraints.Unsigned, C Call](blockNumber B, extrinsics ...Extrinsic[A, C]) *Block[A, B, C] {
	return &Block[A, B, C]{
		Header:     Header[B]{BlockNumber: blockNumber},
		Extrinsics: extrinsics,
	}
}
