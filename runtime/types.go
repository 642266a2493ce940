// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "github.com/ava-labs/palletsdk/chain"

// Types every pallet hosted by [Runtime] is instantiated with.
type (
	AccountID   string
	BlockNumber uint32
	Nonce       uint32
	Content     string
)

type (
	Header         = chain.Header[BlockNumber]
	Extrinsic      = chain.Extrinsic[AccountID, Call]
	Block          = chain.Block[AccountID, BlockNumber, Call]
	ExecutedBlock  = chain.ExecutedBlock[BlockNumber]
	ExtrinsicError = chain.ExtrinsicError[BlockNumber]
)

func NewExtrinsic(caller AccountID, call Call) Extrinsic {
	return chain.NewExtrinsic(caller, call)
}

func NewBlock(blockNumber BlockNumber, extrinsics ...Extrinsic) *Block {
	return chain.NewBlock(blockNumber, extrinsics...)
}
