// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrNilBlock            = errors.New("nil block")
	ErrBlockNumberMismatch = errors.New("block number does not match what is expected")
)
