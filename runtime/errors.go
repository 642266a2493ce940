// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "errors"

var (
	ErrUnknownCall         = errors.New("unknown call")
	ErrInvalidBalance      = errors.New("invalid balance")
	ErrDuplicateAllocation = errors.New("duplicate genesis allocation")
	ErrSupplyOverflow      = errors.New("total supply overflows balance")
)
