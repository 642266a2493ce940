// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package system

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// AccountID is the identity domain shared by every pallet hosted in a
// runtime. Other pallets constrain their account type parameter with
// AccountID so that a runtime binds it exactly once.
type AccountID interface {
	cmp.Ordered
}

// Counter is satisfied by the block number and nonce types. The zero value
// is the starting count.
type Counter interface {
	constraints.Unsigned
}
