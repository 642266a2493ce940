// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package balances

// Balance is the capability set the balances pallet requires of its balance
// type. The zero value of B must represent an empty balance, and values are
// copied, never shared.
type Balance[B any] interface {
	comparable

	// CheckedAdd returns the receiver plus [other], or false if the sum
	// cannot be represented.
	CheckedAdd(other B) (B, bool)

	// CheckedSub returns the receiver minus [other], or false if the result
	// would be negative.
	CheckedSub(other B) (B, bool)
}
