// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package poe

import "cmp"

// Content is the type of data that can be claimed. It must be totally
// ordered; values are printed with the fmt verbs when errors are reported.
type Content interface {
	cmp.Ordered
}
