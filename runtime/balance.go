// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/ava-labs/palletsdk/pallets/balances"
)

// BalanceBits is the width of [Balance]. Arithmetic that would produce a
// value wider than this overflows.
const BalanceBits = 128

var _ = assertBalance[Balance]

func assertBalance[B balances.Balance[B]]() {}

// Balance is an unsigned 128-bit amount of funds. The zero value is an empty
// balance.
type Balance struct {
	v uint256.Int
}

func NewBalance(v uint64) Balance {
	var b Balance
	b.v.SetUint64(v)
	return b
}

// MaxBalance returns the largest representable balance (2^128 - 1).
func MaxBalance() Balance {
	var b Balance
	b.v.Lsh(uint256.NewInt(1), BalanceBits)
	b.v.SubUint64(&b.v, 1)
	return b
}

// ParseBalance parses a base 10 balance.
func ParseBalance(s string) (Balance, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Balance{}, fmt.Errorf("%w: %q", ErrInvalidBalance, s)
	}
	if v.BitLen() > BalanceBits {
		return Balance{}, fmt.Errorf("%w: %s exceeds %d bits", ErrInvalidBalance, s, BalanceBits)
	}
	return Balance{v: *v}, nil
}

func (b Balance) CheckedAdd(other Balance) (Balance, bool) {
	var sum Balance
	if _, overflow := sum.v.AddOverflow(&b.v, &other.v); overflow || sum.v.BitLen() > BalanceBits {
		return Balance{}, false
	}
	return sum, true
}

func (b Balance) CheckedSub(other Balance) (Balance, bool) {
	var diff Balance
	if _, underflow := diff.v.SubOverflow(&b.v, &other.v); underflow {
		return Balance{}, false
	}
	return diff, true
}

func (b Balance) Cmp(other Balance) int {
	return b.v.Cmp(&other.v)
}

func (b Balance) IsZero() bool {
	return b.v.IsZero()
}

func (b Balance) String() string {
	return b.v.Dec()
}

// MarshalJSON encodes the balance as a decimal string so values wider than
// 53 bits survive JSON parsers that use float64.
func (b Balance) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON accepts either a JSON number or a decimal string.
func (b *Balance) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	v, err := ParseBalance(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// UnmarshalYAML accepts either an integer or a decimal string.
func (b *Balance) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	var s string
	switch v := raw.(type) {
	case int:
		if v < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidBalance, v)
		}
		s = strconv.Itoa(v)
	case uint64:
		s = strconv.FormatUint(v, 10)
	case string:
		s = v
	default:
		return fmt.Errorf("%w: unsupported value %v", ErrInvalidBalance, raw)
	}
	v, err := ParseBalance(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}
