// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/ava-labs/palletsdk/runtime"
)

var (
	ErrInvalidPlan         = errors.New("invalid plan")
	ErrInvalidExtrinsic    = errors.New("invalid extrinsic")
	ErrInvalidConfigFormat = errors.New("invalid config format")
)

type CallKind string

const (
	TransferCall    CallKind = "transfer"
	CreateClaimCall CallKind = "create_claim"
	RevokeClaimCall CallKind = "revoke_claim"
)

// Plan is a genesis followed by the blocks to execute on top of it.
type Plan struct {
	Genesis runtime.Genesis `json:"genesis" yaml:"genesis"`
	Blocks  []PlanBlock     `json:"blocks" yaml:"blocks"`
}

type PlanBlock struct {
	// The block number declared in the header. Not required to be the
	// expected one; mismatches are reported like any other block error.
	Number     runtime.BlockNumber `json:"number" yaml:"number"`
	Extrinsics []PlanExtrinsic     `json:"extrinsics" yaml:"extrinsics"`
}

type PlanExtrinsic struct {
	Caller runtime.AccountID `json:"caller" yaml:"caller"`
	Call   CallKind          `json:"call" yaml:"call"`

	// transfer
	To     runtime.AccountID `json:"to,omitempty" yaml:"to,omitempty"`
	Amount runtime.Balance   `json:"amount,omitempty" yaml:"amount,omitempty"`

	// create_claim, revoke_claim
	Content runtime.Content `json:"content,omitempty" yaml:"content,omitempty"`
}

func (e *PlanExtrinsic) toCall() (runtime.Call, error) {
	switch e.Call {
	case TransferCall:
		if e.To == "" {
			return nil, fmt.Errorf("%w: transfer requires a recipient", ErrInvalidExtrinsic)
		}
		return runtime.Transfer(e.To, e.Amount), nil
	case CreateClaimCall:
		if e.Content == "" {
			return nil, fmt.Errorf("%w: %s requires content", ErrInvalidExtrinsic, e.Call)
		}
		return runtime.CreateClaim(e.Content), nil
	case RevokeClaimCall:
		if e.Content == "" {
			return nil, fmt.Errorf("%w: %s requires content", ErrInvalidExtrinsic, e.Call)
		}
		return runtime.RevokeClaim(e.Content), nil
	default:
		return nil, fmt.Errorf("%w: unknown call %q", ErrInvalidExtrinsic, e.Call)
	}
}

// RuntimeBlocks converts every planned block into a runtime block.
func (p *Plan) RuntimeBlocks() ([]*runtime.Block, error) {
	blocks := make([]*runtime.Block, len(p.Blocks))
	for i, b := range p.Blocks {
		extrinsics := make([]runtime.Extrinsic, len(b.Extrinsics))
		for j, e := range b.Extrinsics {
			if e.Caller == "" {
				return nil, fmt.Errorf("%w: block %d, extrinsic %d: missing caller", ErrInvalidExtrinsic, i, j)
			}
			call, err := e.toCall()
			if err != nil {
				return nil, fmt.Errorf("block %d, extrinsic %d: %w", i, j, err)
			}
			extrinsics[j] = runtime.NewExtrinsic(e.Caller, call)
		}
		blocks[i] = runtime.NewBlock(b.Number, extrinsics...)
	}
	return blocks, nil
}

func (p *Plan) Verify() error {
	if len(p.Blocks) == 0 {
		return fmt.Errorf("%w: no blocks found", ErrInvalidPlan)
	}
	if err := p.Genesis.Verify(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	_, err := p.RuntimeBlocks()
	return err
}

func unmarshalPlan(bytes []byte) (*Plan, error) {
	var p Plan
	switch {
	case isJSON(string(bytes)):
		if err := json.Unmarshal(bytes, &p); err != nil {
			return nil, err
		}
	case isYAML(string(bytes)):
		if err := yaml.Unmarshal(bytes, &p); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidConfigFormat
	}
	return &p, nil
}

func isJSON(s string) bool {
	var js map[string]interface{}
	return json.Unmarshal([]byte(s), &js) == nil
}

func isYAML(s string) bool {
	var y map[string]interface{}
	return yaml.Unmarshal([]byte(s), &y) == nil
}
