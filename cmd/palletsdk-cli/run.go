// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"github.com/ava-labs/palletsdk/runtime"
)

type extrinsicReport struct {
	Index   int    `json:"index"`
	Call    string `json:"call"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type blockReport struct {
	Number  runtime.BlockNumber `json:"number"`
	Results []extrinsicReport   `json:"results,omitempty"`
	Error   string              `json:"error,omitempty"`
}

type accountSummary struct {
	Account runtime.AccountID `json:"account"`
	Balance runtime.Balance   `json:"balance"`
	Nonce   runtime.Nonce     `json:"nonce"`
}

type claimSummary struct {
	Content runtime.Content   `json:"content"`
	Owner   runtime.AccountID `json:"owner"`
}

type stateSummary struct {
	BlockNumber   runtime.BlockNumber `json:"blockNumber"`
	TotalIssuance runtime.Balance     `json:"totalIssuance"`
	Accounts      []accountSummary    `json:"accounts"`
	Claims        []claimSummary      `json:"claims"`
	// Metric name -> value, summed across label values
	Metrics       map[string]float64  `json:"metrics"`
}

func newRunCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "run [path]",
		Short: "Execute a genesis and a sequence of blocks",
		Long: `Executes the blocks of a plan file on top of its genesis. The plan may be
JSON or YAML; pass "-" to read it from stdin. One JSON report is printed per
block, followed by a summary of the final state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := readPlan(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if err := plan.Verify(); err != nil {
				return err
			}

			config, err := loadConfig(v)
			if err != nil {
				return err
			}
			logFactory := newLogFactory(logging.Config{
				RotatingWriterConfig: logging.RotatingWriterConfig{
					MaxSize:   8,
					MaxFiles:  4,
					MaxAge:    7,
					Directory: v.GetString(logDirKey),
				},
				LogLevel:     config.LogLevel,
				DisplayLevel: config.LogLevel,
				LogFormat:    logging.JSON,
			}, cmd.ErrOrStderr())
			defer logFactory.Close()
			log, err := logFactory.Make(cmd.Root().Name())
			if err != nil {
				return err
			}
			return runPlan(cmd.Context(), config, log, plan, cmd.OutOrStdout())
		},
	}
}

func readPlan(stdin io.Reader, path string) (*Plan, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return unmarshalPlan(b)
}

// runPlan applies [plan] to a fresh runtime and writes one JSON document per
// block, then the final state, to [out]. A rejected block does not stop the
// run.
func runPlan(ctx context.Context, config runtime.Config, log logging.Logger, plan *Plan, out io.Writer) error {
	tracer, err := trace.New(config.TraceConfig)
	if err != nil {
		return err
	}
	registry := prometheus.NewRegistry()
	var registerer prometheus.Registerer = registry
	if config.MetricsNamespace != "" {
		registerer = prometheus.WrapRegistererWithPrefix(config.MetricsNamespace+"_", registry)
	}
	r, err := runtime.New(log, tracer, registerer)
	if err != nil {
		return err
	}
	if err := plan.Genesis.Apply(ctx, r); err != nil {
		return err
	}

	blocks, err := plan.RuntimeBlocks()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	rejected := 0
	for _, blk := range blocks {
		report := &blockReport{Number: blk.Header.BlockNumber}
		executed, err := r.ExecuteBlock(ctx, blk)
		if err != nil {
			rejected++
			report.Error = err.Error()
		} else {
			report.Number = executed.BlockNumber
			for _, result := range executed.Results {
				er := extrinsicReport{
					Index:   result.Index,
					Call:    result.Call,
					Success: result.Success,
				}
				if result.Error != nil {
					er.Error = result.Error.Error()
				}
				report.Results = append(report.Results, er)
			}
		}
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to write block report: %w", err)
		}
	}

	summary, err := summarize(r, plan)
	if err != nil {
		return err
	}
	summary.Metrics, err = gatherMetrics(registry)
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	log.Info("plan executed",
		zap.Int("blocks", len(blocks)),
		zap.Int("rejected", rejected),
		zap.Uint32("blockNumber", uint32(summary.BlockNumber)),
	)
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to write state summary: %w", err)
	}
	return nil
}

// summarize reports every account and claim mentioned by [plan], sorted.
func summarize(r *runtime.Runtime, plan *Plan) (*stateSummary, error) {
	accounts := set.Set[runtime.AccountID]{}
	contents := set.Set[runtime.Content]{}
	for _, alloc := range plan.Genesis.Allocations {
		accounts.Add(alloc.Account)
	}
	for _, b := range plan.Blocks {
		for _, e := range b.Extrinsics {
			accounts.Add(e.Caller)
			if e.To != "" {
				accounts.Add(e.To)
			}
			if e.Content != "" {
				contents.Add(e.Content)
			}
		}
	}

	supply, ok := r.Balances.TotalIssuance()
	if !ok {
		return nil, runtime.ErrSupplyOverflow
	}
	summary := &stateSummary{
		BlockNumber:   r.System.BlockNumber(),
		TotalIssuance: supply,
		Accounts:      []accountSummary{},
		Claims:        []claimSummary{},
	}

	accountIDs := maps.Keys(accounts)
	slices.Sort(accountIDs)
	for _, account := range accountIDs {
		summary.Accounts = append(summary.Accounts, accountSummary{
			Account: account,
			Balance: r.Balances.Balance(account),
			Nonce:   r.System.Nonce(account),
		})
	}

	claims := maps.Keys(contents)
	slices.Sort(claims)
	for _, content := range claims {
		owner, ok := r.ProofOfExistence.GetClaim(content)
		if !ok {
			continue
		}
		summary.Claims = append(summary.Claims, claimSummary{Content: content, Owner: owner})
	}
	return summary, nil
}

// gatherMetrics flattens every counter and gauge in [gatherer].
func gatherMetrics(gatherer prometheus.Gatherer) (map[string]float64, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, err
	}
	metrics := make(map[string]float64, len(families))
	for _, family := range families {
		for _, m := range family.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				metrics[family.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				metrics[family.GetName()] += m.GetGauge().GetValue()
			}
		}
	}
	return metrics, nil
}
