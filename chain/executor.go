// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// Executor applies blocks to the state owned by its [System] and
// [Dispatcher].
//
// Execute must not be called concurrently.
type Executor[A any, B constraints.Unsigned, C Call] struct {
	log     logging.Logger
	tracer  trace.Tracer
	metrics *chainMetrics

	system     System[A, B]
	dispatcher Dispatcher[A, C]
	journal    Checkpointer
}

func NewExecutor[A any, B constraints.Unsigned, C Call](
	log logging.Logger,
	tracer trace.Tracer,
	registerer prometheus.Registerer,
	system System[A, B],
	dispatcher Dispatcher[A, C],
	journal Checkpointer,
) (*Executor[A, B, C], error) {
	metrics, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	return &Executor[A, B, C]{
		log:        log,
		tracer:     tracer,
		metrics:    metrics,
		system:     system,
		dispatcher: dispatcher,
		journal:    journal,
	}, nil
}

// Execute advances the block number and applies every extrinsic in [blk] in
// order.
//
// The block number is advanced before [blk] is checked, so a rejected block
// still consumes a block number. If the block number in the header does not
// match, no extrinsic is applied and [ErrBlockNumberMismatch] is returned.
// A nil block returns [ErrNilBlock] and leaves the block number untouched.
//
// A failed extrinsic does not fail the block: its state changes are reverted
// (the caller's nonce increment is kept), the failure is logged and recorded
// in the returned [ExecutedBlock], and execution continues with the next
// extrinsic.
func (e *Executor[A, B, C]) Execute(ctx context.Context, blk *Block[A, B, C]) (*ExecutedBlock[B], error) {
	if blk == nil {
		return nil, ErrNilBlock
	}

	ctx, span := e.tracer.Start(
		ctx, "Executor.Execute",
		oteltrace.WithAttributes(
			attribute.Int("extrinsics", len(blk.Extrinsics)),
			attribute.Int64("blockNumber", int64(blk.Header.BlockNumber)),
		),
	)
	defer span.End()

	start := time.Now()
	e.system.IncBlockNumber()
	expected := e.system.BlockNumber()
	if blk.Header.BlockNumber != expected {
		e.metrics.blocksRejected.Inc()
		e.log.Warn("rejected block",
			zap.Uint64("expected", uint64(expected)),
			zap.Uint64("blockNumber", uint64(blk.Header.BlockNumber)),
		)
		return nil, fmt.Errorf("%w: expected=%d, got=%d", ErrBlockNumberMismatch, expected, blk.Header.BlockNumber)
	}

	results := make([]*Result, len(blk.Extrinsics))
	for i, ext := range blk.Extrinsics {
		e.system.IncNonce(ext.Caller)

		// A failed call still consumes a nonce: the restore point is taken
		// after the increment.
		restorePoint := e.journal.OpIndex()
		name := callName(ext.Call)
		if err := e.dispatcher.Dispatch(ctx, ext.Caller, ext.Call); err != nil {
			e.journal.Rollback(restorePoint)
			e.metrics.extrinsicsFailed.WithLabelValues(name).Inc()
			e.log.Warn("extrinsic failed",
				zap.Uint64("blockNumber", uint64(expected)),
				zap.Int("index", i),
				zap.String("call", name),
				zap.Any("caller", ext.Caller),
				zap.Error(err),
			)
			results[i] = &Result{Index: i, Call: name, Success: false, Error: err}
			continue
		}
		e.metrics.extrinsicsSucceeded.Inc()
		results[i] = &Result{Index: i, Call: name, Success: true}
	}
	e.journal.Commit()

	executed := NewExecutedBlock(expected, results)
	e.metrics.blocksExecuted.Inc()
	e.metrics.executeBlock.Observe(float64(time.Since(start)))
	e.log.Debug("executed block",
		zap.Uint64("blockNumber", uint64(expected)),
		zap.Int("extrinsics", len(results)),
		zap.Int("successes", executed.Successes()),
	)
	return executed, nil
}

func callName[C Call](call C) string {
	if any(call) == nil {
		return "<nil>"
	}
	return call.Name()
}
