// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "chain"

type chainMetrics struct {
	blocksExecuted prometheus.Counter
	blocksRejected prometheus.Counter

	extrinsicsSucceeded prometheus.Counter
	extrinsicsFailed    *prometheus.CounterVec

	executeBlock metric.Averager
}

func newMetrics(r prometheus.Registerer) (*chainMetrics, error) {
	executeBlock, err := metric.NewAverager(
		"chain_execute_block",
		"time spent executing a block",
		r,
	)
	if err != nil {
		return nil, err
	}

	m := &chainMetrics{
		blocksExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_executed",
			Help:      "number of blocks executed",
		}),
		blocksRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_rejected",
			Help:      "number of blocks rejected because of an unexpected block number",
		}),
		extrinsicsSucceeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extrinsics_succeeded",
			Help:      "number of extrinsics dispatched without error",
		}),
		extrinsicsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extrinsics_failed",
			Help:      "number of extrinsics that returned an error, by call",
		}, []string{"call"}),
		executeBlock: executeBlock,
	}

	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.blocksExecuted),
		r.Register(m.blocksRejected),
		r.Register(m.extrinsicsSucceeded),
		r.Register(m.extrinsicsFailed),
	)
	return m, errs.Err
}
