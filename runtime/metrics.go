// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	blocksExecuted prometheus.Counter
	blocksRejected prometheus.Counter

	extrinsicsSucceeded prometheus.Counter
	extrinsicsFailed    prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		blocksExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "blocks_executed",
			Help:      "number of blocks executed",
		}),
		blocksRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "blocks_rejected",
			Help:      "number of blocks rejected for an invalid block number",
		}),
		extrinsicsSucceeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "extrinsics_succeeded",
			Help:      "number of extrinsics dispatched successfully",
		}),
		extrinsicsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "extrinsics_failed",
			Help:      "number of extrinsics whose dispatch returned an error",
		}),
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
