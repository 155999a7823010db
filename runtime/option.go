// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type Option func(*Runtime)

func WithLogger(log logging.Logger) Option {
	return func(r *Runtime) {
		r.log = log
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(r *Runtime) {
		r.tracer = tracer
	}
}

// WithRegistry registers the runtime metrics with [registry] instead of a
// private one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(r *Runtime) {
		r.registry = registry
	}
}

// WithFailureHandler is invoked with every extrinsic that fails to dispatch,
// after it has been logged.
func WithFailureHandler(f func(*ExtrinsicError)) Option {
	return func(r *Runtime) {
		r.onFailure = f
	}
}
