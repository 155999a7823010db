// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDisabled(t *testing.T) {
	r := require.New(t)

	tracer, err := New(&Config{Enabled: false, TraceSampleRate: 42})
	r.NoError(err)
	r.IsType(noOpTracer{}, tracer)

	_, span := tracer.Start(context.Background(), "test")
	span.End()
	r.False(span.SpanContext().IsSampled())
	r.NoError(tracer.Close())
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectedErr error
	}{
		{
			name:   "disabled ignores sample rate",
			config: Config{TraceSampleRate: -1},
		},
		{
			name:   "enabled",
			config: Config{Enabled: true, TraceSampleRate: 0.25},
		},
		{
			name:        "negative sample rate",
			config:      Config{Enabled: true, TraceSampleRate: -0.1},
			expectedErr: ErrInvalidSampleRate,
		},
		{
			name:        "sample rate above one",
			config:      Config{Enabled: true, TraceSampleRate: 1.5},
			expectedErr: ErrInvalidSampleRate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.config.Verify(), tt.expectedErr)
		})
	}
}
