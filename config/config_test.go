// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/palletvm/trace"
)

func TestLoadDefaults(t *testing.T) {
	r := require.New(t)

	c, err := Load(nil)
	r.NoError(err)
	r.Equal(NewConfig(), c)
	r.Equal(logging.Info, c.LogLevel)
	r.False(c.TraceConfig.Enabled)
}

func TestLoadOverrides(t *testing.T) {
	r := require.New(t)

	c, err := Load([]byte(`{"logLevel":"debug","scenarioFile":"demo.yaml","traceConfig":{"enabled":true,"traceSampleRate":0.5}}`))
	r.NoError(err)
	r.Equal(logging.Debug, c.LogLevel)
	r.Equal("demo.yaml", c.ScenarioFile)
	r.Empty(c.GenesisFile)
	r.True(c.TraceConfig.Enabled)
	r.Equal(0.5, c.TraceConfig.TraceSampleRate)
	// untouched nested fields keep their defaults
	r.Equal(trace.DefaultEndpoint, c.TraceConfig.Endpoint)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{
			name:  "malformed",
			input: `{"logLevel":`,
		},
		{
			name:  "unknown log level",
			input: `{"logLevel":"loud"}`,
		},
		{
			name:        "invalid sample rate",
			input:       `{"traceConfig":{"enabled":true,"traceSampleRate":2}}`,
			expectedErr: trace.ErrInvalidSampleRate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)

			_, err := Load([]byte(tt.input))
			r.Error(err)
			if tt.expectedErr != nil {
				r.ErrorIs(err, tt.expectedErr)
			}
		})
	}
}
