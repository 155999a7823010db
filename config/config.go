// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/palletvm/consts"
	"github.com/ava-labs/palletvm/trace"
)

type Config struct {
	LogLevel    logging.Level `json:"logLevel"`
	TraceConfig trace.Config  `json:"traceConfig"`

	// Empty means the built-in genesis or the scenario's own genesis.
	GenesisFile string `json:"genesisFile"`
	// Empty means the built-in demo scenario.
	ScenarioFile string `json:"scenarioFile"`
}

func NewConfig() Config {
	return Config{
		LogLevel: logging.Info,
		TraceConfig: trace.Config{
			Enabled:         false,
			TraceSampleRate: 1,
			AppName:         consts.Name,
			Agent:           consts.Name,
			Version:         consts.Version.String(),
			Endpoint:        trace.DefaultEndpoint,
		},
	}
}

// Load overlays [b] on the defaults. Empty input yields the defaults.
func Load(b []byte) (Config, error) {
	c := NewConfig()
	if len(b) > 0 {
		if err := json.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("failed to unmarshal config %s: %w", string(b), err)
		}
	}
	if err := c.Verify(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) Verify() error {
	return c.TraceConfig.Verify()
}
