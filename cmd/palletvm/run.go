// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/palletvm/config"
	"github.com/ava-labs/palletvm/consts"
	"github.com/ava-labs/palletvm/genesis"
	"github.com/ava-labs/palletvm/runtime"
	"github.com/ava-labs/palletvm/scenario"
	"github.com/ava-labs/palletvm/trace"
	"github.com/ava-labs/palletvm/utils"
)

type runFlags struct {
	configFile   string
	scenarioFile string
	genesisFile  string
	logLevel     string
}

func newRunCommand() *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Executes a scenario (the built-in demo by default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFunc(cmd.Context(), flags)
		},
	}
	cmd.Flags().StringVar(&flags.configFile, "config", "", "path to a JSON config file")
	cmd.Flags().StringVar(&flags.scenarioFile, "scenario", "", "path to a YAML or JSON scenario file")
	cmd.Flags().StringVar(&flags.genesisFile, "genesis", "", "path to a JSON genesis overriding the scenario's")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level overriding the config")
	return cmd
}

func loadConfig(flags *runFlags) (config.Config, error) {
	var raw []byte
	if flags.configFile != "" {
		b, err := os.ReadFile(flags.configFile)
		if err != nil {
			return config.Config{}, err
		}
		raw = b
	}
	cfg, err := config.Load(raw)
	if err != nil {
		return config.Config{}, err
	}
	if flags.scenarioFile != "" {
		cfg.ScenarioFile = flags.scenarioFile
	}
	if flags.genesisFile != "" {
		cfg.GenesisFile = flags.genesisFile
	}
	if flags.logLevel != "" {
		level, err := logging.ToLevel(flags.logLevel)
		if err != nil {
			return config.Config{}, err
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

func loadScenario(cfg config.Config) (*scenario.Scenario, error) {
	s := scenario.Demo()
	if cfg.ScenarioFile != "" {
		b, err := os.ReadFile(cfg.ScenarioFile)
		if err != nil {
			return nil, err
		}
		s, err = scenario.Parse(b)
		if err != nil {
			return nil, err
		}
	}
	if cfg.GenesisFile != "" {
		b, err := os.ReadFile(cfg.GenesisFile)
		if err != nil {
			return nil, err
		}
		g, err := genesis.Load(b)
		if err != nil {
			return nil, err
		}
		s.Genesis = g
	}
	return s, nil
}

func runFunc(ctx context.Context, flags *runFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	log := logging.NewLogger(
		consts.Name,
		logging.NewWrappedCore(
			cfg.LogLevel,
			os.Stdout,
			logging.Colors.ConsoleEncoder(),
		),
	)
	tracer, err := trace.New(&cfg.TraceConfig)
	if err != nil {
		return err
	}
	defer func() {
		if err := tracer.Close(); err != nil {
			log.Warn("failed to close tracer", zap.Error(err))
		}
	}()

	s, err := loadScenario(cfg)
	if err != nil {
		return err
	}
	rt, err := runtime.New(
		runtime.WithLogger(log),
		runtime.WithTracer(tracer),
		runtime.WithFailureHandler(func(extErr *runtime.ExtrinsicError) {
			utils.Outf("{{red}}extrinsic failed:{{/}} %s\n", extErr)
		}),
	)
	if err != nil {
		return err
	}

	utils.Outf("{{yellow}}executing %d blocks{{/}}\n", len(s.Blocks))
	if err := s.Run(ctx, tracer, rt); err != nil {
		return err
	}

	state, err := rt.Snapshot()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	utils.Outf("{{green}}{{bold}}final state{{/}}\n%s\n", string(b))
	return nil
}
