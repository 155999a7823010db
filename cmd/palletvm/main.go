// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "palletvm" replays a scenario of blocks against a fresh runtime and prints
// the resulting state.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/palletvm/cmd/palletvm/version"
)

var rootCmd = &cobra.Command{
	Use:        "palletvm",
	Short:      "Minimal pallet based state transition runtime",
	SuggestFor: []string{"palletvm"},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		newRunCommand(),
		version.NewCommand(),
	)
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "palletvm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
