// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/forkgate/app"
	"github.com/ava-labs/forkgate/config"
	"github.com/ava-labs/forkgate/utils/constants"
	"github.com/ava-labs/forkgate/version"
)

func main() {
	exitCode := 0
	rootCmd := &cobra.Command{
		Use:          constants.PlatformName,
		Short:        "Reports which consensus rules are active at a chain tip",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			v, err := config.NewViper(c.Flags())
			if err != nil {
				return err
			}
			gateConfig, err := config.GetConfig(v)
			if err != nil {
				return err
			}

			if v.GetBool(config.VersionKey) {
				networkName := constants.NetworkName(gateConfig.NetworkID)
				fmt.Print(version.String(networkName, version.GitCommit))
				return nil
			}

			gate, err := app.New(gateConfig, v, os.Stdout)
			if err != nil {
				return err
			}
			exitCode = app.Run(gate)
			return nil
		},
	}
	rootCmd.PersistentFlags().AddFlagSet(config.BuildFlagSet())

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Prints the activation time of every rule on the configured network",
		RunE: func(c *cobra.Command, _ []string) error {
			v, err := config.NewViper(c.Flags())
			if err != nil {
				return err
			}
			gateConfig, err := config.GetConfig(v)
			if err != nil {
				return err
			}
			return app.WriteRules(os.Stdout, gateConfig.Catalog, gateConfig.Overrides)
		},
	}
	rootCmd.AddCommand(rulesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
