// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/peterchijioke/solana-smart-contract/config"
	"github.com/peterchijioke/solana-smart-contract/utils"
)

const maxConfigSize = 64 * 1024

var (
	handler *Handler

	configFile string
	dbPath     string

	rootCmd = &cobra.Command{
		Use:        "asset-cli",
		Short:      "Asset registry CLI",
		SuggestFor: []string{"asset-cli", "assetcli"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		keyCmd,
		fundCmd,
		balanceCmd,
		createCmd,
		updateCmd,
		transferCmd,
		sellCmd,
		showCmd,
	)
	rootCmd.PersistentFlags().StringVar(
		&configFile,
		"config",
		"",
		"path to a JSON config file",
	)
	rootCmd.PersistentFlags().StringVar(
		&dbPath,
		"database",
		"",
		"path to database (will create it missing), overrides the config",
	)
	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		var b []byte
		if len(configFile) > 0 {
			var err error
			b, err = utils.LoadBytes(configFile, maxConfigSize)
			if err != nil {
				return err
			}
		}
		cfg, err := config.New(b)
		if err != nil {
			return err
		}
		if len(dbPath) > 0 {
			cfg.DatabasePath = dbPath
		}
		utils.Outf("{{yellow}}database:{{/}} %s\n", cfg.DatabasePath)
		handler, err = NewHandler(cfg)
		return err
	}
	rootCmd.PersistentPostRunE = func(*cobra.Command, []string) error {
		return handler.Close()
	}
	rootCmd.SilenceErrors = true

	keyCmd.AddCommand(
		newKeyCmd,
		importKeyCmd,
		listKeyCmd,
	)
}

func Execute() error {
	return rootCmd.Execute()
}
