// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/peterchijioke/solana-smart-contract/crypto/ed25519"
	"github.com/peterchijioke/solana-smart-contract/utils"
)

var keyCmd = &cobra.Command{
	Use: "key",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var newKeyCmd = &cobra.Command{
	Use:   "new",
	Short: "generate an ed25519 key and hold it as a signer",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		priv, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return err
		}
		addr, err := handler.Host().AddKey(context.Background(), priv)
		if err != nil {
			return err
		}
		utils.Outf("{{green}}created address:{{/}} %s\n", addr)
		return nil
	},
}

var importKeyCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "hold the raw ed25519 private key stored at [path]",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		b, err := utils.LoadBytes(args[0], ed25519.PrivateKeyLen)
		if err != nil {
			return err
		}
		priv, err := ed25519.ToPrivateKey(b)
		if err != nil {
			return err
		}
		addr, err := handler.Host().AddKey(context.Background(), priv)
		if err != nil {
			return err
		}
		utils.Outf("{{green}}imported address:{{/}} %s\n", addr)
		return nil
	},
}

var listKeyCmd = &cobra.Command{
	Use:   "list",
	Short: "list held keys and their balances",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		keys, err := handler.Host().Keys()
		if err != nil {
			return err
		}
		for i, addr := range keys {
			bal, err := handler.Host().Balance(ctx, addr)
			if err != nil {
				return err
			}
			utils.Outf("%d) {{cyan}}address:{{/}} %s {{cyan}}balance:{{/}} %d\n", i, addr, bal)
		}
		return nil
	},
}
