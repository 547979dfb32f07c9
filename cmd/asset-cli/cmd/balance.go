// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/peterchijioke/solana-smart-contract/utils"
)

var fundCmd = &cobra.Command{
	Use:   "fund [address] [amount]",
	Short: "credit an account with currency for purchases",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		addr, err := address(args, 0, "address")
		if err != nil {
			return err
		}
		amt, err := amount(args, 1, "amount")
		if err != nil {
			return err
		}
		bal, err := handler.Host().Fund(context.Background(), addr, amt)
		if err != nil {
			return err
		}
		utils.Outf("{{green}}funded{{/}} %s {{cyan}}balance:{{/}} %d\n", addr, bal)
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "show the currency balance of an account",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		addr, err := handler.heldKey(args, 0, "address")
		if err != nil {
			return err
		}
		bal, err := handler.Host().Balance(context.Background(), addr)
		if err != nil {
			return err
		}
		utils.Outf("{{cyan}}address:{{/}} %s {{cyan}}balance:{{/}} %d\n", addr, bal)
		return nil
	},
}
