// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/peterchijioke/solana-smart-contract/actions"
	"github.com/peterchijioke/solana-smart-contract/cli/prompt"
	"github.com/peterchijioke/solana-smart-contract/codec"
	"github.com/peterchijioke/solana-smart-contract/utils"
)

var createCmd = &cobra.Command{
	Use:   "create [asset] [metadata]",
	Short: "write a new record owned by [asset] into its slot",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		assetKey, err := handler.heldKey(args, 0, "asset")
		if err != nil {
			return err
		}
		md, err := handler.metadata(args, 1, "metadata")
		if err != nil {
			return err
		}
		return handler.Invoke(context.Background(), []codec.Address{assetKey}, &actions.Create{Metadata: md})
	},
}

var updateCmd = &cobra.Command{
	Use:   "update [asset] [metadata]",
	Short: "replace the metadata of a record",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		assetKey, err := handler.heldKey(args, 0, "asset")
		if err != nil {
			return err
		}
		md, err := handler.metadata(args, 1, "metadata")
		if err != nil {
			return err
		}
		return handler.Invoke(context.Background(), []codec.Address{assetKey}, &actions.UpdateMetadata{Metadata: md})
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer [asset] [new-owner]",
	Short: "hand a record to a new owner",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		assetKey, err := handler.heldKey(args, 0, "asset")
		if err != nil {
			return err
		}
		newOwner, err := address(args, 1, "new owner")
		if err != nil {
			return err
		}
		return handler.Invoke(context.Background(), []codec.Address{assetKey}, &actions.TransferOwnership{NewOwner: newOwner})
	},
}

var sellCmd = &cobra.Command{
	Use:   "sell [seller] [asset] [buyer] [amount]",
	Short: "move [amount] from the buyer to the seller and give the buyer the record",
	Args:  cobra.MaximumNArgs(4),
	RunE: func(_ *cobra.Command, args []string) error {
		seller, err := address(args, 0, "seller")
		if err != nil {
			return err
		}
		assetKey, err := address(args, 1, "asset")
		if err != nil {
			return err
		}
		buyer, err := handler.heldKey(args, 2, "buyer")
		if err != nil {
			return err
		}
		price, err := amount(args, 3, "amount")
		if err != nil {
			return err
		}
		if len(args) < 4 {
			utils.Outf("{{yellow}}%s buys %s from %s for %d{{/}}\n", buyer, assetKey, seller, price)
			cont, err := prompt.Continue()
			if !cont || err != nil {
				return err
			}
		}
		return handler.Invoke(
			context.Background(),
			[]codec.Address{seller, assetKey, buyer, handler.cfg.TransferProgram},
			&actions.Sell{NewOwner: buyer, Amount: price},
		)
	},
}
