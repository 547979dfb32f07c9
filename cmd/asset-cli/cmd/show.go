// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/peterchijioke/solana-smart-contract/utils"
)

var showCmd = &cobra.Command{
	Use:   "show [asset]",
	Short: "print the record held by an asset slot",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		assetKey, err := address(args, 0, "asset")
		if err != nil {
			return err
		}
		record, err := handler.Host().Record(context.Background(), assetKey)
		if err != nil {
			return err
		}
		utils.Outf(
			"{{cyan}}asset:{{/}} %s\n{{cyan}}owner:{{/}} %s\n{{cyan}}metadata:{{/}} %q\n",
			assetKey,
			record.Owner,
			record.Metadata,
		)
		return nil
	},
}
