// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "asset-cli" creates, trades and inspects asset records held in a local
// registry.
package main

import (
	"os"

	"github.com/peterchijioke/solana-smart-contract/cmd/asset-cli/cmd"
	"github.com/peterchijioke/solana-smart-contract/utils"
)

func main() {
	if err := cmd.Execute(); err != nil {
		utils.Outf("{{red}}asset-cli exited with error:{{/}} %+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
