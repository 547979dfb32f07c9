// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/peterchijioke/solana-smart-contract/actions"
	"github.com/peterchijioke/solana-smart-contract/chain"
	"github.com/peterchijioke/solana-smart-contract/codec"
)

var Action *codec.TypeParser[chain.Action]

// Setup types
func init() {
	Action = codec.NewTypeParser[chain.Action]()

	errs := &wrappers.Errs{}
	errs.Add(
		// Type IDs are the wire selectors and must never be reassigned.
		Action.Register(&actions.Create{}, actions.UnmarshalCreate),
		Action.Register(&actions.UpdateMetadata{}, actions.UnmarshalUpdateMetadata),
		Action.Register(&actions.TransferOwnership{}, actions.UnmarshalTransferOwnership),
		Action.Register(&actions.Sell{}, actions.UnmarshalSell),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}
