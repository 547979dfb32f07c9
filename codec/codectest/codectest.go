// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codectest

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/peterchijioke/solana-smart-contract/codec"
)

// NewRandomAddress returns a unique non-empty address for use during
// testing.
func NewRandomAddress() codec.Address {
	return codec.Address(ids.GenerateTestID())
}
