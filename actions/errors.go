// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"fmt"

	"github.com/peterchijioke/solana-smart-contract/chain"
)

var (
	ErrInvalidMetadata = fmt.Errorf("%w: metadata is not valid UTF-8", chain.ErrInvalidInstructionData)
	ErrShortPayload    = fmt.Errorf("%w: payload too short", chain.ErrInvalidInstructionData)
	ErrEmptyNewOwner   = fmt.Errorf("%w: new owner is empty", chain.ErrInvalidInstructionData)
)
