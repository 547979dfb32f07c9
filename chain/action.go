// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/peterchijioke/solana-smart-contract/account"
	"github.com/peterchijioke/solana-smart-contract/codec"
)

// Action is one instruction variant. Each variant owns a type ID (the
// instruction selector) and a typed payload.
type Action interface {
	codec.Typed

	// Name is used in logs and metrics.
	Name() string

	// Marshal returns the payload that follows the type ID on the wire.
	Marshal() ([]byte, error)

	// Execute applies the action to the slots of [accounts]. It must fully
	// validate before writing any slot and must not retain [accounts].
	Execute(ctx context.Context, accounts []*account.Info, balances BalanceManager) error
}

// BalanceManager is the value-transfer primitive provided by the host.
type BalanceManager interface {
	GetBalance(ctx context.Context, address codec.Address) (uint64, error)

	// TransferBalance atomically moves [amount] from [from] to [to] through
	// the transfer program identified by [program].
	TransferBalance(ctx context.Context, program codec.Address, from codec.Address, to codec.Address, amount uint64) error
}

// Marshal returns the instruction bytes that [Processor.Process] parses back
// into [action].
func Marshal(action Action) ([]byte, error) {
	payload, err := action.Marshal()
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, 1+len(payload))
	b = append(b, action.GetTypeID())
	return append(b, payload...), nil
}
