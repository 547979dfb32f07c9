// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"fmt"

	"github.com/peterchijioke/solana-smart-contract/chain"
	"github.com/peterchijioke/solana-smart-contract/codec"
	"github.com/peterchijioke/solana-smart-contract/state"
)

var _ chain.BalanceManager = (*Ledger)(nil)

// Ledger moves balances held in [state.Mutable]. It only honors transfers
// routed through its own program identity.
type Ledger struct {
	program codec.Address
	mu      state.Mutable
}

func NewLedger(program codec.Address, mu state.Mutable) *Ledger {
	return &Ledger{
		program: program,
		mu:      mu,
	}
}

func (l *Ledger) GetBalance(ctx context.Context, addr codec.Address) (uint64, error) {
	return GetBalance(ctx, l.mu, addr)
}

func (l *Ledger) TransferBalance(
	ctx context.Context,
	program codec.Address,
	from codec.Address,
	to codec.Address,
	amount uint64,
) error {
	if program != l.program {
		return fmt.Errorf("%w: %s", ErrWrongProgram, program)
	}
	if amount == 0 {
		return nil
	}
	// Both legs land in the same overlay; a failed credit is discarded
	// together with the debit.
	if _, err := SubBalance(ctx, l.mu, from, amount); err != nil {
		return err
	}
	_, err := AddBalance(ctx, l.mu, to, amount)
	return err
}
