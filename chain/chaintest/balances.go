// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"context"
	"errors"

	"github.com/peterchijioke/solana-smart-contract/chain"
	"github.com/peterchijioke/solana-smart-contract/codec"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrWrongProgram        = errors.New("wrong transfer program")

	_ chain.BalanceManager = (*TestBalances)(nil)
)

// TestBalances is a map backed [chain.BalanceManager]. Transfers are only
// honored when routed through [Program].
type TestBalances struct {
	Program  codec.Address
	Balances map[codec.Address]uint64

	// Transfers records every successful transfer in order.
	Transfers []Transfer
}

type Transfer struct {
	From   codec.Address
	To     codec.Address
	Amount uint64
}

func NewTestBalances(program codec.Address) *TestBalances {
	return &TestBalances{
		Program:  program,
		Balances: map[codec.Address]uint64{},
	}
}

func (t *TestBalances) GetBalance(_ context.Context, address codec.Address) (uint64, error) {
	return t.Balances[address], nil
}

func (t *TestBalances) TransferBalance(ctx context.Context, program codec.Address, from codec.Address, to codec.Address, amount uint64) error {
	if program != t.Program {
		return ErrWrongProgram
	}
	balance, err := t.GetBalance(ctx, from)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInsufficientBalance
	}
	t.Balances[from] -= amount
	t.Balances[to] += amount
	t.Transfers = append(t.Transfers, Transfer{From: from, To: to, Amount: amount})
	return nil
}
