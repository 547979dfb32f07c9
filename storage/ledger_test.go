// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage_test

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/require"

	"github.com/peterchijioke/solana-smart-contract/codec"
	"github.com/peterchijioke/solana-smart-contract/codec/codectest"
	"github.com/peterchijioke/solana-smart-contract/state"
	"github.com/peterchijioke/solana-smart-contract/storage"
)

func TestLedgerTransfer(t *testing.T) {
	buyer := codectest.NewRandomAddress()
	seller := codectest.NewRandomAddress()

	tests := []struct {
		name          string
		program       codec.Address
		amount        uint64
		err           error
		buyerBalance  uint64
		sellerBalance uint64
	}{
		{
			name:          "Transfer",
			amount:        1_000,
			buyerBalance:  500,
			sellerBalance: 1_000,
		},
		{
			name:          "ZeroAmount",
			amount:        0,
			buyerBalance:  1_500,
			sellerBalance: 0,
		},
		{
			name:          "Insufficient",
			amount:        1_501,
			err:           storage.ErrInvalidBalance,
			buyerBalance:  1_500,
			sellerBalance: 0,
		},
		{
			name:          "WrongProgram",
			program:       codec.Address{0xEE},
			amount:        1,
			err:           storage.ErrWrongProgram,
			buyerBalance:  1_500,
			sellerBalance: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctx := context.Background()

			mu := state.NewSimpleMutable(memdb.New())
			require.NoError(storage.SetBalance(ctx, mu, buyer, 1_500))

			ledger := storage.NewLedger(codec.EmptyAddress, mu)
			err := ledger.TransferBalance(ctx, tt.program, buyer, seller, tt.amount)
			require.ErrorIs(err, tt.err)
			if tt.err != nil {
				// Callers discard the overlay on failure.
				return
			}

			bal, err := ledger.GetBalance(ctx, buyer)
			require.NoError(err)
			require.Equal(tt.buyerBalance, bal)
			bal, err = ledger.GetBalance(ctx, seller)
			require.NoError(err)
			require.Equal(tt.sellerBalance, bal)
		})
	}
}
