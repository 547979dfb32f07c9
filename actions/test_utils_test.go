// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peterchijioke/solana-smart-contract/account"
	"github.com/peterchijioke/solana-smart-contract/asset"
	"github.com/peterchijioke/solana-smart-contract/codec"
)

const testSlotSize = 128

var (
	alice = codec.Address{0xA1}
	bob   = codec.Address{0xB0}
	carol = codec.Address{0xC0}
)

func newSlot(t *testing.T, owner codec.Address, metadata string) []byte {
	slot := make([]byte, testSlotSize)
	require.NoError(t, asset.New(owner, metadata).Store(slot))
	return slot
}

func requireRecord(t *testing.T, slot []byte, owner codec.Address, metadata string) {
	r, err := asset.Unmarshal(slot)
	require.NoError(t, err)
	require.Equal(t, owner, r.Owner)
	require.Equal(t, metadata, r.Metadata)
}

func slotAssertion(index int, owner codec.Address, metadata string) func(context.Context, *testing.T, []*account.Info) {
	return func(_ context.Context, t *testing.T, accounts []*account.Info) {
		requireRecord(t, accounts[index].Data, owner, metadata)
	}
}
