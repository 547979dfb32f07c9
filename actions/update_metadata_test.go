// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peterchijioke/solana-smart-contract/account"
	"github.com/peterchijioke/solana-smart-contract/asset"
	"github.com/peterchijioke/solana-smart-contract/chain"
	"github.com/peterchijioke/solana-smart-contract/chain/chaintest"
)

func TestUpdateMetadataAction(t *testing.T) {
	tests := []chaintest.ActionTest{
		{
			Name:        "NoAccounts",
			Action:      &UpdateMetadata{Metadata: "paper"},
			ExpectedErr: account.ErrNotEnoughAccountKeys,
		},
		{
			Name:        "UninitializedSlot",
			Action:      &UpdateMetadata{Metadata: "paper"},
			Accounts:    []*account.Info{account.New(alice, make([]byte, testSlotSize), true)},
			ExpectedErr: asset.ErrInvalidRecord,
		},
		{
			Name:        "EmptySlot",
			Action:      &UpdateMetadata{Metadata: "paper"},
			Accounts:    []*account.Info{account.New(alice, nil, true)},
			ExpectedErr: asset.ErrInvalidRecord,
		},
		{
			Name:        "NotOwner",
			Action:      &UpdateMetadata{Metadata: "paper"},
			Accounts:    []*account.Info{account.New(alice, newSlot(t, bob, "rock"), true)},
			ExpectedErr: chain.ErrNotOwner,
		},
		{
			Name:   "SlotTooSmallForNewMetadata",
			Action: &UpdateMetadata{Metadata: string(make([]byte, testSlotSize))},
			Accounts: []*account.Info{
				account.New(alice, newSlot(t, alice, "rock"), false),
			},
			ExpectedErr: asset.ErrSlotTooSmall,
		},
		{
			// The check is against the slot's own key; a signature is not
			// required.
			Name:      "UpdatedWithoutSigner",
			Action:    &UpdateMetadata{Metadata: "paper"},
			Accounts:  []*account.Info{account.New(alice, newSlot(t, alice, "rock"), false)},
			Assertion: slotAssertion(0, alice, "paper"),
		},
		{
			Name:      "Shrinks",
			Action:    &UpdateMetadata{Metadata: ""},
			Accounts:  []*account.Info{account.New(alice, newSlot(t, alice, "rock"), true)},
			Assertion: slotAssertion(0, alice, ""),
		},
	}

	ctx := context.Background()
	for _, test := range tests {
		test.Run(ctx, t)
	}
}

func TestUpdateMetadataNotOwnerIsUnauthorized(t *testing.T) {
	accounts := []*account.Info{account.New(alice, newSlot(t, bob, "rock"), true)}
	err := (&UpdateMetadata{Metadata: "paper"}).Execute(context.Background(), accounts, nil)
	require.ErrorIs(t, err, chain.ErrUnauthorized)
}
