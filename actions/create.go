// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/peterchijioke/solana-smart-contract/account"
	"github.com/peterchijioke/solana-smart-contract/asset"
	"github.com/peterchijioke/solana-smart-contract/chain"
	"github.com/peterchijioke/solana-smart-contract/consts"
)

var _ chain.Action = (*Create)(nil)

// Create writes a new record into the slot of the first account and makes
// that account its owner.
//
// Accounts:
//
//  0. [signer] asset slot
type Create struct {
	Metadata string `json:"metadata"`
}

func (*Create) GetTypeID() uint8 {
	return consts.CreateID
}

func (*Create) Name() string {
	return "create"
}

func (c *Create) Marshal() ([]byte, error) {
	return []byte(c.Metadata), nil
}

func (c *Create) Execute(
	_ context.Context,
	accounts []*account.Info,
	_ chain.BalanceManager,
) error {
	if err := checkMetadata(c.Metadata); err != nil {
		return err
	}
	assetAccount, err := account.NewIterator(accounts).Next()
	if err != nil {
		return err
	}
	if !assetAccount.IsSigner {
		return chain.ErrMissingSignature
	}

	// Whatever the slot held before is overwritten without being read.
	return asset.New(assetAccount.Key, c.Metadata).Store(assetAccount.Data)
}

func UnmarshalCreate(b []byte) (chain.Action, error) {
	metadata, err := unmarshalMetadata(b)
	if err != nil {
		return nil, err
	}
	return &Create{Metadata: metadata}, nil
}
