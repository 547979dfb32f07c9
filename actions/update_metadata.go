// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/peterchijioke/solana-smart-contract/account"
	"github.com/peterchijioke/solana-smart-contract/chain"
	"github.com/peterchijioke/solana-smart-contract/consts"
)

var _ chain.Action = (*UpdateMetadata)(nil)

// UpdateMetadata replaces the metadata of an existing record (mint).
//
// Accounts:
//
//  0. asset slot, which must also be the stored owner
type UpdateMetadata struct {
	Metadata string `json:"metadata"`
}

func (*UpdateMetadata) GetTypeID() uint8 {
	return consts.UpdateMetadataID
}

func (*UpdateMetadata) Name() string {
	return "update_metadata"
}

func (u *UpdateMetadata) Marshal() ([]byte, error) {
	return []byte(u.Metadata), nil
}

func (u *UpdateMetadata) Execute(
	_ context.Context,
	accounts []*account.Info,
	_ chain.BalanceManager,
) error {
	if err := checkMetadata(u.Metadata); err != nil {
		return err
	}
	assetAccount, err := account.NewIterator(accounts).Next()
	if err != nil {
		return err
	}

	// The stored owner is compared with the slot's own key, not with a
	// signer. Once ownership moves to another identity the record can no
	// longer be updated through this slot.
	record, err := loadOwned(assetAccount, assetAccount.Key, chain.ErrNotOwner)
	if err != nil {
		return err
	}
	record.Metadata = u.Metadata
	return record.Store(assetAccount.Data)
}

func UnmarshalUpdateMetadata(b []byte) (chain.Action, error) {
	metadata, err := unmarshalMetadata(b)
	if err != nil {
		return nil, err
	}
	return &UpdateMetadata{Metadata: metadata}, nil
}
