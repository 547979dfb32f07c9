// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/peterchijioke/solana-smart-contract/account"
	"github.com/peterchijioke/solana-smart-contract/chain"
	"github.com/peterchijioke/solana-smart-contract/codec"
	"github.com/peterchijioke/solana-smart-contract/consts"
)

var _ chain.Action = (*TransferOwnership)(nil)

// TransferOwnership hands the record to [NewOwner] without payment.
//
// Accounts:
//
//  0. asset slot, which must also be the stored owner
type TransferOwnership struct {
	NewOwner codec.Address `json:"newOwner"`
}

const TransferOwnershipPayloadLen = codec.AddressLen

func (*TransferOwnership) GetTypeID() uint8 {
	return consts.TransferOwnershipID
}

func (*TransferOwnership) Name() string {
	return "transfer_ownership"
}

func (t *TransferOwnership) Marshal() ([]byte, error) {
	return codec.Serialize(*t)
}

func (t *TransferOwnership) Execute(
	_ context.Context,
	accounts []*account.Info,
	_ chain.BalanceManager,
) error {
	if err := checkNewOwner(t.NewOwner); err != nil {
		return err
	}
	assetAccount, err := account.NewIterator(accounts).Next()
	if err != nil {
		return err
	}
	record, err := loadOwned(assetAccount, assetAccount.Key, chain.ErrNotOwner)
	if err != nil {
		return err
	}
	record.Owner = t.NewOwner
	return record.Store(assetAccount.Data)
}

// UnmarshalTransferOwnership reads the new owner from the front of [b]. Extra
// bytes are ignored. The zero identity is rejected.
func UnmarshalTransferOwnership(b []byte) (chain.Action, error) {
	if err := checkPayload(b, TransferOwnershipPayloadLen); err != nil {
		return nil, err
	}
	v, err := codec.Deserialize[TransferOwnership](b[:TransferOwnershipPayloadLen])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", chain.ErrInvalidInstructionData, err)
	}
	if err := checkNewOwner(v.NewOwner); err != nil {
		return nil, err
	}
	return v, nil
}
