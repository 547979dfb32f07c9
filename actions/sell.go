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

var _ chain.Action = (*Sell)(nil)

// Sell moves [Amount] from the buyer to the seller and then hands the record
// to [NewOwner].
//
// Accounts:
//
//  0. seller, which must be the stored owner (a signature is not required)
//  1. asset slot
//  2. buyer
//  3. value-transfer program
type Sell struct {
	NewOwner codec.Address `json:"newOwner"`

	// Amount is in the smallest currency unit.
	Amount uint64 `json:"amount"`
}

const SellPayloadLen = codec.AddressLen + consts.Uint64Len

func (*Sell) GetTypeID() uint8 {
	return consts.SellID
}

func (*Sell) Name() string {
	return "sell"
}

func (s *Sell) Marshal() ([]byte, error) {
	return codec.Serialize(*s)
}

func (s *Sell) Execute(
	ctx context.Context,
	accounts []*account.Info,
	balances chain.BalanceManager,
) error {
	if err := checkNewOwner(s.NewOwner); err != nil {
		return err
	}
	it := account.NewIterator(accounts)
	seller, err := it.Next()
	if err != nil {
		return err
	}
	assetAccount, err := it.Next()
	if err != nil {
		return err
	}
	buyer, err := it.Next()
	if err != nil {
		return err
	}
	program, err := it.Next()
	if err != nil {
		return err
	}

	record, err := loadOwned(assetAccount, seller.Key, chain.ErrSellerNotOwner)
	if err != nil {
		return err
	}

	// Payment gates the ownership change. Nothing has been written yet, so a
	// failed transfer needs no rollback.
	if balances == nil {
		return fmt.Errorf("%w: no value-transfer program available", chain.ErrPaymentFailed)
	}
	if err := balances.TransferBalance(ctx, program.Key, buyer.Key, seller.Key, s.Amount); err != nil {
		return fmt.Errorf("%w: %w", chain.ErrPaymentFailed, err)
	}

	record.Owner = s.NewOwner
	return record.Store(assetAccount.Data)
}

// UnmarshalSell reads the new owner and the little-endian amount from the
// front of [b]. Extra bytes are ignored. The zero identity is rejected.
func UnmarshalSell(b []byte) (chain.Action, error) {
	if err := checkPayload(b, SellPayloadLen); err != nil {
		return nil, err
	}
	v, err := codec.Deserialize[Sell](b[:SellPayloadLen])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", chain.ErrInvalidInstructionData, err)
	}
	if err := checkNewOwner(v.NewOwner); err != nil {
		return nil, err
	}
	return v, nil
}
