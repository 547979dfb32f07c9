// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"fmt"
	"unicode/utf8"

	"github.com/peterchijioke/solana-smart-contract/account"
	"github.com/peterchijioke/solana-smart-contract/asset"
	"github.com/peterchijioke/solana-smart-contract/codec"
)

func unmarshalMetadata(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidMetadata
	}
	return string(b), nil
}

func checkMetadata(metadata string) error {
	if !utf8.ValidString(metadata) {
		return ErrInvalidMetadata
	}
	return nil
}

func checkNewOwner(owner codec.Address) error {
	if owner.Empty() {
		return ErrEmptyNewOwner
	}
	return nil
}

func checkPayload(b []byte, size int) error {
	if len(b) < size {
		return fmt.Errorf("%w: need %d bytes but got %d", ErrShortPayload, size, len(b))
	}
	return nil
}

// loadOwned decodes the record held by [slot] and returns [errNotOwner] unless
// it is owned by [owner].
func loadOwned(slot *account.Info, owner codec.Address, errNotOwner error) (*asset.Record, error) {
	record, err := asset.Unmarshal(slot.Data)
	if err != nil {
		return nil, err
	}
	if record.Owner != owner {
		return nil, fmt.Errorf("%w (owner=%s, account=%s)", errNotOwner, record.Owner, owner)
	}
	return record, nil
}
