// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/peterchijioke/solana-smart-contract/codec"
	"github.com/peterchijioke/solana-smart-contract/consts"
	"github.com/peterchijioke/solana-smart-contract/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// State
// 0x0/ (slot)
//   -> [account] => slot bytes
// 0x1/ (balance)
//   -> [account] => balance
// 0x2/ (key)
//   -> [account] => private key held by this host

const (
	slotPrefix byte = iota
	balancePrefix
	keyPrefix
)

func prefixed(prefix byte, addr codec.Address) []byte {
	k := make([]byte, consts.ByteLen+codec.AddressLen)
	k[0] = prefix
	copy(k[1:], addr[:])
	return k
}

// [slotPrefix] + [address]
func SlotKey(addr codec.Address) []byte {
	return prefixed(slotPrefix, addr)
}

// GetSlot returns the slot of [addr] and whether it has been allocated.
func GetSlot(ctx context.Context, im state.Immutable, addr codec.Address) ([]byte, bool, error) {
	v, err := im.GetValue(ctx, SlotKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func SetSlot(ctx context.Context, mu state.Mutable, addr codec.Address, slot []byte) error {
	return mu.Insert(ctx, SlotKey(addr), slot)
}

// [balancePrefix] + [address]
func BalanceKey(addr codec.Address) []byte {
	return prefixed(balancePrefix, addr)
}

// If the account has never been funded the balance is 0.
func GetBalance(ctx context.Context, im state.Immutable, addr codec.Address) (uint64, error) {
	_, bal, _, err := getBalance(ctx, im, addr)
	return bal, err
}

func getBalance(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) ([]byte, uint64, bool, error) {
	k := BalanceKey(addr)
	v, err := im.GetValue(ctx, k)
	if errors.Is(err, database.ErrNotFound) {
		return k, 0, false, nil
	}
	if err != nil {
		return k, 0, false, err
	}
	bal, err := database.ParseUInt64(v)
	if err != nil {
		return k, 0, false, err
	}
	return k, bal, true, nil
}

func SetBalance(ctx context.Context, mu state.Mutable, addr codec.Address, balance uint64) error {
	return setBalance(ctx, mu, BalanceKey(addr), balance)
}

func setBalance(ctx context.Context, mu state.Mutable, key []byte, balance uint64) error {
	return mu.Insert(ctx, key, database.PackUInt64(balance))
}

func AddBalance(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	amount uint64,
) (uint64, error) {
	key, bal, _, err := getBalance(ctx, mu, addr)
	if err != nil {
		return 0, err
	}
	nbal, err := smath.Add64(bal, amount)
	if err != nil {
		return 0, fmt.Errorf(
			"%w: could not add balance (bal=%d, addr=%s, amount=%d)",
			ErrInvalidBalance,
			bal,
			addr,
			amount,
		)
	}
	return nbal, setBalance(ctx, mu, key, nbal)
}

func SubBalance(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	amount uint64,
) (uint64, error) {
	key, bal, _, err := getBalance(ctx, mu, addr)
	if err != nil {
		return 0, err
	}
	nbal, err := smath.Sub(bal, amount)
	if err != nil {
		return 0, fmt.Errorf(
			"%w: could not subtract balance (bal=%d, addr=%s, amount=%d)",
			ErrInvalidBalance,
			bal,
			addr,
			amount,
		)
	}
	if nbal == 0 {
		// If there is no balance left, we should delete the record instead of
		// setting it to 0.
		return 0, mu.Remove(ctx, key)
	}
	return nbal, setBalance(ctx, mu, key, nbal)
}

// [keyPrefix] + [address]
func KeyKey(addr codec.Address) []byte {
	return prefixed(keyPrefix, addr)
}

func GetKey(ctx context.Context, im state.Immutable, addr codec.Address) ([]byte, error) {
	v, err := im.GetValue(ctx, KeyKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, addr)
	}
	return v, err
}

// HasKey reports whether this host holds the private key of [addr], which is
// what makes [addr] a signer.
func HasKey(ctx context.Context, im state.Immutable, addr codec.Address) (bool, error) {
	_, err := im.GetValue(ctx, KeyKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func SetKey(ctx context.Context, mu state.Mutable, addr codec.Address, priv []byte) error {
	return mu.Insert(ctx, KeyKey(addr), priv)
}

// ListKeys returns every address whose key is held, in ascending order.
func ListKeys(db database.Iteratee) ([]codec.Address, error) {
	it := db.NewIteratorWithPrefix([]byte{keyPrefix})
	defer it.Release()

	var addrs []codec.Address
	for it.Next() {
		addr, err := codec.ToAddress(it.Key()[consts.ByteLen:])
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, it.Error()
}
