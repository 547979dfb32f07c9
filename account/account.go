// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"errors"
	"fmt"

	"github.com/peterchijioke/solana-smart-contract/codec"
)

var ErrNotEnoughAccountKeys = errors.New("not enough account keys")

// Info is the handle an instruction receives for each account it names. Data
// is lent for the duration of a single call and must not be retained.
type Info struct {
	Key      codec.Address
	Data     []byte
	IsSigner bool
}

func New(key codec.Address, data []byte, isSigner bool) *Info {
	return &Info{Key: key, Data: data, IsSigner: isSigner}
}

// Iterator hands out accounts in the order the caller supplied them.
type Iterator struct {
	accounts []*Info
	next     int
}

func NewIterator(accounts []*Info) *Iterator {
	return &Iterator{accounts: accounts}
}

func (it *Iterator) Next() (*Info, error) {
	if it.next >= len(it.accounts) {
		return nil, fmt.Errorf("%w: wanted account %d of %d", ErrNotEnoughAccountKeys, it.next, len(it.accounts))
	}
	a := it.accounts[it.next]
	it.next++
	return a, nil
}
