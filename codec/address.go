// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/peterchijioke/solana-smart-contract/consts"
)

const AddressLen = consts.IDLen

// Address is the 32 byte identity of an account. Asset owners, asset slots,
// buyers and sellers are all named by an Address.
type Address [AddressLen]byte

// EmptyAddress is never a valid asset owner. It doubles as the identity of
// the default value-transfer program.
var EmptyAddress = Address{}

// ToAddress copies [b] into an Address. [b] must be exactly [AddressLen]
// bytes.
func ToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLen {
		return a, fmt.Errorf("%w: expected %d bytes but got %d", ErrInvalidSize, AddressLen, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// ParseAddress decodes the base58 form produced by [Address.String].
func ParseAddress(s string) (Address, error) {
	b := base58.Decode(s)
	if len(b) == 0 && len(s) > 0 {
		return EmptyAddress, fmt.Errorf("%w: %q is not base58", ErrInvalidAddress, s)
	}
	a, err := ToAddress(b)
	if err != nil {
		return EmptyAddress, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return a, nil
}

func (a Address) Empty() bool {
	return a == EmptyAddress
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// MarshalText returns the base58 representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a base58-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
