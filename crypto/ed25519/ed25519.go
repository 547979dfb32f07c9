// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"errors"

	"github.com/hdevalence/ed25519consensus"
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/peterchijioke/solana-smart-contract/codec"
)

var ErrInvalidPrivateKey = errors.New("invalid private key")

type (
	PublicKey  [ed25519.PublicKeySize]byte
	PrivateKey [ed25519.PrivateKeySize]byte
	Signature  [ed25519.SignatureSize]byte
)

// Signatures are verified with ZIP-215 rules
// (https://zips.z.cash/zip-0215) so any signature accepted by one node is
// accepted by all of them.
const (
	PublicKeyLen  = ed25519.PublicKeySize
	PrivateKeyLen = ed25519.PrivateKeySize
	// ed25519 private keys are formatted as seed|publicKey.
	PrivateKeySeedLen = ed25519.SeedSize
	SignatureLen      = ed25519.SignatureSize
)

var EmptyPrivateKey = PrivateKey{}

func GeneratePrivateKey() (PrivateKey, error) {
	_, k, err := ed25519.GenerateKey(nil)
	if err != nil {
		return EmptyPrivateKey, err
	}
	return PrivateKey(k), nil
}

// ToPrivateKey checks that [b] is a well formed private key: its trailing
// public key must match the one derived from its seed.
func ToPrivateKey(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return EmptyPrivateKey, ErrInvalidPrivateKey
	}
	derived := ed25519.NewKeyFromSeed(b[:PrivateKeySeedLen])
	if string(derived) != string(b) {
		return EmptyPrivateKey, ErrInvalidPrivateKey
	}
	return PrivateKey(b), nil
}

// PublicKey is the last 32 bytes of p.
func (p PrivateKey) PublicKey() PublicKey {
	return PublicKey(p[PrivateKeySeedLen:])
}

// Address is the account identity controlled by p.
func (p PrivateKey) Address() codec.Address {
	return codec.Address(p.PublicKey())
}

func Sign(msg []byte, pk PrivateKey) Signature {
	return Signature(ed25519.Sign(pk[:], msg))
}

func Verify(msg []byte, p PublicKey, s Signature) bool {
	return ed25519consensus.Verify(p[:], msg, s[:])
}
