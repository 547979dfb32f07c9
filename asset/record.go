// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package asset defines the on-ledger asset record and its slot encoding.
//
// A record is borsh encoded:
//
//	[owner (32 bytes)] [metadata length (u32 LE)] [metadata (UTF-8)]
//
// Bytes after the record are zeroed on write and ignored on read.
package asset

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/peterchijioke/solana-smart-contract/codec"
	"github.com/peterchijioke/solana-smart-contract/consts"
)

const HeaderLen = codec.AddressLen + consts.IntLen

type Record struct {
	// Owner is the only identity allowed to mutate the record.
	Owner codec.Address `json:"owner"`

	// Metadata is opaque to the registry.
	Metadata string `json:"metadata"`
}

func New(owner codec.Address, metadata string) *Record {
	return &Record{Owner: owner, Metadata: metadata}
}

// Size is the number of bytes [Marshal] produces.
func (r *Record) Size() int {
	return HeaderLen + len(r.Metadata)
}

func (r *Record) Marshal() ([]byte, error) {
	if r.Owner.Empty() {
		return nil, ErrEmptyOwner
	}
	if !utf8.ValidString(r.Metadata) {
		return nil, ErrInvalidMetadata
	}
	return codec.Serialize(*r)
}

// Store encodes the record into [slot]. The slot is left untouched if the
// record does not fit.
func (r *Record) Store(slot []byte) error {
	if size := r.Size(); size > len(slot) {
		return fmt.Errorf("%w: record needs %d bytes but slot has %d", ErrSlotTooSmall, size, len(slot))
	}
	b, err := r.Marshal()
	if err != nil {
		return err
	}
	n := copy(slot, b)
	clear(slot[n:])
	return nil
}

// Unmarshal decodes the record at the front of [b].
func Unmarshal(b []byte) (*Record, error) {
	if len(b) < HeaderLen {
		return nil, fmt.Errorf("%w: %w (have %d bytes, need %d)", ErrInvalidRecord, codec.ErrInsufficientLength, len(b), HeaderLen)
	}
	metadataLen := uint64(binary.LittleEndian.Uint32(b[codec.AddressLen:HeaderLen]))
	if metadataLen > uint64(len(b)-HeaderLen) {
		return nil, fmt.Errorf("%w: metadata length %d exceeds remaining %d bytes", ErrInvalidRecord, metadataLen, len(b)-HeaderLen)
	}
	r, err := codec.Deserialize[Record](b[:HeaderLen+int(metadataLen)])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if r.Owner.Empty() {
		return nil, fmt.Errorf("%w: slot is uninitialized", ErrInvalidRecord)
	}
	if !utf8.ValidString(r.Metadata) {
		return nil, ErrInvalidMetadata
	}
	return r, nil
}
