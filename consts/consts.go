// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	IDLen     = 32
	ByteLen   = 1
	IntLen    = 4
	Uint64Len = 8
	MaxUint8  = ^uint8(0)
	MaxUint64 = ^uint64(0)
)

// Instruction selectors. The leading byte of every instruction names one of
// these.
const (
	CreateID            uint8 = 0
	UpdateMetadataID    uint8 = 1
	TransferOwnershipID uint8 = 2
	SellID              uint8 = 3
)

const Name = "asset-registry"
