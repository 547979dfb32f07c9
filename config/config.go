// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/peterchijioke/solana-smart-contract/asset"
	"github.com/peterchijioke/solana-smart-contract/codec"
	"github.com/peterchijioke/solana-smart-contract/consts"
	"github.com/peterchijioke/solana-smart-contract/pebble"
	"github.com/peterchijioke/solana-smart-contract/trace"
)

const (
	DefaultSlotSize     = 1_024
	DefaultDatabasePath = ".asset-registry"
)

var ErrSlotSize = errors.New("slot size too small")

type Config struct {
	LogLevel logging.Level `json:"logLevel"`

	// SlotSize is the number of bytes allocated for a new account slot. A
	// record whose encoding does not fit is rejected.
	SlotSize int `json:"slotSize"`

	// Storage
	DatabasePath string        `json:"databasePath"`
	Pebble       pebble.Config `json:"pebble"`

	Trace trace.Config `json:"trace"`

	// TransferProgram is the only program the host accepts for Sell payments.
	TransferProgram codec.Address `json:"transferProgram"`
}

func New(b []byte) (*Config, error) {
	c := &Config{
		LogLevel:        logging.Info,
		SlotSize:        DefaultSlotSize,
		DatabasePath:    DefaultDatabasePath,
		Pebble:          pebble.NewDefaultConfig(),
		Trace:           trace.Config{AppName: consts.Name},
		TransferProgram: codec.EmptyAddress,
	}

	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", string(b), err)
		}
	}
	if c.SlotSize < asset.HeaderLen {
		return nil, fmt.Errorf("%w: %d < %d", ErrSlotSize, c.SlotSize, asset.HeaderLen)
	}
	return c, nil
}
