// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/peterchijioke/solana-smart-contract/codec"
	"github.com/peterchijioke/solana-smart-contract/consts"
)

func TestDefaults(t *testing.T) {
	require := require.New(t)

	c, err := New(nil)
	require.NoError(err)
	require.Equal(logging.Info, c.LogLevel)
	require.Equal(DefaultSlotSize, c.SlotSize)
	require.Equal(DefaultDatabasePath, c.DatabasePath)
	require.Equal(codec.EmptyAddress, c.TransferProgram)
	require.False(c.Trace.Enabled)
	require.Equal(consts.Name, c.Trace.AppName)
	require.True(c.Pebble.Sync)
}

func TestOverrides(t *testing.T) {
	require := require.New(t)

	program := codec.Address{0x01}
	c, err := New([]byte(`{
		"logLevel": "debug",
		"slotSize": 256,
		"databasePath": "/tmp/assets",
		"transferProgram": "` + program.String() + `",
		"trace": {"enabled": true, "sampleRate": 0.5},
		"pebble": {"sync": false}
	}`))
	require.NoError(err)
	require.Equal(logging.Debug, c.LogLevel)
	require.Equal(256, c.SlotSize)
	require.Equal("/tmp/assets", c.DatabasePath)
	require.Equal(program, c.TransferProgram)
	require.True(c.Trace.Enabled)
	require.Equal(0.5, c.Trace.SampleRate)
	require.Equal(consts.Name, c.Trace.AppName)
	require.False(c.Pebble.Sync)
	require.Positive(c.Pebble.CacheSize)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		b    string
		err  error
	}{
		{
			name: "SlotTooSmall",
			b:    `{"slotSize": 35}`,
			err:  ErrSlotSize,
		},
		{
			name: "BadProgram",
			b:    `{"transferProgram": "0OIl"}`,
			err:  codec.ErrInvalidAddress,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]byte(tt.b))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMalformed(t *testing.T) {
	_, err := New([]byte("{"))
	require.Error(t, err)
}
