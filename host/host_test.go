// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/peterchijioke/solana-smart-contract/actions"
	"github.com/peterchijioke/solana-smart-contract/asset"
	"github.com/peterchijioke/solana-smart-contract/chain"
	"github.com/peterchijioke/solana-smart-contract/codec"
	"github.com/peterchijioke/solana-smart-contract/codec/codectest"
	"github.com/peterchijioke/solana-smart-contract/config"
	"github.com/peterchijioke/solana-smart-contract/consts"
	"github.com/peterchijioke/solana-smart-contract/crypto/ed25519"
	"github.com/peterchijioke/solana-smart-contract/state"
	"github.com/peterchijioke/solana-smart-contract/storage"
	"github.com/peterchijioke/solana-smart-contract/trace"
)

func newTestHost(t *testing.T) *Host {
	cfg, err := config.New([]byte(`{"slotSize": 128}`))
	require.NoError(t, err)
	h, err := New(logging.NoLog{}, trace.NewNoOp("test"), memdb.New(), cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	return h
}

// newSigner returns an address whose key is held by [h].
func newSigner(t *testing.T, h *Host) codec.Address {
	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(t, err)
	addr, err := h.AddKey(context.Background(), priv)
	require.NoError(t, err)
	return addr
}

// invoke signs [action] with every key [h] holds among [keys] and runs it.
func invoke(t *testing.T, h *Host, keys []codec.Address, action chain.Action) error {
	ctx := context.Background()
	data, err := chain.Marshal(action)
	require.NoError(t, err)
	sigs, err := h.Sign(ctx, keys, data)
	require.NoError(t, err)
	return h.Invoke(ctx, keys, data, sigs)
}

func TestCreateTransferScenario(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	h := newTestHost(t)
	a := newSigner(t, h)
	b := newSigner(t, h)

	require.NoError(invoke(t, h, []codec.Address{a}, &actions.Create{Metadata: "rock"}))
	record, err := h.Record(ctx, a)
	require.NoError(err)
	require.Equal(asset.New(a, "rock"), record)

	require.NoError(invoke(t, h, []codec.Address{a}, &actions.TransferOwnership{NewOwner: b}))
	record, err = h.Record(ctx, a)
	require.NoError(err)
	require.Equal(asset.New(b, "rock"), record)

	// A no longer owns the record it created.
	err = invoke(t, h, []codec.Address{a}, &actions.TransferOwnership{NewOwner: a})
	require.ErrorIs(err, chain.ErrUnauthorized)
	err = invoke(t, h, []codec.Address{a}, &actions.UpdateMetadata{Metadata: "paper"})
	require.ErrorIs(err, chain.ErrUnauthorized)

	record, err = h.Record(ctx, a)
	require.NoError(err)
	require.Equal(asset.New(b, "rock"), record)
}

func TestCreateRequiresHeldKey(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	h := newTestHost(t)
	stranger := codectest.NewRandomAddress()

	err := invoke(t, h, []codec.Address{stranger}, &actions.Create{Metadata: "rock"})
	require.ErrorIs(err, chain.ErrUnauthorized)

	// Nothing was allocated for the failed instruction.
	_, err = h.Record(ctx, stranger)
	require.ErrorIs(err, asset.ErrInvalidRecord)
}

func TestSellScenario(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	h := newTestHost(t)
	seller := newSigner(t, h)
	buyer := newSigner(t, h)

	require.NoError(invoke(t, h, []codec.Address{seller}, &actions.Create{Metadata: "rock"}))
	_, err := h.Fund(ctx, buyer, 1_000)
	require.NoError(err)

	accounts := []codec.Address{seller, seller, buyer, codec.EmptyAddress}
	require.NoError(invoke(t, h, accounts, &actions.Sell{NewOwner: buyer, Amount: 1_000}))

	record, err := h.Record(ctx, seller)
	require.NoError(err)
	require.Equal(asset.New(buyer, "rock"), record)

	bal, err := h.Balance(ctx, seller)
	require.NoError(err)
	require.Equal(uint64(1_000), bal)
	bal, err = h.Balance(ctx, buyer)
	require.NoError(err)
	require.Zero(bal)

	// The program account was never written.
	_, err = h.Record(ctx, codec.EmptyAddress)
	require.ErrorIs(err, asset.ErrInvalidRecord)
}

func TestSellPaymentFailure(t *testing.T) {
	tests := []struct {
		name    string
		funds   uint64
		program codec.Address
	}{
		{
			name:  "InsufficientFunds",
			funds: 999,
		},
		{
			name:    "WrongProgram",
			funds:   1_000,
			program: codec.Address{0xEE},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctx := context.Background()

			h := newTestHost(t)
			seller := newSigner(t, h)
			buyer := newSigner(t, h)

			require.NoError(invoke(t, h, []codec.Address{seller}, &actions.Create{Metadata: "rock"}))
			_, err := h.Fund(ctx, buyer, tt.funds)
			require.NoError(err)

			accounts := []codec.Address{seller, seller, buyer, tt.program}
			err = invoke(t, h, accounts, &actions.Sell{NewOwner: buyer, Amount: 1_000})
			require.ErrorIs(err, chain.ErrPaymentFailed)

			record, err := h.Record(ctx, seller)
			require.NoError(err)
			require.Equal(asset.New(seller, "rock"), record)

			bal, err := h.Balance(ctx, buyer)
			require.NoError(err)
			require.Equal(tt.funds, bal)
			bal, err = h.Balance(ctx, seller)
			require.NoError(err)
			require.Zero(bal)
		})
	}
}

func TestInvalidInstruction(t *testing.T) {
	h := newTestHost(t)
	a := newSigner(t, h)

	err := h.Invoke(context.Background(), []codec.Address{a}, []byte{4}, nil)
	require.ErrorIs(t, err, chain.ErrInvalidInstructionData)
}

func TestCorruptKeyDoesNotSign(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	h := newTestHost(t)
	addr := codectest.NewRandomAddress()
	mu := state.NewSimpleMutable(h.db)
	require.NoError(storage.SetKey(ctx, mu, addr, []byte("not a key")))
	require.NoError(mu.Commit(ctx))

	sigs, err := h.Sign(ctx, []codec.Address{addr}, []byte{consts.CreateID})
	require.NoError(err)
	require.Empty(sigs)

	err = invoke(t, h, []codec.Address{addr}, &actions.Create{Metadata: "rock"})
	require.ErrorIs(err, chain.ErrMissingSignature)
}

func TestCreateRequiresValidSignature(t *testing.T) {
	data, err := chain.Marshal(&actions.Create{Metadata: "rock"})
	require.NoError(t, err)
	other, err := ed25519.GeneratePrivateKey()
	require.NoError(t, err)

	tests := []struct {
		name string
		sign func(priv ed25519.PrivateKey) ed25519.Signature
	}{
		{
			name: "Tampered",
			sign: func(priv ed25519.PrivateKey) ed25519.Signature {
				sig := ed25519.Sign(data, priv)
				sig[0] ^= 0x1
				return sig
			},
		},
		{
			name: "OtherInstruction",
			sign: func(priv ed25519.PrivateKey) ed25519.Signature {
				otherData, err := chain.Marshal(&actions.Create{Metadata: "paper"})
				require.NoError(t, err)
				return ed25519.Sign(otherData, priv)
			},
		},
		{
			name: "OtherKey",
			sign: func(ed25519.PrivateKey) ed25519.Signature {
				return ed25519.Sign(data, other)
			},
		},
		{
			name: "Empty",
			sign: func(ed25519.PrivateKey) ed25519.Signature {
				return ed25519.Signature{}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctx := context.Background()

			h := newTestHost(t)
			priv, err := ed25519.GeneratePrivateKey()
			require.NoError(err)
			addr := priv.Address()

			sigs := map[codec.Address]ed25519.Signature{addr: tt.sign(priv)}
			err = h.Invoke(ctx, []codec.Address{addr}, data, sigs)
			require.ErrorIs(err, chain.ErrMissingSignature)

			_, err = h.Record(ctx, addr)
			require.ErrorIs(err, asset.ErrInvalidRecord)

			// The same instruction goes through once it is properly signed,
			// whether or not the host holds the key.
			sigs[addr] = ed25519.Sign(data, priv)
			require.NoError(h.Invoke(ctx, []codec.Address{addr}, data, sigs))
			record, err := h.Record(ctx, addr)
			require.NoError(err)
			require.Equal(asset.New(addr, "rock"), record)
		})
	}
}

func TestSignSkipsUnheldKeys(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	h := newTestHost(t)
	a := newSigner(t, h)
	stranger := codectest.NewRandomAddress()
	data := []byte{consts.CreateID, 'x'}

	sigs, err := h.Sign(ctx, []codec.Address{a, stranger, a}, data)
	require.NoError(err)
	require.Len(sigs, 1)
	require.True(ed25519.Verify(data, ed25519.PublicKey(a), sigs[a]))
}

func TestBalanceManagerOutsideInstruction(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	h := newTestHost(t)
	a := codectest.NewRandomAddress()
	_, err := h.Fund(ctx, a, 10)
	require.NoError(err)

	_, err = h.GetBalance(ctx, a)
	require.ErrorIs(err, ErrNotExecuting)
	err = h.TransferBalance(ctx, codec.EmptyAddress, a, codectest.NewRandomAddress(), 1)
	require.ErrorIs(err, chain.ErrPaymentFailed)

	bal, err := h.Balance(ctx, a)
	require.NoError(err)
	require.Equal(uint64(10), bal)
}

func TestKeys(t *testing.T) {
	require := require.New(t)

	h := newTestHost(t)
	a := newSigner(t, h)
	b := newSigner(t, h)

	keys, err := h.Keys()
	require.NoError(err)
	require.ElementsMatch([]codec.Address{a, b}, keys)

	ok, err := storage.HasKey(context.Background(), state.NewReader(h.db), a)
	require.NoError(err)
	require.True(ok)
}
