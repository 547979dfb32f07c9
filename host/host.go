// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package host runs instructions the way the hosting ledger would: it
// resolves account handles from storage, lends their slots to the processor
// and persists the result only when the instruction succeeds.
package host

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/peterchijioke/solana-smart-contract/account"
	"github.com/peterchijioke/solana-smart-contract/asset"
	"github.com/peterchijioke/solana-smart-contract/chain"
	"github.com/peterchijioke/solana-smart-contract/codec"
	"github.com/peterchijioke/solana-smart-contract/config"
	"github.com/peterchijioke/solana-smart-contract/crypto/ed25519"
	"github.com/peterchijioke/solana-smart-contract/registry"
	"github.com/peterchijioke/solana-smart-contract/state"
	"github.com/peterchijioke/solana-smart-contract/storage"

	oteltrace "go.opentelemetry.io/otel/trace"
)

var _ chain.BalanceManager = (*Host)(nil)

var ErrNotExecuting = errors.New("no instruction is executing")

type Database interface {
	state.Database
	database.Iteratee
}

type Host struct {
	log    logging.Logger
	tracer oteltrace.Tracer
	db     Database

	slotSize int
	program  codec.Address

	processor *chain.Processor

	// [current] is the overlay of the instruction being executed. Balance
	// movements requested by the processor land in it.
	lock    sync.Mutex
	current *state.SimpleMutable
}

func New(
	log logging.Logger,
	tracer oteltrace.Tracer,
	db Database,
	cfg *config.Config,
	registerer prometheus.Registerer,
) (*Host, error) {
	h := &Host{
		log:      log,
		tracer:   tracer,
		db:       db,
		slotSize: cfg.SlotSize,
		program:  cfg.TransferProgram,
	}
	processor, err := chain.NewProcessor(log, tracer, registry.Action, h, registerer)
	if err != nil {
		return nil, err
	}
	h.processor = processor
	return h, nil
}

// Invoke executes [data] against the accounts named by [keys]. An account is
// a signer when [sigs] carries a signature over [data] that verifies against
// its identity. Nothing is written unless the instruction succeeds.
func (h *Host) Invoke(
	ctx context.Context,
	keys []codec.Address,
	data []byte,
	sigs map[codec.Address]ed25519.Signature,
) error {
	ctx, span := h.tracer.Start(ctx, "Host.Invoke")
	defer span.End()

	h.lock.Lock()
	defer h.lock.Unlock()

	mu := state.NewSimpleMutable(h.db)
	h.current = mu
	defer func() {
		h.current = nil
	}()

	// The same key may appear more than once. Every occurrence shares one
	// handle so writes through any of them are visible to the others.
	var (
		handles  = make(map[codec.Address]*account.Info, len(keys))
		original = make(map[codec.Address][]byte, len(keys))
		accounts = make([]*account.Info, 0, len(keys))
	)
	for _, key := range keys {
		if info, ok := handles[key]; ok {
			accounts = append(accounts, info)
			continue
		}
		slot, ok, err := storage.GetSlot(ctx, mu, key)
		if err != nil {
			return err
		}
		if !ok {
			slot = make([]byte, h.slotSize)
		}
		info := account.New(key, slot, h.verify(key, data, sigs))
		handles[key] = info
		original[key] = slices.Clone(slot)
		accounts = append(accounts, info)
	}

	if err := h.processor.Process(ctx, accounts, data); err != nil {
		return err
	}

	for key, info := range handles {
		if bytes.Equal(original[key], info.Data) {
			continue
		}
		if err := storage.SetSlot(ctx, mu, key, info.Data); err != nil {
			return err
		}
	}
	changes := mu.Len()
	if err := mu.Commit(ctx); err != nil {
		return err
	}
	h.log.Debug("committed instruction",
		zap.Int("accounts", len(accounts)),
		zap.Int("changes", changes),
	)
	return nil
}

func (h *Host) verify(addr codec.Address, data []byte, sigs map[codec.Address]ed25519.Signature) bool {
	sig, ok := sigs[addr]
	if !ok {
		return false
	}
	if !ed25519.Verify(data, ed25519.PublicKey(addr), sig) {
		h.log.Info("rejected signature",
			zap.Stringer("account", addr),
		)
		return false
	}
	return true
}

// Sign signs [data] with every held key among [keys]. Accounts whose key is
// not held, or is corrupt, are left out.
func (h *Host) Sign(ctx context.Context, keys []codec.Address, data []byte) (map[codec.Address]ed25519.Signature, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	im := state.NewReader(h.db)
	sigs := make(map[codec.Address]ed25519.Signature, len(keys))
	for _, addr := range keys {
		if _, ok := sigs[addr]; ok {
			continue
		}
		priv, ok, err := h.heldKey(ctx, im, addr)
		if err != nil {
			return nil, err
		}
		if ok {
			sigs[addr] = ed25519.Sign(data, priv)
		}
	}
	return sigs, nil
}

func (h *Host) heldKey(ctx context.Context, im state.Immutable, addr codec.Address) (ed25519.PrivateKey, bool, error) {
	held, err := storage.HasKey(ctx, im, addr)
	if err != nil || !held {
		return ed25519.EmptyPrivateKey, false, err
	}
	b, err := storage.GetKey(ctx, im, addr)
	if err != nil {
		return ed25519.EmptyPrivateKey, false, err
	}
	priv, err := ed25519.ToPrivateKey(b)
	if err != nil || priv.Address() != addr {
		h.log.Warn("ignoring corrupt key",
			zap.Stringer("account", addr),
			zap.Error(err),
		)
		return ed25519.EmptyPrivateKey, false, nil
	}
	return priv, true, nil
}

// GetBalance reads through the overlay of the executing instruction. It
// must only be called by the processor, which runs with [h.lock] held. Use
// [Balance] everywhere else.
func (h *Host) GetBalance(ctx context.Context, addr codec.Address) (uint64, error) {
	if h.current == nil {
		return 0, ErrNotExecuting
	}
	return storage.GetBalance(ctx, h.current, addr)
}

// Balance returns the committed balance of [addr].
func (h *Host) Balance(ctx context.Context, addr codec.Address) (uint64, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	return storage.GetBalance(ctx, state.NewReader(h.db), addr)
}

// TransferBalance is only reachable while an instruction is executing, with
// [h.lock] held.
func (h *Host) TransferBalance(
	ctx context.Context,
	program codec.Address,
	from codec.Address,
	to codec.Address,
	amount uint64,
) error {
	if h.current == nil {
		return fmt.Errorf("%w: %w", chain.ErrPaymentFailed, ErrNotExecuting)
	}
	if err := storage.NewLedger(h.program, h.current).TransferBalance(ctx, program, from, to, amount); err != nil {
		return err
	}
	h.log.Debug("transferred balance",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Uint64("amount", amount),
	)
	return nil
}

// Fund credits [amount] to [addr] outside of any instruction.
func (h *Host) Fund(ctx context.Context, addr codec.Address, amount uint64) (uint64, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	mu := state.NewSimpleMutable(h.db)
	bal, err := storage.AddBalance(ctx, mu, addr, amount)
	if err != nil {
		return 0, err
	}
	if err := mu.Commit(ctx); err != nil {
		return 0, err
	}
	h.log.Info("funded account",
		zap.Stringer("account", addr),
		zap.Uint64("amount", amount),
		zap.Uint64("balance", bal),
	)
	return bal, nil
}

// Record decodes the record held by the slot of [addr].
func (h *Host) Record(ctx context.Context, addr codec.Address) (*asset.Record, error) {
	slot, ok, err := storage.GetSlot(ctx, state.NewReader(h.db), addr)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: no slot allocated for %s", asset.ErrInvalidRecord, addr)
	}
	return asset.Unmarshal(slot)
}

// AddKey stores [priv] so that [Sign] can sign for its address.
func (h *Host) AddKey(ctx context.Context, priv ed25519.PrivateKey) (codec.Address, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	addr := priv.Address()
	mu := state.NewSimpleMutable(h.db)
	if err := storage.SetKey(ctx, mu, addr, priv[:]); err != nil {
		return codec.EmptyAddress, err
	}
	return addr, mu.Commit(ctx)
}

func (h *Host) Keys() ([]codec.Address, error) {
	return storage.ListKeys(h.db)
}
