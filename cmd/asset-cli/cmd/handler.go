// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/peterchijioke/solana-smart-contract/asset"
	"github.com/peterchijioke/solana-smart-contract/chain"
	"github.com/peterchijioke/solana-smart-contract/cli/prompt"
	"github.com/peterchijioke/solana-smart-contract/codec"
	"github.com/peterchijioke/solana-smart-contract/config"
	"github.com/peterchijioke/solana-smart-contract/host"
	"github.com/peterchijioke/solana-smart-contract/pebble"
	"github.com/peterchijioke/solana-smart-contract/trace"
	"github.com/peterchijioke/solana-smart-contract/utils"

	avatrace "github.com/ava-labs/avalanchego/trace"
)

const (
	logFile     = "asset-cli.log"
	logMaxSize  = 8 // megabytes
	logMaxFiles = 3
)

type Handler struct {
	cfg *config.Config

	log    logging.Logger
	tracer avatrace.Tracer
	db     *pebble.Database
	h      *host.Host
}

func NewHandler(cfg *config.Config) (*Handler, error) {
	dir, err := utils.InitDirectory(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg.LogLevel, dir)
	tracer, err := trace.New(&cfg.Trace)
	if err != nil {
		return nil, err
	}
	db, registry, err := pebble.New(filepath.Join(dir, "db"), cfg.Pebble)
	if err != nil {
		return nil, err
	}
	h, err := host.New(log, tracer, db, cfg, registry)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Handler{
		cfg:    cfg,
		log:    log,
		tracer: tracer,
		db:     db,
		h:      h,
	}, nil
}

func newLogger(level logging.Level, dir string) logging.Logger {
	console := logging.NewWrappedCore(level, os.Stderr, logging.Colors.ConsoleEncoder())
	file := logging.NewWrappedCore(level, &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFile),
		MaxSize:    logMaxSize,
		MaxBackups: logMaxFiles,
	}, logging.JSON.FileEncoder())
	return logging.NewLogger("", console, file)
}

func (h *Handler) Close() error {
	if h == nil {
		return nil
	}
	errs := wrappers.Errs{}
	errs.Add(
		h.db.Close(),
		h.tracer.Close(),
	)
	h.log.Stop()
	return errs.Err
}

func (h *Handler) Host() *host.Host {
	return h.h
}

// maxMetadata is the longest metadata that still fits a freshly allocated
// slot.
func (h *Handler) maxMetadata() int {
	return h.cfg.SlotSize - asset.HeaderLen
}

// Invoke submits [action] with [keys] as its accounts, signed by every held
// key among them.
func (h *Handler) Invoke(ctx context.Context, keys []codec.Address, action chain.Action) error {
	data, err := chain.Marshal(action)
	if err != nil {
		return err
	}
	sigs, err := h.h.Sign(ctx, keys, data)
	if err != nil {
		return err
	}
	if err := h.h.Invoke(ctx, keys, data, sigs); err != nil {
		return err
	}
	utils.Outf("{{green}}%s succeeded{{/}}\n", action.Name())
	return nil
}

// heldKey returns the address at [args][i] or asks the user to pick one of
// the held keys.
func (h *Handler) heldKey(args []string, i int, label string) (codec.Address, error) {
	if len(args) > i {
		return prompt.ParseAddress(args[i])
	}
	keys, err := h.h.Keys()
	if err != nil {
		return codec.EmptyAddress, err
	}
	return prompt.Key(label, keys)
}

func address(args []string, i int, label string) (codec.Address, error) {
	if len(args) > i {
		return prompt.ParseAddress(args[i])
	}
	return prompt.Address(label)
}

func amount(args []string, i int, label string) (uint64, error) {
	if len(args) > i {
		return prompt.ParseAmount(args[i])
	}
	return prompt.Amount(label)
}

func (h *Handler) metadata(args []string, i int, label string) (string, error) {
	if len(args) > i {
		return args[i], prompt.CheckMetadata(args[i], h.maxMetadata())
	}
	return prompt.Metadata(label, h.maxMetadata())
}
