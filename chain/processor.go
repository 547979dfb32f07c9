// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/peterchijioke/solana-smart-contract/account"
	"github.com/peterchijioke/solana-smart-contract/codec"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// Processor is the entrypoint the host invokes with raw instruction bytes. It
// keeps no state between calls.
type Processor struct {
	log      logging.Logger
	tracer   oteltrace.Tracer
	parser   *codec.TypeParser[Action]
	balances BalanceManager
	metrics  *metrics
}

func NewProcessor(
	log logging.Logger,
	tracer oteltrace.Tracer,
	parser *codec.TypeParser[Action],
	balances BalanceManager,
	registerer prometheus.Registerer,
) (*Processor, error) {
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	return &Processor{
		log:      log,
		tracer:   tracer,
		parser:   parser,
		balances: balances,
		metrics:  m,
	}, nil
}

// Parse decodes [data] into an action without executing it. Every failure
// wraps [ErrInvalidInstructionData].
func (p *Processor) Parse(data []byte) (Action, error) {
	action, err := p.parser.Unmarshal(data)
	if err == nil {
		return action, nil
	}
	if errors.Is(err, ErrInvalidInstructionData) {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %w", ErrInvalidInstructionData, err)
}

// Process parses [data] and executes the resulting action against [accounts].
func (p *Processor) Process(ctx context.Context, accounts []*account.Info, data []byte) error {
	ctx, span := p.tracer.Start(ctx, "Processor.Process")
	defer span.End()

	action, err := p.Parse(data)
	if err != nil {
		p.metrics.invalidInstructions.Inc()
		p.log.Debug("dropping invalid instruction",
			zap.Int("size", len(data)),
			zap.Error(err),
		)
		return err
	}
	return p.Execute(ctx, action, accounts)
}

// Execute runs an already parsed action.
func (p *Processor) Execute(ctx context.Context, action Action, accounts []*account.Info) error {
	ctx, span := p.tracer.Start(ctx, "Processor.Execute")
	defer span.End()

	name := action.Name()
	span.SetAttributes(
		attribute.String("action", name),
		attribute.Int("accounts", len(accounts)),
	)

	if err := action.Execute(ctx, accounts, p.balances); err != nil {
		p.metrics.actionsFailed.WithLabelValues(name).Inc()
		p.log.Info("action failed",
			zap.String("action", name),
			zap.Error(err),
		)
		return err
	}
	p.metrics.actionsExecuted.WithLabelValues(name).Inc()
	p.log.Debug("action executed",
		zap.String("action", name),
		zap.Int("accounts", len(accounts)),
	)
	return nil
}
