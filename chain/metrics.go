// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	actionsExecuted     *prometheus.CounterVec
	actionsFailed       *prometheus.CounterVec
	invalidInstructions prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		actionsExecuted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "asset",
			Name:      "actions_executed",
			Help:      "number of actions applied to a slot",
		}, []string{"action"}),
		actionsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "asset",
			Name:      "actions_failed",
			Help:      "number of actions rejected during execution",
		}, []string{"action"}),
		invalidInstructions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "asset",
			Name:      "invalid_instructions",
			Help:      "number of instructions that could not be parsed",
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.actionsExecuted),
		r.Register(m.actionsFailed),
		r.Register(m.invalidInstructions),
	)
	return m, errs.Err
}
