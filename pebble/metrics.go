// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "pebble"

	diskUsageInterval = 10 * time.Second

	getOp    = "get"
	putOp    = "put"
	deleteOp = "delete"
	iterOp   = "iterate"
)

type metrics struct {
	ops        *prometheus.CounterVec
	misses     prometheus.Counter
	getLatency metric.Averager

	compactions       *prometheus.CounterVec
	activeCompactions prometheus.Gauge

	diskUsage prometheus.Gauge
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	getLatency, err := metric.NewAverager(
		"",
		"pebble_read_latency",
		"time spent waiting for db get",
		r,
	)
	if err != nil {
		return nil, nil, err
	}
	m := &metrics{
		getLatency: getLatency,
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ops",
			Help:      "number of keys touched, by operation",
		}, []string{"op"}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "misses",
			Help:      "number of gets for absent keys",
		}),
		compactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compactions",
			Help:      "number of compactions started, by input level",
		}, []string{"level"}),
		activeCompactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_compactions",
			Help:      "number of running compactions",
		}),
		diskUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "disk_usage",
			Help:      "bytes on disk used by tables and WAL",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.ops),
		r.Register(m.misses),
		r.Register(m.compactions),
		r.Register(m.activeCompactions),
		r.Register(m.diskUsage),
	)
	return r, m, errs.Err
}

func (m *metrics) observe(op string, n int) {
	m.ops.WithLabelValues(op).Add(float64(n))
}

func (db *Database) onCompactionBegin(info pebble.CompactionInfo) {
	db.metrics.activeCompactions.Inc()
	level := "other"
	if len(info.Input) > 0 && info.Input[0].Level == 0 {
		level = "l0"
	}
	db.metrics.compactions.WithLabelValues(level).Inc()
}

func (db *Database) onCompactionEnd(pebble.CompactionInfo) {
	db.metrics.activeCompactions.Dec()
}

// trackDiskUsage samples the on-disk footprint until the database closes.
func (db *Database) trackDiskUsage() {
	t := time.NewTicker(diskUsageInterval)
	defer t.Stop()

	for {
		db.metrics.diskUsage.Set(float64(db.db.Metrics().DiskSpaceUsage()))
		select {
		case <-t.C:
		case <-db.closing:
			return
		}
	}
}
