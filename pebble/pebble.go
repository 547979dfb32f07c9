// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/units"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	_ database.KeyValueReader        = (*Database)(nil)
	_ database.KeyValueWriterDeleter = (*Database)(nil)
	_ database.Batcher               = (*Database)(nil)
	_ database.Iteratee              = (*Database)(nil)
)

type Config struct {
	CacheSize                   int64  `json:"cacheSize"`
	BytesPerSync                int    `json:"bytesPerSync"`
	WALBytesPerSync             int    `json:"walBytesPerSync"`
	MemTableStopWritesThreshold int    `json:"memTableStopWritesThreshold"`
	MemTableSize                uint64 `json:"memTableSize"`
	MaxOpenFiles                int    `json:"maxOpenFiles"`
	ConcurrentCompactions       int    `json:"concurrentCompactions"`
	Sync                        bool   `json:"sync"`
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:                   64 * units.MiB,
		BytesPerSync:                units.MiB,
		WALBytesPerSync:             units.MiB,
		MemTableStopWritesThreshold: 8,
		MemTableSize:                16 * units.MiB,
		MaxOpenFiles:                1_024,
		ConcurrentCompactions:       1,
		Sync:                        true,
	}
}

// Database is a [database.KeyValueReader] and [database.KeyValueWriterDeleter]
// backed by pebble. Misses are reported as [database.ErrNotFound].
type Database struct {
	db      *pebble.DB
	metrics *metrics

	writeOptions *pebble.WriteOptions

	lock    sync.RWMutex
	closed  bool
	closing chan struct{}
	done    sync.WaitGroup
}

// New opens (or creates) a pebble database at [path]. The returned registry
// holds the database metrics.
func New(path string, cfg Config) (*Database, *prometheus.Registry, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}

	cache := pebble.NewCache(cfg.CacheSize)
	defer cache.Unref()

	d := &Database{
		metrics:      metrics,
		writeOptions: pebble.NoSync,
		closing:      make(chan struct{}),
	}
	if cfg.Sync {
		d.writeOptions = pebble.Sync
	}
	opts := &pebble.Options{
		Cache:                       cache,
		BytesPerSync:                cfg.BytesPerSync,
		WALBytesPerSync:             cfg.WALBytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MemTableSize:                cfg.MemTableSize,
		MaxOpenFiles:                cfg.MaxOpenFiles,
		MaxConcurrentCompactions:    func() int { return cfg.ConcurrentCompactions },
		EventListener: &pebble.EventListener{
			CompactionBegin: d.onCompactionBegin,
			CompactionEnd:   d.onCompactionEnd,
		},
	}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, nil, err
	}
	d.db = db

	d.done.Add(1)
	go func() {
		defer d.done.Done()
		d.trackDiskUsage()
	}()
	return d, registry, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	_, err := db.Get(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, database.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (db *Database) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return nil, database.ErrClosed
	}

	start := time.Now()
	defer func() {
		db.metrics.observe(getOp, 1)
		db.metrics.getLatency.Observe(float64(time.Since(start)))
	}()

	v, closer, err := db.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		db.metrics.misses.Inc()
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// [v] is only valid until [closer] is closed.
	value := slices.Clone(v)
	return value, closer.Close()
}

func (db *Database) Put(key []byte, value []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	if err := db.db.Set(key, value, db.writeOptions); err != nil {
		return err
	}
	db.metrics.observe(putOp, 1)
	return nil
}

func (db *Database) Delete(key []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	if err := db.db.Delete(key, db.writeOptions); err != nil {
		return err
	}
	db.metrics.observe(deleteOp, 1)
	return nil
}

func (db *Database) NewBatch() database.Batch {
	return &batch{db: db}
}

func (db *Database) Close() error {
	db.lock.Lock()
	if db.closed {
		db.lock.Unlock()
		return database.ErrClosed
	}
	db.closed = true
	close(db.closing)
	db.lock.Unlock()

	db.done.Wait()
	return db.db.Close()
}
