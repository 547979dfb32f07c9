// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"bytes"
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
)

var _ database.Iterator = (*iterator)(nil)

type iterator struct {
	db   *Database
	iter *pebble.Iterator

	started bool
	key     []byte
	value   []byte
	err     error
}

func (db *Database) NewIterator() database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, nil)
}

func (db *Database) NewIteratorWithStart(start []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(start, nil)
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, prefix)
}

// NewIteratorWithStartAndPrefix iterates over keys that begin with [prefix]
// and are >= [start], in ascending order.
func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return &iterator{db: db, err: database.ErrClosed}
	}
	it, err := db.db.NewIter(keyRange(start, prefix))
	if err != nil {
		return &iterator{db: db, err: err}
	}
	return &iterator{db: db, iter: it}
}

func (it *iterator) Next() bool {
	if it.err != nil || it.iter == nil {
		return false
	}

	it.db.lock.RLock()
	closed := it.db.closed
	it.db.lock.RUnlock()
	if closed {
		it.err = database.ErrClosed
		it.key, it.value = nil, nil
		return false
	}

	var ok bool
	if it.started {
		ok = it.iter.Next()
	} else {
		ok = it.iter.First()
		it.started = true
	}
	if !ok {
		it.err = it.iter.Error()
		it.key, it.value = nil, nil
		return false
	}
	it.key = slices.Clone(it.iter.Key())
	it.value = slices.Clone(it.iter.Value())
	it.db.metrics.observe(iterOp, 1)
	return true
}

func (it *iterator) Error() error {
	return it.err
}

func (it *iterator) Key() []byte {
	return it.key
}

func (it *iterator) Value() []byte {
	return it.value
}

func (it *iterator) Release() {
	if it.iter == nil {
		return
	}
	if err := it.iter.Close(); err != nil && it.err == nil {
		it.err = err
	}
	it.iter = nil
}

func keyRange(start, prefix []byte) *pebble.IterOptions {
	opts := &pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	}
	if bytes.Compare(start, prefix) > 0 {
		opts.LowerBound = start
	}
	return opts
}

// prefixUpperBound returns the smallest key greater than every key starting
// with [prefix], or nil if there is none.
func prefixUpperBound(prefix []byte) []byte {
	upper := slices.Clone(prefix)
	for i := len(upper) - 1; i >= 0; i-- {
		if upper[i] < 0xFF {
			upper[i]++
			return upper[:i+1]
		}
	}
	return nil
}
