// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"github.com/ava-labs/avalanchego/database"
)

var _ database.Batch = (*batch)(nil)

// batch collects operations in memory and applies them to pebble as one
// atomic commit on [Write].
type batch struct {
	database.BatchOps

	db *Database
}

func (b *batch) Write() error {
	b.db.lock.RLock()
	defer b.db.lock.RUnlock()

	if b.db.closed {
		return database.ErrClosed
	}

	pb := b.db.db.NewBatch()
	defer pb.Close()

	var deletes int
	for _, op := range b.Ops {
		var err error
		if op.Delete {
			deletes++
			err = pb.Delete(op.Key, nil)
		} else {
			err = pb.Set(op.Key, op.Value, nil)
		}
		if err != nil {
			return err
		}
	}
	if err := pb.Commit(b.db.writeOptions); err != nil {
		return err
	}
	b.db.metrics.observe(putOp, len(b.Ops)-deletes)
	b.db.metrics.observe(deleteOp, deletes)
	return nil
}

func (b *batch) Inner() database.Batch {
	return b
}
