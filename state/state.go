// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
)

type Immutable interface {
	GetValue(ctx context.Context, key []byte) (value []byte, err error)
}

type Mutable interface {
	Immutable

	Insert(ctx context.Context, key []byte, value []byte) error
	Remove(ctx context.Context, key []byte) error
}

// Database is the durable store a [SimpleMutable] commits into. Both
// memdb and pebble satisfy it.
type Database interface {
	database.KeyValueReader
	database.KeyValueWriterDeleter
	database.Batcher
}

// NewReader exposes [db] as an [Immutable].
func NewReader(db database.KeyValueReader) Immutable {
	return &reader{db}
}

type reader struct {
	db database.KeyValueReader
}

func (r *reader) GetValue(_ context.Context, key []byte) ([]byte, error) {
	return r.db.Get(key)
}
