// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/maybe"
)

var _ Mutable = (*SimpleMutable)(nil)

// SimpleMutable buffers changes on top of [Database]. Nothing reaches the
// database until [Commit] is called, so dropping a SimpleMutable discards
// every write made through it.
type SimpleMutable struct {
	db Database

	changes map[string]maybe.Maybe[[]byte]
}

func NewSimpleMutable(db Database) *SimpleMutable {
	return &SimpleMutable{db, make(map[string]maybe.Maybe[[]byte])}
}

func (s *SimpleMutable) GetValue(_ context.Context, k []byte) ([]byte, error) {
	if v, ok := s.changes[string(k)]; ok {
		if v.IsNothing() {
			return nil, database.ErrNotFound
		}
		return slices.Clone(v.Value()), nil
	}
	return s.db.Get(k)
}

func (s *SimpleMutable) Insert(_ context.Context, k []byte, v []byte) error {
	s.changes[string(k)] = maybe.Some(slices.Clone(v))
	return nil
}

func (s *SimpleMutable) Remove(_ context.Context, k []byte) error {
	s.changes[string(k)] = maybe.Nothing[[]byte]()
	return nil
}

// Len is the number of pending changes.
func (s *SimpleMutable) Len() int {
	return len(s.changes)
}

// Commit writes all pending changes in a single batch and resets the
// overlay.
func (s *SimpleMutable) Commit(context.Context) error {
	keys := make([]string, 0, len(s.changes))
	for k := range s.changes {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	batch := s.db.NewBatch()
	for _, k := range keys {
		v := s.changes[k]
		if v.IsNothing() {
			if err := batch.Delete([]byte(k)); err != nil {
				return err
			}
			continue
		}
		if err := batch.Put([]byte(k), v.Value()); err != nil {
			return err
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	clear(s.changes)
	return nil
}
