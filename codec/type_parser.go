// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/peterchijioke/solana-smart-contract/consts"
)

type Typed interface {
	GetTypeID() uint8
}

// TypeParser maps a leading type byte to the decoder of the variant that owns
// it. The set of variants is closed once registration is complete.
type TypeParser[T Typed] struct {
	indexToDecoder map[uint8]func([]byte) (T, error)
}

func NewTypeParser[T Typed]() *TypeParser[T] {
	return &TypeParser[T]{
		indexToDecoder: map[uint8]func([]byte) (T, error){},
	}
}

// Register adds [f] as the decoder for the type ID reported by [instance].
func (p *TypeParser[T]) Register(instance T, f func([]byte) (T, error)) error {
	if len(p.indexToDecoder) == int(consts.MaxUint8)+1 {
		return ErrTooManyItems
	}
	typeID := instance.GetTypeID()
	if _, ok := p.indexToDecoder[typeID]; ok {
		return fmt.Errorf("%w: type %d", ErrDuplicateItem, typeID)
	}
	p.indexToDecoder[typeID] = f
	return nil
}

func (p *TypeParser[T]) LookupIndex(index uint8) (func([]byte) (T, error), bool) {
	f, ok := p.indexToDecoder[index]
	return f, ok
}

// Unmarshal splits [data] into its type byte and payload and decodes the
// payload with the registered decoder.
func (p *TypeParser[T]) Unmarshal(data []byte) (T, error) {
	var empty T
	if len(data) < consts.ByteLen {
		return empty, ErrInsufficientLength
	}
	f, ok := p.LookupIndex(data[0])
	if !ok {
		return empty, fmt.Errorf("%w: type %d", ErrUnknownItem, data[0])
	}
	return f(data[consts.ByteLen:])
}
