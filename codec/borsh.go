// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"io"
	"reflect"

	"github.com/near/borsh-go"
)

// Serialize borsh-encodes [value]. Structs must be passed by value: a pointer
// is encoded as an optional and gains a presence byte.
func Serialize[T any](value T) ([]byte, error) {
	b := &bytes.Buffer{}
	if err := SerializeTo(value, b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func SerializeTo[T any](value T, w io.Writer) error {
	if isNil(value) {
		return nil
	}
	return borsh.NewEncoder(w).Encode(value)
}

// Deserialize decodes a borsh value of type T from the front of [data].
// Trailing bytes are not inspected.
func Deserialize[T any](data []byte) (*T, error) {
	result := new(T)
	if err := borsh.Deserialize(result, data); err != nil {
		return nil, err
	}
	return result, nil
}

func isNil[T any](t T) bool {
	v := reflect.ValueOf(t)
	kind := v.Kind()
	// Must be one of these types to be nillable
	return (kind == reflect.Ptr ||
		kind == reflect.Interface ||
		kind == reflect.Slice ||
		kind == reflect.Map ||
		kind == reflect.Chan ||
		kind == reflect.Func) &&
		v.IsNil()
}
