// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package asset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRecord is returned when a slot does not hold a structurally
	// valid record. An uninitialized slot decodes to this error.
	ErrInvalidRecord = errors.New("invalid asset record")
	ErrSlotTooSmall  = errors.New("slot too small for asset record")
	ErrEmptyOwner    = errors.New("asset owner is empty")

	ErrInvalidMetadata = fmt.Errorf("%w: metadata is not valid UTF-8", ErrInvalidRecord)
)
