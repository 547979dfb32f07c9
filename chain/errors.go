// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInstructionData = errors.New("invalid instruction data")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrPaymentFailed          = errors.New("payment failed")

	ErrMissingSignature = fmt.Errorf("%w: asset account must be signer", ErrUnauthorized)
	ErrNotOwner         = fmt.Errorf("%w: account does not own this asset", ErrUnauthorized)
	ErrSellerNotOwner   = fmt.Errorf("%w: seller account does not own this asset", ErrUnauthorized)
)
