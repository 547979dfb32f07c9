// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peterchijioke/solana-smart-contract/account"
	"github.com/peterchijioke/solana-smart-contract/chain"
)

// ActionTest is a single parameterized test. It calls Execute on the action
// with the passed accounts and checks that all assertions pass.
type ActionTest struct {
	Name string

	Action   chain.Action
	Accounts []*account.Info
	Balances chain.BalanceManager

	ExpectedErr error

	Assertion func(context.Context, *testing.T, []*account.Info)
}

// Run executes the [ActionTest]. When an error is expected every slot must be
// left exactly as it was.
func (test *ActionTest) Run(ctx context.Context, t *testing.T) {
	t.Run(test.Name, func(t *testing.T) {
		require := require.New(t)

		before := snapshot(test.Accounts)
		err := test.Action.Execute(ctx, test.Accounts, test.Balances)
		require.ErrorIs(err, test.ExpectedErr)
		if test.ExpectedErr != nil {
			require.Equal(before, snapshot(test.Accounts))
		}

		if test.Assertion != nil {
			test.Assertion(ctx, t, test.Accounts)
		}
	})
}

func snapshot(accounts []*account.Info) [][]byte {
	slots := make([][]byte, len(accounts))
	for i, a := range accounts {
		slots[i] = append([]byte(nil), a.Data...)
	}
	return slots
}
