package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionWithdrawal(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{WithdrawalRequested, WithdrawalApproved, true},
		{WithdrawalRequested, WithdrawalCompleted, true},
		{WithdrawalRequested, WithdrawalRejected, true},
		{WithdrawalApproved, WithdrawalProcessing, true},
		{WithdrawalApproved, WithdrawalCompleted, true},
		{WithdrawalApproved, WithdrawalRejected, true},
		{WithdrawalProcessing, WithdrawalCompleted, true},

		{WithdrawalRequested, WithdrawalProcessing, false},
		{WithdrawalProcessing, WithdrawalRejected, false},
		{WithdrawalCompleted, WithdrawalRejected, false},
		{WithdrawalCompleted, WithdrawalApproved, false},
		{WithdrawalRejected, WithdrawalCompleted, false},
		{WithdrawalRejected, WithdrawalApproved, false},
		{WithdrawalRequested, WithdrawalRequested, false},
		{"bogus", WithdrawalApproved, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransitionWithdrawal(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
