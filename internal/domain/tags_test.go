package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLockReason(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  LockReason
		expectErr bool
	}{
		{name: "idle", input: "idle", expected: LockReasonIdle},
		{name: "backgrounded", input: "backgrounded", expected: LockReasonBackgrounded},
		{name: "logout", input: "logout", expected: LockReasonLogout},
		{name: "force", input: "force", expected: LockReasonForce},
		{name: "rotation", input: "rotation", expected: LockReasonRotation},
		{name: "admin", input: "admin", expected: LockReasonAdmin},
		{name: "unknown value", input: "coffee-break", expectErr: true},
		{name: "empty string", input: "", expectErr: true},
		{name: "wrong case", input: "Idle", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, err := ParseLockReason(tt.input)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Empty(t, reason)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, reason)
				assert.Equal(t, tt.input, reason.String())
			}
		})
	}
}

func TestParseTransactionKind(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  TransactionKind
		expectErr bool
	}{
		{name: "earn", input: "earn", expected: TransactionEarn},
		{name: "spend", input: "spend", expected: TransactionSpend},
		{name: "refund", input: "refund", expected: TransactionRefund},
		{name: "unknown value", input: "steal", expectErr: true},
		{name: "empty string", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseTransactionKind(tt.input)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Empty(t, kind)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, kind)
				assert.Equal(t, tt.input, kind.String())
			}
		})
	}
}

func TestVaultState_Locked(t *testing.T) {
	now := time.Now()
	reason := LockReasonIdle

	assert.False(t, VaultState{}.Locked())
	assert.True(t, VaultState{LockedAt: &now, LockReason: &reason}.Locked())
}

func TestMarketItem_Purchasable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		item     MarketItem
		expected bool
	}{
		{
			name:     "available with no window",
			item:     MarketItem{Available: true},
			expected: true,
		},
		{
			name:     "flagged unavailable",
			item:     MarketItem{Available: false},
			expected: false,
		},
		{
			name:     "inside the window",
			item:     MarketItem{Available: true, AvailableFrom: &past, AvailableUntil: &future},
			expected: true,
		},
		{
			name:     "before the window opens",
			item:     MarketItem{Available: true, AvailableFrom: &future},
			expected: false,
		},
		{
			name:     "after the window closes",
			item:     MarketItem{Available: true, AvailableUntil: &past},
			expected: false,
		},
		{
			name:     "window closes exactly now",
			item:     MarketItem{Available: true, AvailableUntil: &now},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.item.Purchasable(now))
		})
	}
}
