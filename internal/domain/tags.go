package domain

import (
	"errors"
	"fmt"
)

var ErrVaultNotFound = errors.New("vault not found")

// LockReason explains why a vault was locked. The set is closed: anything
// outside it is a validation error, never stored.
type LockReason string

const (
	LockReasonIdle         LockReason = "idle"
	LockReasonBackgrounded LockReason = "backgrounded"
	LockReasonLogout       LockReason = "logout"
	LockReasonForce        LockReason = "force"
	LockReasonRotation     LockReason = "rotation"
	LockReasonAdmin        LockReason = "admin"
)

var lockReasons = map[LockReason]struct{}{
	LockReasonIdle:         {},
	LockReasonBackgrounded: {},
	LockReasonLogout:       {},
	LockReasonForce:        {},
	LockReasonRotation:     {},
	LockReasonAdmin:        {},
}

func ParseLockReason(s string) (LockReason, error) {
	reason := LockReason(s)
	if _, ok := lockReasons[reason]; !ok {
		return "", fmt.Errorf("unknown lock reason %q", s)
	}
	return reason, nil
}

func (r LockReason) String() string {
	return string(r)
}

type TransactionKind string

const (
	TransactionEarn   TransactionKind = "earn"
	TransactionSpend  TransactionKind = "spend"
	TransactionRefund TransactionKind = "refund"
)

func ParseTransactionKind(s string) (TransactionKind, error) {
	switch kind := TransactionKind(s); kind {
	case TransactionEarn, TransactionSpend, TransactionRefund:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown transaction kind %q", s)
	}
}

func (k TransactionKind) String() string {
	return string(k)
}
