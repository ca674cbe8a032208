package vaultrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/vaultmart/vaultmart/internal/domain"
	"github.com/vaultmart/vaultmart/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_EnsureVault(t *testing.T) {
	repo, mock, _ := NewMock(t)

	now := time.Now()
	query := regexp.QuoteMeta(`
        INSERT INTO vaults (user_id)
        VALUES ($1)
        ON CONFLICT (user_id) DO UPDATE
        SET updated_at = NOW()
        RETURNING id, user_id, locked_at, lock_reason, created_at, updated_at
    `)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Vault
	}{
		{
			name:   "Provisions new unlocked vault",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "locked_at", "lock_reason", "created_at", "updated_at"}).
					AddRow(1, 1, (*time.Time)(nil), (*string)(nil), now, now)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Vault{
				ID:        1,
				UserID:    1,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			name:   "Existing locked vault keeps its lock",
			userID: 2,
			mockSetup: func() {
				reason := "idle"
				rows := pgxmock.NewRows([]string{"id", "user_id", "locked_at", "lock_reason", "created_at", "updated_at"}).
					AddRow(2, 2, &now, &reason, now, now)
				mock.ExpectQuery(query).WithArgs(2).WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Vault{
				ID:         2,
				UserID:     2,
				LockedAt:   &now,
				LockReason: lockReasonPtr(domain.LockReasonIdle),
				CreatedAt:  now,
				UpdatedAt:  now,
			},
		},
		{
			name:   "Database error",
			userID: 3,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(3).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.EnsureVault(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetVaultState(t *testing.T) {
	repo, mock, _ := NewMock(t)

	now := time.Now()
	query := regexp.QuoteMeta(`
        SELECT locked_at, lock_reason
        FROM vaults
        WHERE user_id = $1
    `)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.VaultState
	}{
		{
			name:   "Locked vault returns timestamp and reason",
			userID: 1,
			mockSetup: func() {
				reason := "logout"
				rows := pgxmock.NewRows([]string{"locked_at", "lock_reason"}).
					AddRow(&now, &reason)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.VaultState{
				LockedAt:   &now,
				LockReason: lockReasonPtr(domain.LockReasonLogout),
			},
		},
		{
			name:   "Unlocked vault returns empty state",
			userID: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"locked_at", "lock_reason"}).
					AddRow((*time.Time)(nil), (*string)(nil))
				mock.ExpectQuery(query).WithArgs(2).WillReturnRows(rows)
			},
			expectErr: false,
			result:    &domain.VaultState{},
		},
		{
			name:   "Missing vault returns nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetVaultState(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_LockVault(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE vaults
        SET locked_at = NOW(), lock_reason = $2, updated_at = NOW()
        WHERE user_id = $1
    `)

	tests := []struct {
		name        string
		userID      int
		reason      domain.LockReason
		mockSetup   func()
		expectedErr error
	}{
		{
			name:   "Locks the vault",
			userID: 1,
			reason: domain.LockReasonIdle,
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(1, "idle").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedErr: nil,
		},
		{
			name:   "Overwrites an existing lock",
			userID: 1,
			reason: domain.LockReasonForce,
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(1, "force").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedErr: nil,
		},
		{
			name:   "Missing vault row",
			userID: 99,
			reason: domain.LockReasonAdmin,
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(99, "admin").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: domain.ErrVaultNotFound,
		},
		{
			name:   "Database error",
			userID: 1,
			reason: domain.LockReasonIdle,
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(1, "idle").
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.LockVault(context.Background(), tt.userID, tt.reason)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_UnlockVault(t *testing.T) {
	repo, mock, tx := NewMock(t)

	lockQuery := regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1, $2)`)
	query := regexp.QuoteMeta(`
        UPDATE vaults
        SET locked_at = NULL, lock_reason = NULL, updated_at = NOW()
        WHERE user_id = $1
    `)

	tests := []struct {
		name        string
		userID      int
		mockSetup   func()
		expectedErr error
	}{
		{
			name:   "Unlocks under the advisory lock",
			userID: 1,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectExec(lockQuery).
					WithArgs(int32(1), int32(1)).
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectExec(query).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedErr: nil,
		},
		{
			name:   "Missing vault row",
			userID: 99,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectExec(lockQuery).
					WithArgs(int32(1), int32(99)).
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectExec(query).
					WithArgs(99).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: domain.ErrVaultNotFound,
		},
		{
			name:   "Advisory lock error aborts the transaction",
			userID: 1,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectExec(lockQuery).
					WithArgs(int32(1), int32(1)).
					WillReturnError(errors.New("lock error"))
			},
			expectedErr: errors.New("lock error"),
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectExec(lockQuery).
					WithArgs(int32(1), int32(1)).
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectExec(query).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UnlockVault(context.Background(), tt.userID)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func lockReasonPtr(r domain.LockReason) *domain.LockReason {
	return &r
}
