package vaultrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/vaultmart/vaultmart/internal/domain"
	"github.com/vaultmart/vaultmart/internal/pg"
)

// Advisory lock class for vault rows; the key is the user id.
const vaultLockClass int32 = 1

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// EnsureVault provisions the user's vault row if it does not exist yet.
// The upsert makes concurrent first-access calls converge on one row.
func (r *Repository) EnsureVault(ctx context.Context, userID int) (*domain.Vault, error) {
	query := `
        INSERT INTO vaults (user_id)
        VALUES ($1)
        ON CONFLICT (user_id) DO UPDATE
        SET updated_at = NOW()
        RETURNING id, user_id, locked_at, lock_reason, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query, userID)

	var vault domain.Vault
	var reason *string
	err := row.Scan(&vault.ID, &vault.UserID, &vault.LockedAt, &reason, &vault.CreatedAt, &vault.UpdatedAt)
	if err != nil {
		zap.L().Error("can't ensure vault", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	vault.LockReason = toLockReason(reason)
	return &vault, nil
}

func (r *Repository) GetVaultState(ctx context.Context, userID int) (*domain.VaultState, error) {
	query := `
        SELECT locked_at, lock_reason
        FROM vaults
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)

	var state domain.VaultState
	var reason *string
	err := row.Scan(&state.LockedAt, &reason)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get vault state", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	state.LockReason = toLockReason(reason)
	return &state, nil
}

// LockVault stamps the row with the reason and the current time. A vault
// that is already locked is overwritten. Returns domain.ErrVaultNotFound
// when there is no row for the user, so callers can provision and retry.
func (r *Repository) LockVault(ctx context.Context, userID int, reason domain.LockReason) error {
	query := `
        UPDATE vaults
        SET locked_at = NOW(), lock_reason = $2, updated_at = NOW()
        WHERE user_id = $1
    `
	tag, err := r.db.Exec(ctx, query, userID, reason.String())
	if err != nil {
		zap.L().Error("can't lock vault", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVaultNotFound
	}
	return nil
}

// UnlockVault clears the lock inside a transaction that first takes the
// per-user advisory lock, so a concurrent LockVault for the same user
// cannot interleave with the clear. Unlocking an unlocked vault is a no-op.
func (r *Repository) UnlockVault(ctx context.Context, userID int) error {
	query := `
        UPDATE vaults
        SET locked_at = NULL, lock_reason = NULL, updated_at = NOW()
        WHERE user_id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := pg.AcquireXactLock(ctx, r.db, vaultLockClass, int32(userID)); err != nil {
			zap.L().Error("can't acquire vault lock", zap.Int("user_id", userID), zap.Error(err))
			return err
		}

		tag, err := r.db.Exec(ctx, query, userID)
		if err != nil {
			zap.L().Error("can't unlock vault", zap.Int("user_id", userID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrVaultNotFound
		}
		return nil
	})
}

func toLockReason(s *string) *domain.LockReason {
	if s == nil {
		return nil
	}
	reason := domain.LockReason(*s)
	return &reason
}
