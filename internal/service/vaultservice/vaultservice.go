package vaultservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vaultmart/vaultmart/internal/domain"
)

type Repo interface {
	EnsureVault(ctx context.Context, userID int) (*domain.Vault, error)
	GetVaultState(ctx context.Context, userID int) (*domain.VaultState, error)
	LockVault(ctx context.Context, userID int, reason domain.LockReason) error
	UnlockVault(ctx context.Context, userID int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrInvalidLockReason = errors.New("invalid lock reason")
	ErrVaultNotFound     = errors.New("vault not found")
)

// EnsureExists provisions the user's vault row; safe to call on every request.
func (s *Service) EnsureExists(ctx context.Context, userID int) (*domain.Vault, error) {
	vault, err := s.repo.EnsureVault(ctx, userID)
	if err != nil {
		zap.L().Error("can't ensure vault", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return vault, nil
}

// GetState provisions the vault first so state lookups never miss for new
// users, then returns the current lock state.
func (s *Service) GetState(ctx context.Context, userID int) (*domain.VaultState, error) {
	if _, err := s.repo.EnsureVault(ctx, userID); err != nil {
		zap.L().Error("can't ensure vault for state", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}

	state, err := s.repo.GetVaultState(ctx, userID)
	if err != nil {
		zap.L().Error("can't get vault state", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if state == nil {
		return nil, ErrVaultNotFound
	}
	return state, nil
}

// Lock moves the vault to Locked(reason). A lock on an already locked vault
// overwrites the reason and timestamp. If the row is missing (first-use
// race, or a client that never touched the vault), the vault is provisioned
// and the lock retried exactly once.
func (s *Service) Lock(ctx context.Context, userID int, reason string) error {
	lockReason, err := domain.ParseLockReason(reason)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLockReason, err)
	}

	if _, err := s.repo.EnsureVault(ctx, userID); err != nil {
		zap.L().Error("can't ensure vault for lock", zap.Int("user_id", userID), zap.Error(err))
		return err
	}

	err = s.repo.LockVault(ctx, userID, lockReason)
	if errors.Is(err, domain.ErrVaultNotFound) {
		zap.L().Info("vault row missing on lock, retrying once", zap.Int("user_id", userID))
		if _, err := s.repo.EnsureVault(ctx, userID); err != nil {
			zap.L().Error("can't ensure vault on lock retry", zap.Int("user_id", userID), zap.Error(err))
			return err
		}
		err = s.repo.LockVault(ctx, userID, lockReason)
	}
	if err != nil {
		zap.L().Error("can't lock vault", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// Unlock clears the lock and returns the resulting state. Unlocking an
// unlocked vault is a no-op, not an error. No credential is accepted here;
// the caller's authenticated session is the gate.
func (s *Service) Unlock(ctx context.Context, userID int) (*domain.VaultState, error) {
	if _, err := s.repo.EnsureVault(ctx, userID); err != nil {
		zap.L().Error("can't ensure vault for unlock", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}

	if err := s.repo.UnlockVault(ctx, userID); err != nil {
		zap.L().Error("can't unlock vault", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}

	state, err := s.repo.GetVaultState(ctx, userID)
	if err != nil {
		zap.L().Error("can't get vault state after unlock", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if state == nil {
		state = &domain.VaultState{}
	}
	return state, nil
}
