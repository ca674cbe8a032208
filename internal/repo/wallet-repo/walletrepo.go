package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/vaultmart/vaultmart/internal/domain"
	"github.com/vaultmart/vaultmart/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, total_coins, earned_coins, spent_coins
        FROM user_wallet
        WHERE user_id = $1
    `
	return r.scanWallet(ctx, query, userID)
}

// GetOrCreateWallet provisions the wallet on first use. The conflict arm is
// a no-op update so the row comes back either way.
func (r *Repository) GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO user_wallet (user_id, total_coins, earned_coins, spent_coins)
        VALUES ($1, 0, 0, 0)
        ON CONFLICT (user_id) DO UPDATE
        SET updated_at = NOW()
        RETURNING id, user_id, total_coins, earned_coins, spent_coins
    `
	row := r.db.QueryRow(ctx, query, userID)

	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.TotalCoins, &wallet.EarnedCoins, &wallet.SpentCoins)
	if err != nil {
		zap.L().Error("can't get or create wallet", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// GetWalletForUpdate takes the row lock that serializes balance mutation.
// Must run inside a TXManager transaction.
func (r *Repository) GetWalletForUpdate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, total_coins, earned_coins, spent_coins
        FROM user_wallet
        WHERE user_id = $1
        FOR UPDATE
    `
	return r.scanWallet(ctx, query, userID)
}

func (r *Repository) UpdateWallet(ctx context.Context, userID int, wallet *domain.Wallet) (*domain.Wallet, error) {
	query := `
        UPDATE user_wallet
        SET total_coins = $1, earned_coins = $2, spent_coins = $3, updated_at = NOW()
        WHERE user_id = $4
        RETURNING id, user_id, total_coins, earned_coins, spent_coins
    `
	row := r.db.QueryRow(ctx, query, wallet.TotalCoins, wallet.EarnedCoins, wallet.SpentCoins, userID)

	var updated domain.Wallet
	err := row.Scan(&updated.ID, &updated.UserID, &updated.TotalCoins, &updated.EarnedCoins, &updated.SpentCoins)
	if err != nil {
		zap.L().Error("can't update wallet", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

// AppendTransaction adds a ledger row; the ledger is append-only.
func (r *Repository) AppendTransaction(ctx context.Context, tx *domain.Transaction) error {
	query := `
        INSERT INTO market_transactions (user_id, kind, amount, reason)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.db.Exec(ctx, query, tx.UserID, tx.Kind.String(), tx.Amount, tx.Reason)
	if err != nil {
		zap.L().Error("can't append transaction", zap.Int("user_id", tx.UserID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, kind, amount, reason, created_at
        FROM market_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var kind string
		err := rows.Scan(&tx.ID, &tx.UserID, &kind, &tx.Amount, &tx.Reason, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		tx.Kind = domain.TransactionKind(kind)
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func (r *Repository) scanWallet(ctx context.Context, query string, userID int) (*domain.Wallet, error) {
	row := r.db.QueryRow(ctx, query, userID)

	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.TotalCoins, &wallet.EarnedCoins, &wallet.SpentCoins)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get wallet", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}
