package marketrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
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

const itemColumns = `id, name, description, cost_coins, category, rarity, available, available_from, available_until, created_at, updated_at`

func (r *Repository) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.MarketItem, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM market_items
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, itemID)

	var item domain.MarketItem
	err := scanItem(row, &item)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get market item", zap.String("item_id", itemID.String()), zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) GetAvailableItems(ctx context.Context) ([]domain.MarketItem, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM market_items
        WHERE available = TRUE
        AND (available_from IS NULL OR available_from <= NOW())
        AND (available_until IS NULL OR available_until > NOW())
        ORDER BY category, name
    `
	return r.queryItems(ctx, query)
}

func (r *Repository) GetItemsByCategory(ctx context.Context, category string) ([]domain.MarketItem, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM market_items
        WHERE category = $1 AND available = TRUE
        ORDER BY name
    `
	return r.queryItems(ctx, query, category)
}

// UpsertPurchase creates the (user, item) purchase row or accumulates
// quantity and paid cost on the existing one.
func (r *Repository) UpsertPurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	query := `
        INSERT INTO user_market_purchases (user_id, item_id, quantity, cost_paid_coins)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id, item_id) DO UPDATE
        SET quantity = user_market_purchases.quantity + EXCLUDED.quantity,
            cost_paid_coins = user_market_purchases.cost_paid_coins + EXCLUDED.cost_paid_coins
        RETURNING id, user_id, item_id, quantity, cost_paid_coins, purchased_at
    `
	row := r.db.QueryRow(ctx, query, purchase.UserID, purchase.ItemID, purchase.Quantity, purchase.CostPaidCoins)

	var saved domain.Purchase
	err := row.Scan(&saved.ID, &saved.UserID, &saved.ItemID, &saved.Quantity, &saved.CostPaidCoins, &saved.PurchasedAt)
	if err != nil {
		zap.L().Error("can't upsert purchase", zap.Int("user_id", purchase.UserID), zap.Error(err))
		return nil, err
	}
	return &saved, nil
}

func (r *Repository) GetPurchasesByUserID(ctx context.Context, userID int) ([]domain.Purchase, error) {
	query := `
        SELECT id, user_id, item_id, quantity, cost_paid_coins, purchased_at
        FROM user_market_purchases
        WHERE user_id = $1
        ORDER BY purchased_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get purchases", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		err := rows.Scan(&p.ID, &p.UserID, &p.ItemID, &p.Quantity, &p.CostPaidCoins, &p.PurchasedAt)
		if err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

func (r *Repository) GetRewardsByUserID(ctx context.Context, userID int) ([]domain.Reward, error) {
	query := `
        SELECT id, user_id, reward_type, coins_earned, claimed, claimed_at, created_at
        FROM user_rewards
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get rewards", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		var reward domain.Reward
		err := rows.Scan(&reward.ID, &reward.UserID, &reward.RewardType, &reward.CoinsEarned, &reward.Claimed, &reward.ClaimedAt, &reward.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan reward row", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, reward)
	}
	return rewards, nil
}

// ClaimReward flips the claimed flag if and only if it was unset. Exactly
// one concurrent caller gets the row back; everyone else gets nil.
func (r *Repository) ClaimReward(ctx context.Context, userID int, rewardID uuid.UUID) (*domain.Reward, error) {
	query := `
        UPDATE user_rewards
        SET claimed = TRUE, claimed_at = NOW()
        WHERE id = $1 AND user_id = $2 AND claimed = FALSE
        RETURNING id, user_id, reward_type, coins_earned, claimed, claimed_at, created_at
    `
	row := r.db.QueryRow(ctx, query, rewardID, userID)

	var reward domain.Reward
	err := row.Scan(&reward.ID, &reward.UserID, &reward.RewardType, &reward.CoinsEarned, &reward.Claimed, &reward.ClaimedAt, &reward.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't claim reward", zap.String("reward_id", rewardID.String()), zap.Error(err))
		return nil, err
	}
	return &reward, nil
}

func (r *Repository) GetRecommendations(ctx context.Context, userID int, limit int) ([]domain.Recommendation, error) {
	query := `
        SELECT id, user_id, item_id, score, reason, computed_at
        FROM market_recommendations
        WHERE user_id = $1
        ORDER BY score DESC NULLS LAST
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't get recommendations", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var recs []domain.Recommendation
	for rows.Next() {
		var rec domain.Recommendation
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.ItemID, &rec.Score, &rec.Reason, &rec.ComputedAt)
		if err != nil {
			zap.L().Error("can't scan recommendation row", zap.Error(err))
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (r *Repository) UpsertRecommendation(ctx context.Context, rec *domain.Recommendation) error {
	query := `
        INSERT INTO market_recommendations (user_id, item_id, score, reason, computed_at)
        VALUES ($1, $2, $3, $4, NOW())
        ON CONFLICT (user_id, item_id) DO UPDATE
        SET score = EXCLUDED.score, reason = EXCLUDED.reason, computed_at = NOW()
    `
	_, err := r.db.Exec(ctx, query, rec.UserID, rec.ItemID, rec.Score, rec.Reason)
	if err != nil {
		zap.L().Error("can't upsert recommendation", zap.Int("user_id", rec.UserID), zap.Error(err))
		return err
	}
	return nil
}

// FindUsersForScoring returns users whose purchases are newer than their
// last computed recommendations.
func (r *Repository) FindUsersForScoring(ctx context.Context, limit uint32) ([]int, error) {
	query := `
        SELECT DISTINCT p.user_id
        FROM user_market_purchases p
        LEFT JOIN (
            SELECT user_id, MAX(computed_at) AS computed_at
            FROM market_recommendations
            GROUP BY user_id
        ) r ON r.user_id = p.user_id
        WHERE r.computed_at IS NULL OR p.purchased_at > r.computed_at
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get users for scoring", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var userIDs []int
	for rows.Next() {
		var userID int
		if err := rows.Scan(&userID); err != nil {
			zap.L().Error("can't scan user id for scoring", zap.Error(err))
			return nil, err
		}
		userIDs = append(userIDs, userID)
	}
	return userIDs, nil
}

func (r *Repository) queryItems(ctx context.Context, query string, args ...interface{}) ([]domain.MarketItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get market items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.MarketItem
	for rows.Next() {
		var item domain.MarketItem
		if err := scanItem(rows, &item); err != nil {
			zap.L().Error("can't scan market item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func scanItem(row pgx.Row, item *domain.MarketItem) error {
	return row.Scan(
		&item.ID, &item.Name, &item.Description, &item.CostCoins, &item.Category,
		&item.Rarity, &item.Available, &item.AvailableFrom, &item.AvailableUntil,
		&item.CreatedAt, &item.UpdatedAt,
	)
}
