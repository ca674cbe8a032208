package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Vault struct {
	ID                  int         `db:"id"`
	UserID              int         `db:"user_id"`
	KeyDerivationParams []byte      `db:"key_derivation_params"`
	LockedAt            *time.Time  `db:"locked_at"`
	LockReason          *LockReason `db:"lock_reason"`
	LastRotatedAt       *time.Time  `db:"last_rotated_at"`
	NextRotationDue     *time.Time  `db:"next_rotation_due"`
	CreatedAt           time.Time   `db:"created_at"`
	UpdatedAt           time.Time   `db:"updated_at"`
}

// VaultState is the lock half of a vault row, what clients poll for.
type VaultState struct {
	LockedAt   *time.Time  `db:"locked_at"`
	LockReason *LockReason `db:"lock_reason"`
}

func (s VaultState) Locked() bool {
	return s.LockedAt != nil
}

type Wallet struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	TotalCoins  int       `db:"total_coins"`
	EarnedCoins int       `db:"earned_coins"`
	SpentCoins  int       `db:"spent_coins"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Transaction struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	Kind      TransactionKind `db:"kind"`
	Amount    int             `db:"amount"`
	Reason    string          `db:"reason"`
	CreatedAt time.Time       `db:"created_at"`
}

type MarketItem struct {
	ID             uuid.UUID  `db:"id"`
	Name           string     `db:"name"`
	Description    *string    `db:"description"`
	CostCoins      int        `db:"cost_coins"`
	Category       *string    `db:"category"`
	Rarity         *string    `db:"rarity"`
	Available      bool       `db:"available"`
	AvailableFrom  *time.Time `db:"available_from"`
	AvailableUntil *time.Time `db:"available_until"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// Purchasable reports whether the item can be bought at the given moment.
func (i *MarketItem) Purchasable(now time.Time) bool {
	if !i.Available {
		return false
	}
	if i.AvailableFrom != nil && now.Before(*i.AvailableFrom) {
		return false
	}
	if i.AvailableUntil != nil && !now.Before(*i.AvailableUntil) {
		return false
	}
	return true
}

type Purchase struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	ItemID        uuid.UUID `db:"item_id"`
	Quantity      int       `db:"quantity"`
	CostPaidCoins int       `db:"cost_paid_coins"`
	PurchasedAt   time.Time `db:"purchased_at"`
}

type Reward struct {
	ID          uuid.UUID  `db:"id"`
	UserID      int        `db:"user_id"`
	RewardType  string     `db:"reward_type"`
	CoinsEarned int        `db:"coins_earned"`
	Claimed     bool       `db:"claimed"`
	ClaimedAt   *time.Time `db:"claimed_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

type Recommendation struct {
	ID         int       `db:"id"`
	UserID     int       `db:"user_id"`
	ItemID     uuid.UUID `db:"item_id"`
	Score      *float64  `db:"score"`
	Reason     *string   `db:"reason"`
	ComputedAt time.Time `db:"computed_at"`
}
