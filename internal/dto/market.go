package dto

import "time"

type WalletResponseDTO struct {
	Total  int `json:"total" example:"140"`
	Earned int `json:"earned" example:"200"`
	Spent  int `json:"spent" example:"60"`
}

type MarketItemResponseDTO struct {
	ID             string     `json:"id" example:"6b1884cd-39ad-4b2f-a571-5e1261b78e4f"`
	Name           string     `json:"name" example:"Midnight theme"`
	Description    *string    `json:"description,omitempty"`
	CostCoins      int        `json:"cost_coins" example:"30"`
	Category       *string    `json:"category,omitempty" example:"themes"`
	Rarity         *string    `json:"rarity,omitempty" example:"rare"`
	AvailableFrom  *time.Time `json:"available_from,omitempty"`
	AvailableUntil *time.Time `json:"available_until,omitempty"`
}

// Quantity is a pointer so an explicit 0 is rejected instead of being
// read as "absent"; a missing field means 1.
type PurchaseRequestDTO struct {
	ItemID   string `json:"item_id" example:"6b1884cd-39ad-4b2f-a571-5e1261b78e4f"`
	Quantity *int   `json:"quantity,omitempty" example:"2"`
}

type PurchaseResponseDTO struct {
	ItemID        string    `json:"item_id" example:"6b1884cd-39ad-4b2f-a571-5e1261b78e4f"`
	Quantity      int       `json:"quantity" example:"2"`
	CostPaidCoins int       `json:"cost_paid_coins" example:"60"`
	PurchasedAt   time.Time `json:"purchased_at" example:"2024-11-02T10:41:12+03:00"`
}

type TransactionResponseDTO struct {
	Kind      string    `json:"kind" example:"spend"`
	Amount    int       `json:"amount" example:"60"`
	Reason    string    `json:"reason" example:"purchase"`
	CreatedAt time.Time `json:"created_at" example:"2024-11-02T10:41:12+03:00"`
}

type RewardResponseDTO struct {
	ID          string     `json:"id" example:"a3f9e0d4-8c26-4f0e-9ad8-2f1f4f9b2f30"`
	RewardType  string     `json:"reward_type" example:"streak_7_days"`
	CoinsEarned int        `json:"coins_earned" example:"25"`
	Claimed     bool       `json:"claimed" example:"false"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
}

type ClaimRewardResponseDTO struct {
	Claimed bool `json:"claimed" example:"true"`
}

type RecommendationResponseDTO struct {
	ItemID     string    `json:"item_id" example:"6b1884cd-39ad-4b2f-a571-5e1261b78e4f"`
	Score      *float64  `json:"score,omitempty" example:"0.87"`
	Reason     *string   `json:"reason,omitempty" example:"popular in your category"`
	ComputedAt time.Time `json:"computed_at" example:"2024-11-02T10:41:12+03:00"`
}
