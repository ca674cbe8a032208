package marketservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vaultmart/vaultmart/internal/domain"
	"github.com/vaultmart/vaultmart/internal/pg"
)

type WalletRepo interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	GetWalletForUpdate(ctx context.Context, userID int) (*domain.Wallet, error)
	UpdateWallet(ctx context.Context, userID int, wallet *domain.Wallet) (*domain.Wallet, error)
	AppendTransaction(ctx context.Context, tx *domain.Transaction) error
	GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type MarketRepo interface {
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.MarketItem, error)
	GetAvailableItems(ctx context.Context) ([]domain.MarketItem, error)
	GetItemsByCategory(ctx context.Context, category string) ([]domain.MarketItem, error)
	UpsertPurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	GetPurchasesByUserID(ctx context.Context, userID int) ([]domain.Purchase, error)
	GetRewardsByUserID(ctx context.Context, userID int) ([]domain.Reward, error)
	ClaimReward(ctx context.Context, userID int, rewardID uuid.UUID) (*domain.Reward, error)
	GetRecommendations(ctx context.Context, userID int, limit int) ([]domain.Recommendation, error)
}

type Service struct {
	walletRepo WalletRepo
	marketRepo MarketRepo
	txManager  pg.TXManager
}

func New(walletRepo WalletRepo, marketRepo MarketRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo: walletRepo,
		marketRepo: marketRepo,
		txManager:  txManager,
	}
}

var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrItemNotFound      = errors.New("market item not found")
	ErrItemUnavailable   = errors.New("market item is not available")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrWalletNotFound    = errors.New("wallet not found")
)

const defaultRecommendationLimit = 10

func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, userID)
	if err != nil {
		zap.L().Error("can't get wallet", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetOrCreateWallet(ctx, userID)
	if err != nil {
		zap.L().Error("can't get or create wallet", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) ListAvailableItems(ctx context.Context, category string) ([]domain.MarketItem, error) {
	if category != "" {
		return s.marketRepo.GetItemsByCategory(ctx, category)
	}
	return s.marketRepo.GetAvailableItems(ctx)
}

// Purchase spends coins on an item. The balance check, the deduction, the
// ledger append and the purchase upsert run in one transaction, with the
// wallet row locked for its whole duration: two concurrent purchases for
// the same user serialize on that lock, so the second one sees the balance
// the first one left behind. Any failure rolls everything back.
func (s *Service) Purchase(ctx context.Context, userID int, itemID uuid.UUID, quantity int) (*domain.Purchase, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.marketRepo.GetItem(ctx, itemID)
	if err != nil {
		zap.L().Error("can't get item for purchase", zap.String("item_id", itemID.String()), zap.Error(err))
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if !item.Purchasable(time.Now()) {
		return nil, ErrItemUnavailable
	}
	// quantity * cost must not wrap: a wrapped total would be small,
	// pass the funds check and commit.
	if item.CostCoins > 0 && quantity > math.MaxInt/item.CostCoins {
		return nil, ErrInvalidQuantity
	}

	totalCost := item.CostCoins * quantity

	var purchase *domain.Purchase
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.lockWallet(ctx, userID)
		if err != nil {
			return err
		}

		if wallet.TotalCoins < totalCost {
			return ErrInsufficientFunds
		}

		wallet.TotalCoins -= totalCost
		wallet.SpentCoins += totalCost
		if _, err := s.walletRepo.UpdateWallet(ctx, userID, wallet); err != nil {
			return err
		}

		if err := s.walletRepo.AppendTransaction(ctx, &domain.Transaction{
			UserID: userID,
			Kind:   domain.TransactionSpend,
			Amount: totalCost,
			Reason: "purchase",
		}); err != nil {
			return err
		}

		purchase, err = s.marketRepo.UpsertPurchase(ctx, &domain.Purchase{
			UserID:        userID,
			ItemID:        itemID,
			Quantity:      quantity,
			CostPaidCoins: totalCost,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("can't purchase item",
				zap.Int("user_id", userID), zap.String("item_id", itemID.String()), zap.Error(err))
		}
		return nil, err
	}
	return purchase, nil
}

// ClaimReward marks the reward claimed exactly once. The winning call also
// credits the reward's coins to the wallet and appends an earn ledger row
// in the same transaction; losers observe claimed=false and write nothing.
func (s *Service) ClaimReward(ctx context.Context, userID int, rewardID uuid.UUID) (bool, error) {
	var claimed bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		reward, err := s.marketRepo.ClaimReward(ctx, userID, rewardID)
		if err != nil {
			return err
		}
		if reward == nil {
			return nil
		}
		claimed = true

		if reward.CoinsEarned == 0 {
			return nil
		}
		return s.credit(ctx, reward.UserID, reward.CoinsEarned, "reward: "+reward.RewardType)
	})
	if err != nil {
		zap.L().Error("can't claim reward", zap.String("reward_id", rewardID.String()), zap.Error(err))
		return false, err
	}
	return claimed, nil
}

// Earn credits coins to the wallet and records the earn transaction.
func (s *Service) Earn(ctx context.Context, userID int, amount int, reason string) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var wallet *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.credit(ctx, userID, amount, reason); err != nil {
			return err
		}
		var err error
		wallet, err = s.walletRepo.GetWallet(ctx, userID)
		return err
	})
	if err != nil {
		zap.L().Error("can't earn coins", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetPurchases(ctx context.Context, userID int) ([]domain.Purchase, error) {
	purchases, err := s.marketRepo.GetPurchasesByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get purchases", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return purchases, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.walletRepo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetRewards(ctx context.Context, userID int) ([]domain.Reward, error) {
	rewards, err := s.marketRepo.GetRewardsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get rewards", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return rewards, nil
}

func (s *Service) GetRecommendations(ctx context.Context, userID int, limit int) ([]domain.Recommendation, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	recs, err := s.marketRepo.GetRecommendations(ctx, userID, limit)
	if err != nil {
		zap.L().Error("can't get recommendations", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return recs, nil
}

// lockWallet fetches the wallet under the row lock, provisioning it first
// if the user has never had one. Must run inside a transaction.
func (s *Service) lockWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetWalletForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		// Insert inside the transaction owns the row lock too.
		wallet, err = s.walletRepo.GetOrCreateWallet(ctx, userID)
		if err != nil {
			return nil, err
		}
	}
	return wallet, nil
}

func (s *Service) credit(ctx context.Context, userID int, amount int, reason string) error {
	wallet, err := s.lockWallet(ctx, userID)
	if err != nil {
		return err
	}

	wallet.TotalCoins += amount
	wallet.EarnedCoins += amount
	if _, err := s.walletRepo.UpdateWallet(ctx, userID, wallet); err != nil {
		return err
	}

	return s.walletRepo.AppendTransaction(ctx, &domain.Transaction{
		UserID: userID,
		Kind:   domain.TransactionEarn,
		Amount: amount,
		Reason: reason,
	})
}
