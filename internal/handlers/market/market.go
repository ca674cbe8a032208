package market

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vaultmart/vaultmart/internal/domain"
	"github.com/vaultmart/vaultmart/internal/dto"
	marketservice "github.com/vaultmart/vaultmart/internal/service/marketservice"
	"github.com/vaultmart/vaultmart/pkg/auth"
	"github.com/vaultmart/vaultmart/pkg/utils"
)

type Service interface {
	GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	ListAvailableItems(ctx context.Context, category string) ([]domain.MarketItem, error)
	Purchase(ctx context.Context, userID int, itemID uuid.UUID, quantity int) (*domain.Purchase, error)
	GetPurchases(ctx context.Context, userID int) ([]domain.Purchase, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
	GetRewards(ctx context.Context, userID int) ([]domain.Reward, error)
	ClaimReward(ctx context.Context, userID int, rewardID uuid.UUID) (bool, error)
	GetRecommendations(ctx context.Context, userID int, limit int) ([]domain.Recommendation, error)
}

type MarketHandler struct {
	marketService Service
}

func New(marketService Service) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
	}
}

// GetWallet godoc
//
//	@Summary		Get coin wallet
//	@Description	Return total, earned and spent coins for the authenticated user. The wallet is provisioned on first access.
//	@Tags			Market
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Current wallet"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/market/wallet [get]
func (h *MarketHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.marketService.GetOrCreateWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Total:  wallet.TotalCoins,
		Earned: wallet.EarnedCoins,
		Spent:  wallet.SpentCoins,
	})
}

// GetItems godoc
//
//	@Summary		List purchasable market items
//	@Description	List items that are available and inside their availability window, optionally filtered by category.
//	@Tags			Market
//	@Security		BearerAuth
//	@Produce		json
//	@Param			category	query		string	false	"Category filter"
//	@Success		200			{array}		dto.MarketItemResponseDTO	"Available items"
//	@Failure		401			{object}	utils.Response				"User not authorized"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/market/items [get]
func (h *MarketHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.marketService.ListAvailableItems(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.MarketItemResponseDTO, len(items))
	for i, item := range items {
		response[i] = dto.MarketItemResponseDTO{
			ID:             item.ID.String(),
			Name:           item.Name,
			Description:    item.Description,
			CostCoins:      item.CostCoins,
			Category:       item.Category,
			Rarity:         item.Rarity,
			AvailableFrom:  item.AvailableFrom,
			AvailableUntil: item.AvailableUntil,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Purchase godoc
//
//	@Summary		Purchase a market item
//	@Description	Spend coins on an item. The balance check, deduction, ledger entry and purchase record commit atomically; on insufficient funds nothing changes.
//	@Tags			Market
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase request payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO	"Accumulated purchase record"
//	@Failure		400		{object}	utils.Response			"Invalid request body or item id"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient funds"
//	@Failure		404		{object}	utils.Response			"Item not found"
//	@Failure		409		{object}	utils.Response			"Item not available"
//	@Failure		422		{object}	utils.Response			"Invalid quantity"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/market/purchase [post]
func (h *MarketHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	purchase, err := h.marketService.Purchase(r.Context(), userID, itemID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, marketservice.ErrInvalidQuantity):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, marketservice.ErrItemNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, marketservice.ErrItemUnavailable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, marketservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		ItemID:        purchase.ItemID.String(),
		Quantity:      purchase.Quantity,
		CostPaidCoins: purchase.CostPaidCoins,
		PurchasedAt:   purchase.PurchasedAt,
	})
}

// GetPurchases godoc
//
//	@Summary		Get purchase history
//	@Description	List the authenticated user's accumulated purchases, newest first.
//	@Tags			Market
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PurchaseResponseDTO	"Purchases"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/market/purchases [get]
func (h *MarketHandler) GetPurchases(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	purchases, err := h.marketService.GetPurchases(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PurchaseResponseDTO, len(purchases))
	for i, p := range purchases {
		response[i] = dto.PurchaseResponseDTO{
			ItemID:        p.ItemID.String(),
			Quantity:      p.Quantity,
			CostPaidCoins: p.CostPaidCoins,
			PurchasedAt:   p.PurchasedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTransactions godoc
//
//	@Summary		Get coin transaction history
//	@Description	List the authenticated user's ledger entries, newest first.
//	@Tags			Market
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/market/transactions [get]
func (h *MarketHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.marketService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.TransactionResponseDTO{
			Kind:      tx.Kind.String(),
			Amount:    tx.Amount,
			Reason:    tx.Reason,
			CreatedAt: tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRewards godoc
//
//	@Summary		Get rewards
//	@Description	List the authenticated user's rewards, newest first.
//	@Tags			Market
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RewardResponseDTO	"Rewards"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/market/rewards [get]
func (h *MarketHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	rewards, err := h.marketService.GetRewards(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RewardResponseDTO, len(rewards))
	for i, reward := range rewards {
		response[i] = dto.RewardResponseDTO{
			ID:          reward.ID.String(),
			RewardType:  reward.RewardType,
			CoinsEarned: reward.CoinsEarned,
			Claimed:     reward.Claimed,
			ClaimedAt:   reward.ClaimedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ClaimReward godoc
//
//	@Summary		Claim a reward
//	@Description	Claim the reward exactly once. claimed is true only for the call that performed the claim; the winning claim credits the reward's coins.
//	@Tags			Market
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Reward id"
//	@Success		200	{object}	dto.ClaimRewardResponseDTO	"Claim outcome"
//	@Failure		400	{object}	utils.Response				"Invalid reward id"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/market/rewards/{id}/claim [post]
func (h *MarketHandler) ClaimReward(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	rewardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid reward id")
		return
	}

	claimed, err := h.marketService.ClaimReward(r.Context(), userID, rewardID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimRewardResponseDTO{Claimed: claimed})
}

// GetRecommendations godoc
//
//	@Summary		Get item recommendations
//	@Description	List recommended items for the authenticated user ordered by descending score, unscored items last.
//	@Tags			Market
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum entries to return"
//	@Success		200		{array}		dto.RecommendationResponseDTO	"Recommendations"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/market/recommendations [get]
func (h *MarketHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recs, err := h.marketService.GetRecommendations(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RecommendationResponseDTO, len(recs))
	for i, rec := range recs {
		response[i] = dto.RecommendationResponseDTO{
			ItemID:     rec.ItemID.String(),
			Score:      rec.Score,
			Reason:     rec.Reason,
			ComputedAt: rec.ComputedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
