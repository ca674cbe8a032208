package market

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vaultmart/vaultmart/internal/domain"
	"github.com/vaultmart/vaultmart/internal/dto"
	marketservice "github.com/vaultmart/vaultmart/internal/service/marketservice"
	"github.com/vaultmart/vaultmart/pkg/auth"
	"github.com/vaultmart/vaultmart/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*MarketHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, 1)
}

func TestGetWalletHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.WalletResponseDTO
	}{
		{
			name: "Returns the wallet",
			prepareMock: func() {
				service.EXPECT().
					GetOrCreateWallet(authCtx(), 1).
					Return(&domain.Wallet{UserID: 1, TotalCoins: 140, EarnedCoins: 200, SpentCoins: 60}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.WalletResponseDTO{Total: 140, Earned: 200, Spent: 60},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetOrCreateWallet(authCtx(), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/market/wallet", nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.GetWallet(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WalletResponseDTO
				err := json.NewDecoder(w.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetItemsHandler(t *testing.T) {
	handler, service := NewMock(t)

	itemID := uuid.New()

	tests := []struct {
		name          string
		url           string
		category      string
		prepareMock   func()
		expectedCode  int
		expectedItems int
	}{
		{
			name:     "All available items",
			url:      "/api/market/items",
			category: "",
			prepareMock: func() {
				service.EXPECT().
					ListAvailableItems(authCtx(), "").
					Return([]domain.MarketItem{{ID: itemID, Name: "Midnight theme", CostCoins: 30, Available: true}}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedItems: 1,
		},
		{
			name:     "Filtered by category",
			url:      "/api/market/items?category=themes",
			category: "themes",
			prepareMock: func() {
				service.EXPECT().
					ListAvailableItems(authCtx(), "themes").
					Return([]domain.MarketItem{}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedItems: 0,
		},
		{
			name: "Internal server error",
			url:  "/api/market/items",
			prepareMock: func() {
				service.EXPECT().
					ListAvailableItems(authCtx(), "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.GetItems(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.MarketItemResponseDTO
				err := json.NewDecoder(w.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Len(t, body, tt.expectedItems)
				if tt.expectedItems > 0 {
					assert.Equal(t, itemID.String(), body[0].ID)
				}
			}
		})
	}
}

func TestPurchaseHandler(t *testing.T) {
	handler, service := NewMock(t)

	itemID := uuid.New()
	now := time.Now()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful purchase",
			body: `{"item_id":"` + itemID.String() + `","quantity":2}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(authCtx(), 1, itemID, 2).
					Return(&domain.Purchase{ItemID: itemID, Quantity: 2, CostPaidCoins: 60, PurchasedAt: now}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Quantity defaults to one",
			body: `{"item_id":"` + itemID.String() + `"}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(authCtx(), 1, itemID, 1).
					Return(&domain.Purchase{ItemID: itemID, Quantity: 1, CostPaidCoins: 30, PurchasedAt: now}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Invalid item id",
			body:          `{"item_id":"not-a-uuid"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid item id",
		},
		{
			name: "Explicit zero quantity",
			body: `{"item_id":"` + itemID.String() + `","quantity":0}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(authCtx(), 1, itemID, 0).
					Return(nil, marketservice.ErrInvalidQuantity)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Negative quantity",
			body: `{"item_id":"` + itemID.String() + `","quantity":-1}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(authCtx(), 1, itemID, -1).
					Return(nil, marketservice.ErrInvalidQuantity)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Item not found",
			body: `{"item_id":"` + itemID.String() + `","quantity":1}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(authCtx(), 1, itemID, 1).
					Return(nil, marketservice.ErrItemNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Item not available",
			body: `{"item_id":"` + itemID.String() + `","quantity":1}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(authCtx(), 1, itemID, 1).
					Return(nil, marketservice.ErrItemUnavailable)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Insufficient funds",
			body: `{"item_id":"` + itemID.String() + `","quantity":1}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(authCtx(), 1, itemID, 1).
					Return(nil, marketservice.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Internal server error",
			body: `{"item_id":"` + itemID.String() + `","quantity":1}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(authCtx(), 1, itemID, 1).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/market/purchase", bytes.NewReader([]byte(tt.body)))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.Purchase(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.PurchaseResponseDTO
				err := json.NewDecoder(w.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Equal(t, itemID.String(), body.ItemID)
			}
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetPurchasesHandler(t *testing.T) {
	handler, service := NewMock(t)

	itemID := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Returns purchases",
			prepareMock: func() {
				service.EXPECT().
					GetPurchases(authCtx(), 1).
					Return([]domain.Purchase{
						{ItemID: itemID, Quantity: 3, CostPaidCoins: 90},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetPurchases(authCtx(), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/market/purchases", nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.GetPurchases(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.PurchaseResponseDTO
				err := json.NewDecoder(w.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Returns the ledger",
			prepareMock: func() {
				service.EXPECT().
					GetTransactions(authCtx(), 1).
					Return([]domain.Transaction{
						{Kind: domain.TransactionSpend, Amount: 60, Reason: "purchase"},
						{Kind: domain.TransactionEarn, Amount: 25, Reason: "reward: streak_7_days"},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetTransactions(authCtx(), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/market/transactions", nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.GetTransactions(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.TransactionResponseDTO
				err := json.NewDecoder(w.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Len(t, body, tt.expectedLen)
				if tt.expectedLen > 0 {
					assert.Equal(t, "spend", body[0].Kind)
				}
			}
		})
	}
}

func TestGetRewardsHandler(t *testing.T) {
	handler, service := NewMock(t)

	rewardID := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Returns rewards",
			prepareMock: func() {
				service.EXPECT().
					GetRewards(authCtx(), 1).
					Return([]domain.Reward{
						{ID: rewardID, RewardType: "streak_7_days", CoinsEarned: 25},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetRewards(authCtx(), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/market/rewards", nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.GetRewards(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.RewardResponseDTO
				err := json.NewDecoder(w.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Len(t, body, tt.expectedLen)
				if tt.expectedLen > 0 {
					assert.Equal(t, rewardID.String(), body[0].ID)
					assert.False(t, body[0].Claimed)
				}
			}
		})
	}
}

func TestClaimRewardHandler(t *testing.T) {
	handler, service := NewMock(t)

	rewardID := uuid.New()

	tests := []struct {
		name          string
		rewardID      string
		prepareMock   func()
		expectedCode  int
		expectedBody  dto.ClaimRewardResponseDTO
		expectedError string
	}{
		{
			name:     "Winning claim",
			rewardID: rewardID.String(),
			prepareMock: func() {
				service.EXPECT().
					ClaimReward(gomock.Any(), 1, rewardID).
					Return(true, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ClaimRewardResponseDTO{Claimed: true},
		},
		{
			name:     "Already claimed",
			rewardID: rewardID.String(),
			prepareMock: func() {
				service.EXPECT().
					ClaimReward(gomock.Any(), 1, rewardID).
					Return(false, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ClaimRewardResponseDTO{Claimed: false},
		},
		{
			name:          "Invalid reward id",
			rewardID:      "not-a-uuid",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid reward id",
		},
		{
			name:     "Internal server error",
			rewardID: rewardID.String(),
			prepareMock: func() {
				service.EXPECT().
					ClaimReward(gomock.Any(), 1, rewardID).
					Return(false, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/market/rewards/"+tt.rewardID+"/claim", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.rewardID)
			ctx := context.WithValue(authCtx(), chi.RouteCtxKey, rctx)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.ClaimReward(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ClaimRewardResponseDTO
				err := json.NewDecoder(w.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, body)
			}
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetRecommendationsHandler(t *testing.T) {
	handler, service := NewMock(t)

	itemID := uuid.New()
	score := 0.87

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Explicit limit",
			url:  "/api/market/recommendations?limit=5",
			prepareMock: func() {
				service.EXPECT().
					GetRecommendations(authCtx(), 1, 5).
					Return([]domain.Recommendation{
						{ItemID: itemID, Score: &score},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "Missing limit passes zero",
			url:  "/api/market/recommendations",
			prepareMock: func() {
				service.EXPECT().
					GetRecommendations(authCtx(), 1, 0).
					Return([]domain.Recommendation{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "Internal server error",
			url:  "/api/market/recommendations",
			prepareMock: func() {
				service.EXPECT().
					GetRecommendations(authCtx(), 1, 0).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.GetRecommendations(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.RecommendationResponseDTO
				err := json.NewDecoder(w.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Len(t, body, tt.expectedLen)
				if tt.expectedLen > 0 {
					assert.Equal(t, itemID.String(), body[0].ItemID)
					assert.Equal(t, &score, body[0].Score)
				}
			}
		})
	}
}
