package recommender

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vaultmart/vaultmart/internal/config"
	"github.com/vaultmart/vaultmart/internal/domain"
	"github.com/vaultmart/vaultmart/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var scoringUsers sync.Map

type ScoreEntry struct {
	ItemID string   `json:"item_id"`
	Score  *float64 `json:"score"`
	Reason *string  `json:"reason,omitempty"`
}

type Response struct {
	UserID int          `json:"user_id"`
	Items  []ScoreEntry `json:"items"`
}

type Repo interface {
	FindUsersForScoring(ctx context.Context, limit uint32) ([]int, error)
	UpsertRecommendation(ctx context.Context, rec *domain.Recommendation) error
}

// Service keeps market recommendations fresh: users whose purchases are
// newer than their scores are sent to the external scoring system and the
// returned scores are upserted. A failed refresh leaves the previous
// recommendations in place.
type Service struct {
	url            string
	repo           Repo
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, repo Repo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.ScoringAddress,
		repo:           repo,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 30,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Recommender service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping recommender")
			return
		case <-ticker.C:
			s.refreshUsers(ctx)
		}
	}
}

func (s *Service) refreshUsers(ctx context.Context) {
	userIDs, err := s.repo.FindUsersForScoring(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch users for scoring", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, userID := range userIDs {
		userID := userID

		if _, loaded := scoringUsers.LoadOrStore(userID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer scoringUsers.Delete(userID)
				return s.handleUser(ctx, userID)
			})
			if err != nil {
				scoringUsers.Delete(userID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error refreshing recommendations", zap.Error(err))
	}
}

func (s *Service) handleUser(ctx context.Context, userID int) error {
	url := s.url + "/api/score/" + strconv.Itoa(userID)
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to score user %d after %d retries: %w", userID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(userID, respHeaders, attempt)
			case http.StatusNoContent:
				zap.L().Info("No scores for user yet", zap.Int("userID", userID))
				return nil
			case http.StatusOK:
				return s.applyScores(ctx, userID, respBody)
			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.Int("userID", userID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) applyScores(ctx context.Context, userID int, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.UserID != userID {
		return fmt.Errorf("user id mismatch: expected %d, got %d", userID, response.UserID)
	}

	for _, entry := range response.Items {
		itemID, err := uuid.Parse(entry.ItemID)
		if err != nil {
			return fmt.Errorf("invalid item id %q in scoring response: %w", entry.ItemID, err)
		}
		rec := &domain.Recommendation{
			UserID: userID,
			ItemID: itemID,
			Score:  entry.Score,
			Reason: entry.Reason,
		}
		if err := s.repo.UpsertRecommendation(ctx, rec); err != nil {
			return fmt.Errorf("failed to store recommendation for user %d: %w", userID, err)
		}
	}

	zap.L().Info("Recommendations refreshed", zap.Int("userID", userID), zap.Int("count", len(response.Items)))
	return nil
}

func (s *Service) handleRateLimit(userID int, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int("userID", userID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
